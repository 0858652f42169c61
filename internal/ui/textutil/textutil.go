// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
// s must not carry ANSI styling.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in … when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// Center pads s on the left so it sits in the middle of width columns,
// truncating first if it does not fit.
func Center(s string, width int) string {
	s = Truncate(s, width)
	pad := (width - VisualWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return runewidth.FillLeft(s, pad+VisualWidth(s))
}

// Wrap splits s into lines of at most width columns, breaking on spaces
// where possible.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line []rune
	lineW := 0
	lastSpace := -1
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if lineW+w > width {
			if lastSpace > 0 {
				lines = append(lines, string(line[:lastSpace]))
				line = append([]rune(nil), line[lastSpace+1:]...)
			} else {
				lines = append(lines, string(line))
				line = nil
			}
			lineW = runewidth.StringWidth(string(line))
			lastSpace = -1
		}
		if r == ' ' {
			lastSpace = len(line)
		}
		line = append(line, r)
		lineW += w
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
