package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// placeAt writes block over line starting at column x. Both may carry ANSI
// styling; widths are measured in cells.
func placeAt(line string, x int, block string) string {
	if x < 0 {
		block = ansi.TruncateLeft(block, -x, "")
		x = 0
	}
	w := ansi.StringWidth(block)
	lw := ansi.StringWidth(line)
	if lw < x {
		line += strings.Repeat(" ", x-lw)
	}
	left := ansi.Truncate(line, x, "")
	right := ansi.TruncateLeft(line, x+w, "")
	return left + block + right
}

// overlay draws block over base with its top-left corner at (x, y).
func overlay(base, block string, x, y int) string {
	lines := strings.Split(base, "\n")
	for i, bl := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(lines) {
			lines = append(lines, "")
		}
		lines[row] = placeAt(lines[row], x, bl)
	}
	return strings.Join(lines, "\n")
}

// dim strips styling from every line and renders it in style. It is the
// backdrop drawn behind an open dialog.
func dim(base string, render func(...string) string) string {
	lines := strings.Split(base, "\n")
	for i, l := range lines {
		lines[i] = render(ansi.Strip(l))
	}
	return strings.Join(lines, "\n")
}
