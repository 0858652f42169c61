package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPlaceAt(t *testing.T) {
	assert.Equal(t, "hello XXrld", placeAt("hello world", 6, "XX"))
	assert.Equal(t, "ab  X", placeAt("ab", 4, "X"))
	assert.Equal(t, "Yello", placeAt("hello", -1, "XY"))
}

func TestPlaceAt_StyledLine(t *testing.T) {
	line := lipgloss.NewStyle().Bold(true).Render("abcdef")
	got := placeAt(line, 2, "XY")
	assert.Equal(t, "abXYef", ansi.Strip(got))
	assert.Equal(t, 6, ansi.StringWidth(got))
}

func TestOverlay(t *testing.T) {
	base := "....\n....\n...."
	got := overlay(base, "ab\ncd", 1, 1)
	assert.Equal(t, "....\n.ab.\n.cd.", got)

	// Rows past the end of base are added.
	got = overlay("x", "y", 0, 2)
	assert.Equal(t, "x\n\ny", got)
}

func TestDim(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hi")
	got := dim(styled+"\nthere", func(s ...string) string { return "[" + s[0] + "]" })
	assert.Equal(t, "[hi]\n[there]", got)
}
