package ui

import (
	"github.com/charmbracelet/lipgloss"

	"folio/internal/notify"
)

// Styles contains shared style definitions used across views and dialogs.
// Build one per theme with NewStyles.
type Styles struct {
	Palette Palette

	// Title styles
	Title        lipgloss.Style // Bold accent color - for main titles
	TitleWarning lipgloss.Style // Bold danger color - for failure titles
	Brand        lipgloss.Style // Navbar initials

	// Box styles
	Box       lipgloss.Style // Dialog panel with rounded border (highlight border)
	BoxDanger lipgloss.Style // Destructive toast box

	// Text styles
	Selected lipgloss.Style // Hovered/focused items (bold highlight color)
	Muted    lipgloss.Style // Dimmed text
	Normal   lipgloss.Style // Body text
	Hint     lipgloss.Style // Help/hint text
	Error    lipgloss.Style // Inline field errors
	Button   lipgloss.Style // Idle button
	Focused  lipgloss.Style // Focused or hovered button
	Label    lipgloss.Style // Field labels
}

// NewStyles resolves the style set for t.
func NewStyles(t Theme) Styles {
	p := t.Palette()
	return Styles{
		Palette: p,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Accent)),
		TitleWarning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Danger)),
		Brand: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Text)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Highlight)).
			Padding(1, 2),
		BoxDanger: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Danger)).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Highlight)).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Danger)),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),
		Focused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Highlight)).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Dim)),
	}
}

// Toast returns the toast styles for this theme.
func (s Styles) Toast() notify.Styles {
	return notify.Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(s.Palette.Accent)).
			Padding(0, 1),
		Destructive: s.BoxDanger,
		Title:       s.Title,
		Description: s.Normal,
	}
}
