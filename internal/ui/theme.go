package ui

// Theme is the page color scheme. It is owned by the root model and handed
// to every renderer; nothing reads it from package state.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// ParseTheme maps a config value to a Theme; anything but "light" is dark.
func ParseTheme(s string) Theme {
	if s == "light" {
		return ThemeLight
	}
	return ThemeDark
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Palette is the set of colors a theme resolves to.
type Palette struct {
	Accent    string // titles, highlights
	Highlight string // hovered items, borders
	Danger    string // errors
	Muted     string // hints, dimmed backdrop
	Text      string // body copy
	Dim       string // very dim text
	Warning   string // warnings
	Ring      []string
}

// Palette returns the colors for t.
func (t Theme) Palette() Palette {
	ring := []string{"#9B51E0", "#06B6D4", "#F075C1", "#2F86F9"}
	if t == ThemeLight {
		return Palette{
			Accent:    "#6D28D9",
			Highlight: "#0E7490",
			Danger:    "#B91C1C",
			Muted:     "#6B7280",
			Text:      "#1F2937",
			Dim:       "#9CA3AF",
			Warning:   "#B45309",
			Ring:      ring,
		}
	}
	return Palette{
		Accent:    "86",
		Highlight: "205",
		Danger:    "196",
		Muted:     "241",
		Text:      "252",
		Dim:       "243",
		Warning:   "208",
		Ring:      ring,
	}
}
