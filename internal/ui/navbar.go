package ui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/geom"
	"folio/internal/rotate"
)

const navRow = 1

// sweepFrames are drawn while an icon is part way through a half turn.
var sweepFrames = []string{"◴", "◷", "◶", "◵"}

// iconFrame returns the glyph for an icon rotated by angle degrees.
// At rest (0 or ±180) the icon itself is shown.
func iconFrame(icon string, angle float64) string {
	if math.Abs(math.Mod(angle, rotate.Half)) < 1 {
		return icon
	}
	step := int(math.Floor(math.Abs(angle)/45)) % len(sweepFrames)
	if angle < 0 {
		step = len(sweepFrames) - 1 - step
	}
	return sweepFrames[step]
}

// navButton is a navbar control with a rotating icon.
type navButton struct {
	id    string
	icon  func(Theme) string
	label string
	spin  *rotate.Toggle
	rect  geom.Rect
	click tea.Cmd
}

func (b *navButton) text(theme Theme) string {
	glyph := iconFrame(b.icon(theme), b.spin.Angle())
	if b.label == "" {
		return "[ " + glyph + " ]"
	}
	return "[ " + glyph + " " + b.label + " ]"
}

// Navbar is the top bar: initials on the left, newsletter and theme on the right.
type Navbar struct {
	Initials string
	buttons  []*navButton
	width    int
}

// NewNavbar creates the navbar.
func NewNavbar(initials string) *Navbar {
	return &Navbar{
		Initials: initials,
		buttons: []*navButton{
			{
				id:    "newsletter",
				icon:  func(Theme) string { return "✉" },
				label: "Newsletter",
				spin:  rotate.New(rotate.DefaultDuration),
				click: func() tea.Msg { return ShowNewsletterMsg{} },
			},
			{
				id: "theme",
				icon: func(t Theme) string {
					if t == ThemeLight {
						return "☾"
					}
					return "☀"
				},
				spin:  rotate.New(rotate.DefaultDuration),
				click: func() tea.Msg { return ToggleThemeMsg{} },
			},
		},
	}
}

// Layout positions the buttons against the right edge of width.
func (n *Navbar) Layout(width int, theme Theme) {
	n.width = width
	x := width - 2
	for i := len(n.buttons) - 1; i >= 0; i-- {
		b := n.buttons[i]
		w := lipgloss.Width(b.text(theme))
		x -= w
		b.rect = geom.Rect{X: x, Y: navRow, W: w, H: 1}
		x -= 2
	}
}

// PointerMove updates hover state for every button.
func (n *Navbar) PointerMove(x, y int) {
	for _, b := range n.buttons {
		if b.rect.Contains(x, y) {
			b.spin.HoverEnter()
		} else {
			b.spin.HoverLeave()
		}
	}
}

// PointerLeave clears hover on every button.
func (n *Navbar) PointerLeave() {
	for _, b := range n.buttons {
		b.spin.HoverLeave()
	}
}

// Click returns the command of the button under (x, y), if any.
func (n *Navbar) Click(x, y int) tea.Cmd {
	for _, b := range n.buttons {
		if b.rect.Contains(x, y) {
			return b.click
		}
	}
	return nil
}

// Step advances the icon sweeps.
func (n *Navbar) Step(dt time.Duration) {
	for _, b := range n.buttons {
		b.spin.Step(dt)
	}
}

// View renders the navbar row and the rule beneath it.
func (n *Navbar) View(theme Theme, s Styles) string {
	line := strings.Repeat(" ", n.width)
	line = placeAt(line, 2, s.Brand.Render(n.Initials))
	for _, b := range n.buttons {
		st := s.Button
		if b.spin.Hovered() {
			st = s.Focused
		}
		line = placeAt(line, b.rect.X, st.Render(b.text(theme)))
	}
	rule := s.Muted.Render(strings.Repeat("─", max(0, n.width)))
	return "\n" + line + "\n" + rule
}

// button returns the navbar button with id, for tests.
func (n *Navbar) button(id string) *navButton {
	for _, b := range n.buttons {
		if b.id == id {
			return b
		}
	}
	return nil
}
