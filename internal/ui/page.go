package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/config"
	"folio/internal/geom"
	"folio/internal/ui/textutil"
)

// heroTop is the first row below the navbar.
const heroTop = 4

// hitTarget is a clickable region of the page.
type hitTarget struct {
	id   string
	rect geom.Rect
	msg  tea.Msg
}

// PortfolioView is the page: navbar, avatar, copy, action buttons and
// social links. It does no I/O; clicks become messages for the root model.
type PortfolioView struct {
	Width, Height int
	Profile       config.Profile

	Navbar     *Navbar
	Avatar     *Avatar
	Typewriter *Typewriter

	theme   Theme
	styles  Styles
	targets []hitTarget
	hovered string
}

// Ensure PortfolioView implements View.
var _ View = (*PortfolioView)(nil)

// NewPortfolioView builds the page from the site configuration.
func NewPortfolioView(cfg config.Config, theme Theme) *PortfolioView {
	return &PortfolioView{
		Profile:    cfg.Profile,
		Navbar:     NewNavbar(cfg.Profile.Initials),
		Avatar:     NewAvatar(cfg.Profile.Initials, cfg.Motion),
		Typewriter: NewTypewriter(cfg.Profile.Roles),
		theme:      theme,
		styles:     NewStyles(theme),
	}
}

// SetTheme switches the colors used for rendering.
func (v *PortfolioView) SetTheme(t Theme) {
	v.theme = t
	v.styles = NewStyles(t)
	v.relayout()
}

// Init implements View.
func (v *PortfolioView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *PortfolioView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.Width, v.Height = msg.Width, msg.Height
		v.relayout()
	case stepMsg:
		v.Navbar.Step(msg.DT)
		v.Avatar.Step(msg.DT)
		v.Typewriter.Step(msg.DT)
	case tea.BlurMsg:
		v.PointerLeave()
	case tea.MouseMsg:
		return v, v.handleMouse(msg)
	}
	return v, nil
}

func (v *PortfolioView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Action == tea.MouseActionMotion:
		v.PointerMove(msg.X, msg.Y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		v.PointerMove(msg.X, msg.Y)
		if cmd := v.Navbar.Click(msg.X, msg.Y); cmd != nil {
			return cmd
		}
		for _, t := range v.targets {
			if t.rect.Contains(msg.X, msg.Y) {
				m := t.msg
				return func() tea.Msg { return m }
			}
		}
	}
	return nil
}

// PointerMove routes a pointer sample to every tracked element.
func (v *PortfolioView) PointerMove(x, y int) {
	v.Navbar.PointerMove(x, y)
	v.Avatar.PointerMove(x, y)
	v.hovered = ""
	for _, t := range v.targets {
		if t.rect.Contains(x, y) {
			v.hovered = t.id
			break
		}
	}
}

// PointerLeave resets every tracked element to rest.
func (v *PortfolioView) PointerLeave() {
	v.Navbar.PointerLeave()
	v.Avatar.PointerLeave()
	v.hovered = ""
}

// relayout computes element bounds for the current width. Rows follow the
// order View draws them in.
func (v *PortfolioView) relayout() {
	v.Navbar.Layout(v.Width, v.theme)
	v.Avatar.SetBounds(geom.Rect{X: v.centerX(avatarW), Y: heroTop, W: avatarW, H: avatarH})

	v.targets = v.targets[:0]
	row := v.buttonRow()
	labels := v.buttonLabels()
	x := v.centerX(lipgloss.Width(strings.Join(labels, "  ")))
	buttons := []hitTarget{
		{id: "contact", msg: ShowContactMsg{}},
		{id: "resume", msg: ResumeMsg{}},
	}
	for i, l := range labels {
		w := lipgloss.Width(l)
		b := buttons[i]
		b.rect = geom.Rect{X: x, Y: row, W: w, H: 1}
		v.targets = append(v.targets, b)
		x += w + 2
	}

	row = v.socialRow()
	labels = v.socialLabels()
	x = v.centerX(lipgloss.Width(strings.Join(labels, "  ")))
	for i, l := range labels {
		s := v.Profile.Socials[i]
		w := lipgloss.Width(l)
		v.targets = append(v.targets, hitTarget{
			id:   "social:" + s.Label,
			rect: geom.Rect{X: x, Y: row, W: w, H: 1},
			msg:  SocialClickMsg{Label: s.Label, URL: s.URL},
		})
		x += w + 2
	}
}

func (v *PortfolioView) centerX(w int) int { return max(0, (v.Width-w)/2) }

// Row layout below the avatar: name, role, tagline, location, gap, buttons,
// gap, socials.
func (v *PortfolioView) nameRow() int   { return heroTop + avatarH + 1 }
func (v *PortfolioView) buttonRow() int { return v.nameRow() + 5 }
func (v *PortfolioView) socialRow() int { return v.buttonRow() + 2 }

func (v *PortfolioView) buttonLabels() []string {
	return []string{"[ ➤ Contact Me ]", "[ ⤓ Resume ]"}
}

func (v *PortfolioView) socialLabels() []string {
	out := make([]string, len(v.Profile.Socials))
	for i, s := range v.Profile.Socials {
		out[i] = s.Label
	}
	return out
}

// View implements View.
func (v *PortfolioView) View() string {
	s := v.styles
	lines := strings.Split(v.Navbar.View(v.theme, s), "\n")
	for len(lines) < heroTop {
		lines = append(lines, "")
	}

	pad := strings.Repeat(" ", v.centerX(avatarW))
	for _, l := range strings.Split(v.Avatar.View(s), "\n") {
		lines = append(lines, pad+l)
	}
	lines = append(lines, "")

	fit := func(text string) string {
		if v.Width <= 2 {
			return text
		}
		return textutil.Truncate(text, v.Width-2)
	}
	role := v.Typewriter.Text() + "▌"
	lines = append(lines,
		v.center(s.Title.Render(fit(v.Profile.Name))),
		v.center(s.Normal.Render(role)),
		v.center(s.Muted.Render(fit(v.Profile.Tagline))),
		v.center(s.Label.Render(fit("⌖ "+v.Profile.Location))),
		"",
	)

	lines = append(lines, v.renderTargets(func(id string) bool {
		return !strings.HasPrefix(id, "social:")
	}), "")
	lines = append(lines, v.renderTargets(func(id string) bool {
		return strings.HasPrefix(id, "social:")
	}))
	if v.Profile.Resume != "" {
		lines = append(lines, "", v.center(s.Hint.Render("resume: "+v.Profile.Resume)))
	}
	return strings.Join(lines, "\n")
}

// renderTargets draws the hit targets selected by keep on a single row,
// at the columns relayout assigned them.
func (v *PortfolioView) renderTargets(keep func(id string) bool) string {
	labels := map[string]string{"contact": v.buttonLabels()[0], "resume": v.buttonLabels()[1]}
	for _, s := range v.Profile.Socials {
		labels["social:"+s.Label] = s.Label
	}
	line := ""
	for _, t := range v.targets {
		if !keep(t.id) {
			continue
		}
		st := v.styles.Button
		if strings.HasPrefix(t.id, "social:") {
			st = v.styles.Muted.Underline(true)
		}
		if t.id == v.hovered {
			st = v.styles.Focused
		}
		line = placeAt(line, t.rect.X, st.Render(labels[t.id]))
	}
	return line
}

func (v *PortfolioView) center(s string) string {
	return strings.Repeat(" ", v.centerX(lipgloss.Width(s))) + s
}

// Hovered returns the id of the hit target under the pointer, if any.
func (v *PortfolioView) Hovered() string { return v.hovered }
