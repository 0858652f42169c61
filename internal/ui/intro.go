package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/motion"
)

const (
	introText      = "CONNECTING......."
	introCharDelay = 35 * time.Millisecond
	introHold      = 700 * time.Millisecond
	introFade      = 800 * time.Millisecond
)

// IntroView reveals the connecting banner one character at a time, holds,
// then fades out and hands over to the portfolio. Any key skips it.
type IntroView struct {
	Width, Height int
	Styles        Styles

	elapsed time.Duration
	fade    *motion.Tween
	done    bool
}

// Ensure IntroView implements View.
var _ View = (*IntroView)(nil)

// NewIntroView creates the intro screen.
func NewIntroView(s Styles) *IntroView {
	return &IntroView{Styles: s, fade: motion.NewTween(introFade, motion.Apple, 1)}
}

// Init implements View.
func (v *IntroView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *IntroView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.Width, v.Height = msg.Width, msg.Height
	case tea.KeyMsg:
		return v, v.finish()
	case stepMsg:
		v.elapsed += msg.DT
		if v.elapsed >= v.revealTime()+introHold {
			v.fade.SetTarget(0)
		}
		v.fade.Step(msg.DT)
		if v.fade.Completed() && v.fade.Target() == 0 {
			return v, v.finish()
		}
	}
	return v, nil
}

func (v *IntroView) finish() tea.Cmd {
	if v.done {
		return nil
	}
	v.done = true
	return func() tea.Msg { return IntroDoneMsg{} }
}

func (v *IntroView) revealTime() time.Duration {
	return time.Duration(len(introText)) * introCharDelay
}

// Revealed returns the visible prefix of the banner.
func (v *IntroView) Revealed() string {
	n := int(v.elapsed/introCharDelay) + 1
	if n > len(introText) {
		n = len(introText)
	}
	return introText[:n]
}

// Opacity returns the fade level in [0, 1].
func (v *IntroView) Opacity() float64 { return v.fade.Value() }

// View implements View.
func (v *IntroView) View() string {
	st := v.Styles.Brand
	switch o := v.Opacity(); {
	case o < 0.33:
		st = v.Styles.Label
	case o < 0.66:
		st = v.Styles.Muted
	}
	if v.Opacity() < 0.05 {
		return ""
	}
	text := st.Render(v.Revealed())
	if v.Width == 0 || v.Height == 0 {
		return text
	}
	return lipgloss.Place(v.Width, v.Height, lipgloss.Center, lipgloss.Center, text)
}
