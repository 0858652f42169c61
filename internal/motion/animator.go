package motion

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultFPS is the frame rate used when none is configured.
	DefaultFPS = 60
	// MaxFrameDelta caps a single step so a stalled terminal does not
	// fling springs across the screen when ticks resume.
	MaxFrameDelta = 100 * time.Millisecond
)

// FrameMsg is delivered once per animation frame.
type FrameMsg struct {
	Time time.Time
}

// Animator schedules frames and measures the time between them.
type Animator struct {
	interval time.Duration
	last     time.Time
}

// NewAnimator creates an animator ticking at fps.
func NewAnimator(fps int) *Animator {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Animator{interval: time.Second / time.Duration(fps)}
}

// Interval returns the nominal frame interval.
func (a *Animator) Interval() time.Duration { return a.interval }

// Tick returns a command that delivers the next FrameMsg.
func (a *Animator) Tick() tea.Cmd {
	return tea.Tick(a.interval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// Advance records a frame and returns the elapsed time since the previous one,
// clamped to (0, MaxFrameDelta]. The first frame reports one interval.
func (a *Animator) Advance(msg FrameMsg) time.Duration {
	dt := a.interval
	if !a.last.IsZero() {
		dt = msg.Time.Sub(a.last)
	}
	a.last = msg.Time
	if dt <= 0 {
		dt = a.interval
	}
	return min(dt, MaxFrameDelta)
}
