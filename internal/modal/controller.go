// Package modal owns the open/close lifecycle of a dialog.
package modal

import (
	"time"

	"folio/internal/geom"
	"folio/internal/motion"
)

// Phase is a dialog lifecycle phase.
type Phase int

const (
	Closed Phase = iota
	Opening
	Open
	Closing
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "Closed"
	case Opening:
		return "Opening"
	case Open:
		return "Open"
	case Closing:
		return "Closing"
	default:
		return "Unknown"
	}
}

// DefaultTransition is the enter/exit duration used when none is configured.
const DefaultTransition = 300 * time.Millisecond

// Controller drives one dialog through Closed → Opening → Open → Closing → Closed.
// Progress runs 0→1 while opening and back to 0 while closing; the renderer
// uses it for fade/scale and mounts the dialog whenever Visible is true.
type Controller struct {
	// OnChange is called after every phase change.
	OnChange func(from, to Phase)

	phase    Phase
	progress *motion.Tween
	panel    geom.Rect
}

// NewController creates a closed controller with the given transition length.
func NewController(d time.Duration) *Controller {
	if d < 0 {
		d = DefaultTransition
	}
	return &Controller{progress: motion.NewTween(d, motion.Apple, 0)}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Visible reports whether the dialog should be rendered.
func (c *Controller) Visible() bool { return c.phase != Closed }

// Interactive reports whether the dialog accepts input.
func (c *Controller) Interactive() bool { return c.phase == Opening || c.phase == Open }

// Progress returns the eased transition progress in [0, 1].
func (c *Controller) Progress() float64 { return c.progress.Value() }

// Open starts the enter transition. It is a no-op unless the dialog is Closed.
func (c *Controller) Open() bool {
	if c.phase != Closed {
		return false
	}
	c.set(Opening)
	c.progress.SetTarget(1)
	return true
}

// Close starts the exit transition from Open, or reverses an enter
// transition that is still running. Otherwise it is a no-op.
func (c *Controller) Close() bool {
	if c.phase != Open && c.phase != Opening {
		return false
	}
	c.set(Closing)
	c.progress.SetTarget(0)
	return true
}

// Step advances the transition and settles Opening/Closing when it lands.
func (c *Controller) Step(dt time.Duration) {
	if c.phase != Opening && c.phase != Closing {
		return
	}
	c.progress.Step(dt)
	if !c.progress.Completed() && c.progress.Running() {
		return
	}
	switch c.phase {
	case Opening:
		c.set(Open)
	case Closing:
		c.panel = geom.Rect{}
		c.set(Closed)
	}
}

// SetPanel records where the dialog panel was last rendered.
func (c *Controller) SetPanel(r geom.Rect) { c.panel = r }

// Panel returns the last rendered panel bounds.
func (c *Controller) Panel() geom.Rect { return c.panel }

// Click handles a pointer press at (x, y) while the dialog is shown.
// A press on the backdrop (anything outside the panel) closes the dialog;
// a press inside the panel is contained and left for the panel's own
// controls. Returns true if the press closed the dialog.
func (c *Controller) Click(x, y int) bool {
	if !c.Interactive() {
		return false
	}
	if c.panel.Contains(x, y) {
		return false
	}
	return c.Close()
}

func (c *Controller) set(p Phase) {
	from := c.phase
	c.phase = p
	if c.OnChange != nil && from != p {
		c.OnChange(from, p)
	}
}
