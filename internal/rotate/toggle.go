// Package rotate implements the hover affordance that spins an icon half a
// turn on enter and back the other way on leave.
package rotate

import (
	"time"

	"folio/internal/motion"
)

// Half is the sweep of one phase, in degrees.
const Half = 180.0

// DefaultDuration is the length of one sweep.
const DefaultDuration = 400 * time.Millisecond

// Toggle tracks an icon's angle across hover cycles.
//
// Enter sweeps toward +180 and leave sweeps toward -180. When a sweep ends
// at -180 the angle is snapped back to 0, so the next enter is again a full
// +180 sweep and the angle never winds past a single half turn.
type Toggle struct {
	tween        *motion.Tween
	hovered      bool
	pendingReset bool
}

// New creates a toggle at rest.
func New(d time.Duration) *Toggle {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Toggle{tween: motion.NewTween(d, motion.Standard, 0)}
}

// HoverEnter starts the forward sweep. Repeated enters are ignored.
func (t *Toggle) HoverEnter() {
	if t.hovered {
		return
	}
	t.hovered = true
	t.pendingReset = false
	t.tween.SetTarget(Half)
}

// HoverLeave starts the reverse sweep. A leave without an enter is ignored.
func (t *Toggle) HoverLeave() {
	if !t.hovered {
		return
	}
	t.hovered = false
	t.pendingReset = true
	t.tween.SetTarget(-Half)
}

// Hovered reports whether the pointer is over the icon.
func (t *Toggle) Hovered() bool { return t.hovered }

// Step advances the sweep and applies the reset when the reverse sweep lands.
func (t *Toggle) Step(dt time.Duration) float64 {
	t.tween.Step(dt)
	if t.tween.Completed() && t.pendingReset && t.tween.Target() == -Half {
		t.pendingReset = false
		t.tween.Jump(0)
	}
	return t.tween.Value()
}

// Angle returns the current angle in degrees.
func (t *Toggle) Angle() float64 { return t.tween.Value() }

// Settled reports whether no sweep is in progress.
func (t *Toggle) Settled() bool { return t.tween.Settled() }
