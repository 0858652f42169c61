// Package tilt turns pointer samples into a bounded rotation target for
// an element that leans toward the pointer.
package tilt

import (
	"math"

	"folio/internal/geom"
)

// DefaultMaxDeg is the rotation at the container edge when none is configured.
const DefaultMaxDeg = 15

// Target is the desired rotation of the tracked element.
type Target struct {
	RotX    float64 // degrees about the horizontal axis; positive tilts the top away
	RotY    float64 // degrees about the vertical axis; positive turns toward the right
	Hovered bool
}

// Engine tracks one container. The zero value is usable once MaxDeg is set.
type Engine struct {
	MaxDeg float64

	bounds geom.Rect
	target Target
}

// NewEngine creates an engine with the given edge rotation.
func NewEngine(maxDeg float64) *Engine {
	if maxDeg <= 0 {
		maxDeg = DefaultMaxDeg
	}
	return &Engine{MaxDeg: maxDeg}
}

// SetBounds records the container's latest layout.
func (e *Engine) SetBounds(r geom.Rect) {
	e.bounds = r
}

// Bounds returns the last recorded layout.
func (e *Engine) Bounds() geom.Rect { return e.bounds }

// Move updates the target from a pointer sample at cell (x, y).
// Samples outside the container behave like Leave. Before the container has
// been measured the call is a no-op and the previous target is kept.
func (e *Engine) Move(x, y int) {
	if !e.bounds.Measured() {
		return
	}
	if !e.bounds.Contains(x, y) {
		e.Leave()
		return
	}
	// Sample the middle of the cell so a pointer resting on either of the two
	// center cells of an even-width container tilts by the same amount.
	cx, cy := e.bounds.Center()
	nx := (float64(x) + 0.5 - cx) / float64(e.bounds.W)
	ny := (float64(y) + 0.5 - cy) / float64(e.bounds.H)
	e.target = Target{
		RotY:    e.clamp(nx * e.MaxDeg),
		RotX:    e.clamp(-ny * e.MaxDeg),
		Hovered: true,
	}
}

// Leave returns the target to rest. It takes effect immediately so that
// the next rendered frame already animates toward zero.
func (e *Engine) Leave() {
	e.target = Target{}
}

// Target returns the current target.
func (e *Engine) Target() Target { return e.target }

func (e *Engine) clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-e.MaxDeg, math.Min(e.MaxDeg, v))
}
