package motion

import "time"

// Channel is one continuously rendered value.
type Channel interface {
	// Step advances the channel by dt and returns the new value.
	Step(dt time.Duration) float64
	// Value returns the current value without advancing.
	Value() float64
	// Settled reports whether the channel is at rest on its target.
	// Looping channels are never settled.
	Settled() bool
}

// Transform is the composed result of an element's channels for one frame.
type Transform struct {
	RotX    float64 // degrees about the horizontal axis
	RotY    float64 // degrees about the vertical axis
	Scale   float64
	OffsetY float64 // rows; negative is up
}

// Identity is the transform of an element at rest.
var Identity = Transform{Scale: 1}

// Compose multiplies scales and adds rotations and offsets.
func (t Transform) Compose(o Transform) Transform {
	return Transform{
		RotX:    t.RotX + o.RotX,
		RotY:    t.RotY + o.RotY,
		Scale:   t.Scale * o.Scale,
		OffsetY: t.OffsetY + o.OffsetY,
	}
}

const settleEpsilon = 1e-3

func near(a, b float64) bool {
	d := a - b
	return d < settleEpsilon && d > -settleEpsilon
}
