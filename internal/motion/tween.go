package motion

import "time"

// Tween moves from its current value to a target over a fixed duration.
// Completed reports the finish edge exactly once per run.
type Tween struct {
	Duration time.Duration
	Easing   Easing

	from, to, cur float64
	elapsed       time.Duration
	running       bool
	completed     bool
}

var _ Channel = (*Tween)(nil)

// NewTween creates a tween resting at v.
func NewTween(d time.Duration, ease Easing, v float64) *Tween {
	return &Tween{Duration: d, Easing: ease, from: v, to: v, cur: v}
}

// SetTarget starts a run from the current value toward v.
// Setting the target already being approached is a no-op.
func (t *Tween) SetTarget(v float64) {
	if v == t.to && (t.running || t.cur == v) {
		return
	}
	t.from, t.to = t.cur, v
	t.elapsed = 0
	t.running = true
	t.completed = false
}

// Target returns the value the tween is moving toward.
func (t *Tween) Target() float64 { return t.to }

// Jump places the tween at rest on v without a completion edge.
func (t *Tween) Jump(v float64) {
	t.from, t.to, t.cur = v, v, v
	t.elapsed = 0
	t.running = false
	t.completed = false
}

// Running reports whether a run is in progress.
func (t *Tween) Running() bool { return t.running }

// Progress returns linear progress of the current run in [0, 1].
func (t *Tween) Progress() float64 {
	if !t.running {
		return 1
	}
	if t.Duration <= 0 {
		return 1
	}
	return min(1, float64(t.elapsed)/float64(t.Duration))
}

// Step implements Channel.
func (t *Tween) Step(dt time.Duration) float64 {
	if !t.running {
		return t.cur
	}
	t.elapsed += dt
	p := t.Progress()
	ease := t.Easing
	if ease == nil {
		ease = Linear
	}
	t.cur = t.from + (t.to-t.from)*ease(p)
	if p >= 1 {
		t.cur = t.to
		t.running = false
		t.completed = true
	}
	return t.cur
}

// Value implements Channel.
func (t *Tween) Value() float64 { return t.cur }

// Settled implements Channel.
func (t *Tween) Settled() bool { return !t.running }

// Completed returns true once after a run reaches its target, then false
// until the next run completes.
func (t *Tween) Completed() bool {
	c := t.completed
	t.completed = false
	return c
}
