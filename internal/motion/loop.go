package motion

import "time"

// Loop cycles through evenly spaced keyframes over Period, forever.
// Each segment between consecutive keyframes is shaped by Easing.
type Loop struct {
	Keyframes []float64
	Period    time.Duration
	Easing    Easing

	elapsed time.Duration
	value   float64
}

var _ Channel = (*Loop)(nil)

// NewLoop creates a loop positioned at its first keyframe.
func NewLoop(period time.Duration, ease Easing, keyframes ...float64) *Loop {
	l := &Loop{Keyframes: keyframes, Period: period, Easing: ease}
	if len(keyframes) > 0 {
		l.value = keyframes[0]
	}
	return l
}

// Step implements Channel.
func (l *Loop) Step(dt time.Duration) float64 {
	n := len(l.Keyframes)
	if n == 0 {
		return 0
	}
	if n == 1 || l.Period <= 0 {
		l.value = l.Keyframes[0]
		return l.value
	}
	l.elapsed = (l.elapsed + dt) % l.Period
	p := float64(l.elapsed) / float64(l.Period)
	segs := float64(n - 1)
	i := int(p * segs)
	if i >= n-1 {
		i = n - 2
	}
	local := p*segs - float64(i)
	ease := l.Easing
	if ease == nil {
		ease = Linear
	}
	a, b := l.Keyframes[i], l.Keyframes[i+1]
	l.value = a + (b-a)*ease(local)
	return l.value
}

// Value implements Channel.
func (l *Loop) Value() float64 { return l.value }

// Settled implements Channel. A loop never settles.
func (l *Loop) Settled() bool { return false }

// Phase returns the position within the current cycle in [0, 1).
func (l *Loop) Phase() float64 {
	if l.Period <= 0 {
		return 0
	}
	return float64(l.elapsed) / float64(l.Period)
}
