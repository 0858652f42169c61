package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// SpringProfile describes a spring by stiffness, damping and mass
// (mass defaults to 1).
type SpringProfile struct {
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
	Mass      float64 `yaml:"mass"`
}

// frequency returns the angular frequency and damping ratio harmonica expects.
func (p SpringProfile) frequency() (omega, zeta float64) {
	m := p.Mass
	if m <= 0 {
		m = 1
	}
	if p.Stiffness <= 0 {
		return 0, 1
	}
	omega = math.Sqrt(p.Stiffness / m)
	zeta = p.Damping / (2 * math.Sqrt(p.Stiffness*m))
	return omega, zeta
}

// Spring moves a scalar toward a target with spring dynamics.
// It integrates in fixed steps of one frame; leftover time carries over
// to the next Step so the motion does not depend on tick jitter.
type Spring struct {
	spring harmonica.Spring
	frame  time.Duration
	carry  time.Duration

	pos, vel, target float64
}

var _ Channel = (*Spring)(nil)

// NewSpring creates a spring resting at 0, integrated at fps.
func NewSpring(p SpringProfile, fps int) *Spring {
	if fps <= 0 {
		fps = DefaultFPS
	}
	omega, zeta := p.frequency()
	return &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(fps), omega, zeta),
		frame:  time.Second / time.Duration(fps),
	}
}

// SetTarget retargets the spring. Position and velocity are kept,
// so a retarget mid-flight bends the motion instead of restarting it.
func (s *Spring) SetTarget(v float64) {
	s.target = v
}

// Target returns the current target.
func (s *Spring) Target() float64 { return s.target }

// Velocity returns the current velocity in units per frame.
func (s *Spring) Velocity() float64 { return s.vel }

// Jump places the spring at rest on v.
func (s *Spring) Jump(v float64) {
	s.pos, s.vel, s.target = v, 0, v
	s.carry = 0
}

// Step implements Channel.
func (s *Spring) Step(dt time.Duration) float64 {
	s.carry += dt
	for s.carry >= s.frame {
		s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
		s.carry -= s.frame
	}
	if s.Settled() {
		s.pos, s.vel = s.target, 0
	}
	return s.pos
}

// Value implements Channel.
func (s *Spring) Value() float64 { return s.pos }

// Settled implements Channel.
func (s *Spring) Settled() bool {
	return near(s.pos, s.target) && near(s.vel, 0)
}

// Spring2 drives a two-component vector with one spring per axis.
type Spring2 struct {
	X, Y *Spring
}

// NewSpring2 creates a vector spring resting at (0, 0).
func NewSpring2(p SpringProfile, fps int) *Spring2 {
	return &Spring2{X: NewSpring(p, fps), Y: NewSpring(p, fps)}
}

// SetTarget retargets both axes.
func (s *Spring2) SetTarget(x, y float64) {
	s.X.SetTarget(x)
	s.Y.SetTarget(y)
}

// Step advances both axes.
func (s *Spring2) Step(dt time.Duration) (float64, float64) {
	return s.X.Step(dt), s.Y.Step(dt)
}

// Value returns both axes.
func (s *Spring2) Value() (float64, float64) {
	return s.X.Value(), s.Y.Value()
}

// Settled reports whether both axes are at rest.
func (s *Spring2) Settled() bool {
	return s.X.Settled() && s.Y.Settled()
}
