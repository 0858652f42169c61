package tilt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/geom"
)

func TestEngine_BoundedOverWholeContainer(t *testing.T) {
	e := NewEngine(15)
	r := geom.Rect{X: 3, Y: 2, W: 21, H: 9}
	e.SetBounds(r)

	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			e.Move(x, y)
			got := e.Target()
			require.True(t, got.Hovered)
			assert.LessOrEqual(t, math.Abs(got.RotX), 15.0, "(%d,%d)", x, y)
			assert.LessOrEqual(t, math.Abs(got.RotY), 15.0, "(%d,%d)", x, y)
		}
	}
}

func TestEngine_Direction(t *testing.T) {
	e := NewEngine(15)
	e.SetBounds(geom.Rect{X: 0, Y: 0, W: 20, H: 10})

	e.Move(19, 5)
	assert.Greater(t, e.Target().RotY, 0.0, "pointer right turns right")

	e.Move(0, 5)
	assert.Less(t, e.Target().RotY, 0.0, "pointer left turns left")

	e.Move(10, 0)
	assert.Greater(t, e.Target().RotX, 0.0, "pointer above has inverted sign")

	e.Move(10, 9)
	assert.Less(t, e.Target().RotX, 0.0)
}

func TestEngine_CenterIsFlat(t *testing.T) {
	e := NewEngine(15)
	e.SetBounds(geom.Rect{X: 0, Y: 0, W: 21, H: 11})
	e.Move(10, 5)
	assert.InDelta(t, 0, e.Target().RotX, 1e-9)
	assert.InDelta(t, 0, e.Target().RotY, 1e-9)
}

func TestEngine_LeaveResetsRegardlessOfPrevious(t *testing.T) {
	e := NewEngine(15)
	e.SetBounds(geom.Rect{X: 0, Y: 0, W: 20, H: 10})

	for _, p := range [][2]int{{0, 0}, {19, 9}, {5, 7}} {
		e.Move(p[0], p[1])
		e.Leave()
		assert.Equal(t, Target{}, e.Target())
	}
}

func TestEngine_MoveOutsideActsAsLeave(t *testing.T) {
	e := NewEngine(15)
	e.SetBounds(geom.Rect{X: 5, Y: 5, W: 10, H: 4})
	e.Move(14, 8)
	require.True(t, e.Target().Hovered)

	e.Move(40, 8)
	assert.Equal(t, Target{}, e.Target())
}

func TestEngine_UnmeasuredKeepsPreviousTarget(t *testing.T) {
	e := NewEngine(15)
	e.Move(3, 3)
	assert.Equal(t, Target{}, e.Target())

	e.SetBounds(geom.Rect{X: 0, Y: 0, W: 10, H: 10})
	e.Move(9, 9)
	prev := e.Target()

	e.SetBounds(geom.Rect{})
	e.Move(1, 1)
	assert.Equal(t, prev, e.Target())
	assert.False(t, math.IsNaN(e.Target().RotX))
}

func TestNewEngine_DefaultMax(t *testing.T) {
	assert.Equal(t, float64(DefaultMaxDeg), NewEngine(0).MaxDeg)
}
