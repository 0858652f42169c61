package ui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/config"
	"folio/internal/geom"
	"folio/internal/motion"
	"folio/internal/tilt"
)

// Avatar block size in cells. Terminal cells are roughly twice as tall as
// they are wide, so the disc is twice as wide as it is high.
const (
	avatarW = 26
	avatarH = 13
)

// shade ramps from dark to bright.
const shade = " .:-=+*#%@"

// Avatar is the hero's animated portrait: a shaded dome inside a gradient
// ring that leans toward the pointer, bobs, and breathes.
//
// Its channels are independent: the tilt springs follow the pointer, the bob
// and breath loops run forever, and the hover boost tweens on hover. They
// are combined only when the frame is rendered.
type Avatar struct {
	Initials string

	engine *tilt.Engine
	tilt   *motion.Spring2
	bob    *motion.Loop
	breath *motion.Loop
	boost  *motion.Tween
	hover  float64
}

// NewAvatar builds the avatar from motion settings.
func NewAvatar(initials string, m config.Motion) *Avatar {
	hover := m.HoverScale
	if hover <= 0 {
		hover = 1
	}
	return &Avatar{
		Initials: initials,
		engine:   tilt.NewEngine(m.MaxTiltDeg),
		tilt:     motion.NewSpring2(m.Tilt, m.FPS),
		bob:      motion.NewLoop(m.BobPeriod, motion.EaseInOut, 0, -m.BobRows, 0),
		breath:   motion.NewLoop(m.Breath, motion.EaseInOut, 1, 1+m.BreathGain, 1),
		boost:    motion.NewTween(300*time.Millisecond, motion.EaseInOut, 1),
		hover:    hover,
	}
}

// SetBounds records where the avatar block was laid out.
func (a *Avatar) SetBounds(r geom.Rect) { a.engine.SetBounds(r) }

// Bounds returns the avatar's tracked container.
func (a *Avatar) Bounds() geom.Rect { return a.engine.Bounds() }

// PointerMove feeds a pointer sample. The tilt target changes immediately;
// the springs pick it up on the next frame.
func (a *Avatar) PointerMove(x, y int) {
	a.engine.Move(x, y)
	a.retarget()
}

// PointerLeave returns the avatar to rest.
func (a *Avatar) PointerLeave() {
	a.engine.Leave()
	a.retarget()
}

// Target returns the current tilt target.
func (a *Avatar) Target() tilt.Target { return a.engine.Target() }

func (a *Avatar) retarget() {
	t := a.engine.Target()
	a.tilt.SetTarget(t.RotX, t.RotY)
	if t.Hovered {
		a.boost.SetTarget(a.hover)
	} else {
		a.boost.SetTarget(1)
	}
}

// Step advances every channel by dt.
func (a *Avatar) Step(dt time.Duration) {
	a.tilt.Step(dt)
	a.bob.Step(dt)
	a.breath.Step(dt)
	a.boost.Step(dt)
}

// Transform composes the channels for rendering.
func (a *Avatar) Transform() motion.Transform {
	rx, ry := a.tilt.Value()
	pointer := motion.Transform{RotX: rx, RotY: ry, Scale: a.boost.Value()}
	idle := motion.Transform{Scale: a.breath.Value(), OffsetY: a.bob.Value()}
	return motion.Identity.Compose(pointer).Compose(idle)
}

// View renders the avatar block (avatarW × avatarH) with theme colors.
func (a *Avatar) View(s Styles) string {
	return renderAvatar(a.Transform(), a.Initials, s)
}

type cell struct {
	ch    rune
	color string
	bold  bool
}

func renderAvatar(t motion.Transform, initials string, s Styles) string {
	const (
		radiusX = 11.0
		radiusY = 5.5
		ringAt  = 0.80
	)
	rx := t.RotX * math.Pi / 180
	ry := t.RotY * math.Pi / 180
	sx := radiusX * t.Scale * math.Cos(ry)
	sy := radiusY * t.Scale * math.Cos(rx)
	cx := float64(avatarW-1) / 2
	cy := float64(avatarH-1)/2 + math.Round(t.OffsetY)

	// Light from the upper left, slightly in front.
	lx, ly, lz := -0.45, -0.55, 0.70
	ln := math.Sqrt(lx*lx + ly*ly + lz*lz)
	lx, ly, lz = lx/ln, ly/ln, lz/ln

	grid := make([][]cell, avatarH)
	for r := range avatarH {
		row := make([]cell, avatarW)
		for c := range avatarW {
			u := (float64(c) - cx) / sx
			v := (float64(r) - cy) / sy
			d2 := u*u + v*v
			switch {
			case d2 > 1:
				row[c] = cell{ch: ' '}
			case d2 > ringAt*ringAt:
				ang := math.Atan2(v, u) + math.Pi // 0..2π
				idx := int(ang/(2*math.Pi)*float64(len(s.Palette.Ring))) % len(s.Palette.Ring)
				row[c] = cell{ch: '█', color: s.Palette.Ring[idx]}
			default:
				// Dome normal, rotated by the tilt: about Y first, then X.
				nx, ny := u/ringAt, v/ringAt
				nz := math.Sqrt(math.Max(0, 1-nx*nx-ny*ny))
				nx, nz = nx*math.Cos(ry)+nz*math.Sin(ry), -nx*math.Sin(ry)+nz*math.Cos(ry)
				ny, nz = ny*math.Cos(rx)-nz*math.Sin(rx), ny*math.Sin(rx)+nz*math.Cos(rx)
				b := math.Max(0, nx*lx+ny*ly+nz*lz)
				i := int(b * float64(len(shade)-1))
				row[c] = cell{ch: rune(shade[i]), color: s.Palette.Dim}
			}
		}
		grid[r] = row
	}

	// Initials sit on the center row, over the dome.
	if initials != "" {
		r := int(math.Round(cy))
		if r >= 0 && r < avatarH {
			runes := []rune(initials)
			start := int(math.Round(cx)) - len(runes)/2
			for i, ch := range runes {
				c := start + i
				if c >= 0 && c < avatarW {
					grid[r][c] = cell{ch: ch, color: s.Palette.Text, bold: true}
				}
			}
		}
	}

	lines := make([]string, avatarH)
	for r, row := range grid {
		lines[r] = renderCells(row)
	}
	return strings.Join(lines, "\n")
}

// renderCells styles runs of equal color together.
func renderCells(row []cell) string {
	var b strings.Builder
	i := 0
	for i < len(row) {
		j := i
		var run strings.Builder
		for j < len(row) && row[j].color == row[i].color && row[j].bold == row[i].bold {
			run.WriteRune(row[j].ch)
			j++
		}
		if row[i].color == "" {
			b.WriteString(run.String())
		} else {
			st := lipgloss.NewStyle().Foreground(lipgloss.Color(row[i].color)).Bold(row[i].bold)
			b.WriteString(st.Render(run.String()))
		}
		i = j
	}
	return b.String()
}
