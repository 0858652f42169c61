package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/geom"
)

func newTestPage(t *testing.T) *PortfolioView {
	t.Helper()
	v := NewPortfolioView(testConfig(), ThemeDark)
	v.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return v
}

func targetRect(t *testing.T, v *PortfolioView, id string) geom.Rect {
	t.Helper()
	for _, tg := range v.targets {
		if tg.id == id {
			return tg.rect
		}
	}
	t.Fatalf("no hit target %q", id)
	return geom.Rect{}
}

func TestPortfolioView_AvatarTracksPointer(t *testing.T) {
	v := newTestPage(t)
	b := v.Avatar.Bounds()
	require.True(t, b.Measured())

	// Upper-left quadrant: tilts back and to the left.
	v.Update(mouseMove(b.X+1, b.Y+1))
	tg := v.Avatar.Target()
	assert.True(t, tg.Hovered)
	assert.Greater(t, tg.RotX, 0.0)
	assert.Less(t, tg.RotY, 0.0)

	v.Update(stepMsg{DT: 200 * time.Millisecond})
	assert.NotZero(t, v.Avatar.Transform().RotY)

	// Focus loss acts as pointer-leave: the target is zero immediately.
	v.Update(tea.BlurMsg{})
	tg = v.Avatar.Target()
	assert.False(t, tg.Hovered)
	assert.Zero(t, tg.RotX)
	assert.Zero(t, tg.RotY)
}

func TestPortfolioView_PointerOutsideAvatarIsLeave(t *testing.T) {
	v := newTestPage(t)
	b := v.Avatar.Bounds()
	v.Update(mouseMove(b.X+2, b.Y+2))
	v.Update(mouseMove(0, v.Height-1))
	assert.False(t, v.Avatar.Target().Hovered)
}

func TestPortfolioView_Clicks(t *testing.T) {
	v := newTestPage(t)
	tests := []struct {
		id   string
		want tea.Msg
	}{
		{"contact", ShowContactMsg{}},
		{"resume", ResumeMsg{}},
		{"social:GitHub", SocialClickMsg{Label: "GitHub", URL: "https://github.com/muhamadhasib"}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r := targetRect(t, v, tt.id)
			_, cmd := v.Update(mouseClick(r.X, r.Y))
			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
		})
	}

	_, cmd := v.Update(mouseClick(0, v.Height-1))
	assert.Nil(t, cmd, "click on empty space does nothing")
}

func TestPortfolioView_NavbarClick(t *testing.T) {
	v := newTestPage(t)
	r := v.Navbar.button("theme").rect
	_, cmd := v.Update(mouseClick(r.X, r.Y))
	require.NotNil(t, cmd)
	assert.Equal(t, ToggleThemeMsg{}, cmd())
}

func TestPortfolioView_HoverHighlightsTarget(t *testing.T) {
	v := newTestPage(t)
	r := targetRect(t, v, "resume")
	v.Update(mouseMove(r.X+1, r.Y))
	assert.Equal(t, "resume", v.Hovered())
	v.Update(tea.BlurMsg{})
	assert.Equal(t, "", v.Hovered())
}

func TestPortfolioView_ViewMatchesLayout(t *testing.T) {
	v := newTestPage(t)
	lines := strings.Split(ansi.Strip(v.View()), "\n")

	require.Greater(t, len(lines), v.socialRow())
	assert.Contains(t, lines[navRow], "MH")
	assert.Contains(t, lines[v.nameRow()], "Muhammad Hasib")
	assert.Contains(t, lines[v.buttonRow()], "Contact Me")
	assert.Contains(t, lines[v.socialRow()], "GitHub")

	r := targetRect(t, v, "contact")
	assert.Equal(t, "[", string([]rune(lines[r.Y])[r.X]))
}
