package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View is a screen with its own state. Views receive stepMsg once per
// animation frame and must never block in Update.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// stepMsg advances a view's animations by DT.
type stepMsg struct {
	DT time.Duration
}
