package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("ctrl+c", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q", ModePortfolio) == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("ctrl+c", ModeIntro) == nil {
		t.Error("expected ctrl+c to be bound in every mode")
	}
	if reg.Lookup("unknown", ModePortfolio) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_ModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("c", func() tea.Msg { return ShowContactMsg{} }, "Contact", []AppMode{ModePortfolio})

	if reg.Lookup("c", ModeIntro) != nil {
		t.Error("c should not fire during the intro")
	}
	if reg.Lookup("c", ModePortfolio) == nil {
		t.Error("c should fire on the portfolio")
	}
}

func TestKeybindRegistry_Hints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.Bind("ctrl+c", tea.Quit)
	reg.BindWithDescForMode("t", func() tea.Msg { return ToggleThemeMsg{} }, "Theme", []AppMode{ModePortfolio})

	hints := reg.Hints(ModePortfolio)
	if len(hints) != 2 {
		t.Fatalf("expected 2 hints, got %d: %v", len(hints), hints)
	}
	if hints[0].Key != "q" || hints[1].Key != "t" {
		t.Errorf("hints not sorted by key: %v", hints)
	}
	if got := reg.Hints(ModeIntro); len(got) != 1 {
		t.Errorf("expected only q in intro, got %v", got)
	}
}

func TestKeybindRegistry_RebindClearsDescription(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.Bind("q", tea.Quit)
	if len(reg.Hints(ModePortfolio)) != 0 {
		t.Error("rebinding without a description should drop the hint")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), ModePortfolio)
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"), ModePortfolio)
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	out := RenderKeybindHelp(reg, ModePortfolio, NewStyles(ThemeDark))
	if out == "" {
		t.Fatal("expected help output")
	}
	if RenderKeybindHelp(nil, ModePortfolio, NewStyles(ThemeDark)) != "" {
		t.Error("nil registry should render nothing")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// mouseMove and mouseClick create pointer events at (x, y).
func mouseMove(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func mouseClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// typeText feeds s to v one rune at a time.
func typeText(v View, s string) {
	for _, r := range s {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
