package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the one-line help footer for mode.
func RenderKeybindHelp(reg *KeybindRegistry, mode AppMode, s Styles, extra ...Hint) string {
	if reg == nil {
		return ""
	}
	hints := append(reg.Hints(mode), extra...)
	if len(hints) == 0 {
		return ""
	}
	bindings := make([]key.Binding, 0, len(hints))
	for _, h := range hints {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(h.Key),
			key.WithHelp(h.Key, h.Desc),
		))
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.Palette.Highlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = s.Hint
	helpModel.Styles.ShortSeparator = s.Hint
	return helpModel.ShortHelpView(bindings)
}
