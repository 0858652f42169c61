package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField is one editor in a dialog: a single-line input or, when multi
// is set, a textarea.
type formField struct {
	name  string
	label string
	multi bool

	input textinput.Model
	area  textarea.Model

	row int // content row of the label; the editor starts on the next row
}

func newInputField(name, label, placeholder string, width int) *formField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.Width = width
	ti.CharLimit = 254
	return &formField{name: name, label: label, input: ti}
}

func newAreaField(name, label, placeholder string, width, height int) *formField {
	ta := textarea.New()
	ta.Prompt = ""
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 4000
	ta.SetWidth(width)
	ta.SetHeight(height)
	return &formField{name: name, label: label, multi: true, area: ta}
}

// height is the number of rows the editor occupies.
func (f *formField) height() int {
	if f.multi {
		return f.area.Height()
	}
	return 1
}

func (f *formField) Value() string {
	if f.multi {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f *formField) SetValue(v string) {
	if f.multi {
		f.area.SetValue(v)
		return
	}
	f.input.SetValue(v)
}

func (f *formField) Focus() tea.Cmd {
	if f.multi {
		return f.area.Focus()
	}
	return f.input.Focus()
}

func (f *formField) Blur() {
	if f.multi {
		f.area.Blur()
		return
	}
	f.input.Blur()
}

func (f *formField) Focused() bool {
	if f.multi {
		return f.area.Focused()
	}
	return f.input.Focused()
}

func (f *formField) Reset() {
	if f.multi {
		f.area.Reset()
		return
	}
	f.input.Reset()
}

func (f *formField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.multi {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.input, cmd = f.input.Update(msg)
	}
	return cmd
}

func (f *formField) View() string {
	if f.multi {
		return f.area.View()
	}
	return f.input.View()
}
