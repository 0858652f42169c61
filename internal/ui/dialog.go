package ui

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"folio/internal/analytics"
	"folio/internal/geom"
	"folio/internal/modal"
	"folio/internal/submit"
	"folio/internal/ui/textutil"
)

const (
	dialogContentW = 44
	// Border plus padding around the content, per side.
	dialogInsetX = 3
	dialogInsetY = 2
	// Rows the panel slides up by while it enters.
	dialogSlide = 2

	submitID = "submit"
)

// DialogDeps are the collaborators shared by both dialogs.
type DialogDeps struct {
	Sender     submit.Sender
	Notifier   submit.Notifier
	Tracker    analytics.Tracker
	Timeout    time.Duration
	Transition time.Duration
}

// FormDialog is a lead-capture form shown over the page. Its Modal owns the
// open/close lifecycle and its Pipeline owns submission; the dialog wires
// the two together and renders the editors.
type FormDialog struct {
	Title       string
	Subtitle    string
	SubmitLabel string

	Modal    *modal.Controller
	Pipeline *submit.Pipeline

	fields  []*formField
	focus   FocusRing
	spinner spinner.Model
	styles  Styles

	screenW, screenH int
	submitRow        int
	hint             int
	hovered          string
	focusCmd         tea.Cmd
}

// Ensure FormDialog implements View.
var _ View = (*FormDialog)(nil)

func newFormDialog(kind submit.Kind, schema submit.Schema, deps DialogDeps, fields ...*formField) *FormDialog {
	d := &FormDialog{
		Modal:   modal.NewController(deps.Transition),
		fields:  fields,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  NewStyles(ThemeDark),
	}
	d.Pipeline = submit.New(submit.Config{
		Kind:     kind,
		Schema:   schema,
		Sender:   deps.Sender,
		Notifier: deps.Notifier,
		Tracker:  deps.Tracker,
		Closer:   d.Modal,
		Timeout:  deps.Timeout,
	})

	order := make([]string, 0, len(fields)+1)
	row := 4
	for _, f := range fields {
		order = append(order, f.name)
		f.row = row
		row += 1 + f.height() + 1
	}
	order = append(order, submitID)
	d.submitRow = row
	d.hint = row + 2

	d.focus = FocusRing{Order: order, OnChange: d.moveFocus}
	d.Modal.OnChange = d.modalChanged
	d.Pipeline.OnChange = d.pipelineChanged
	return d
}

// NewContactDialog builds the "Say Hello" dialog.
func NewContactDialog(deps DialogDeps) *FormDialog {
	d := newFormDialog(submit.KindContact, submit.ContactSchema(), deps,
		newInputField("name", "Name", "Your full name", dialogContentW-3),
		newInputField("email", "Email", "Your email", dialogContentW-3),
		newAreaField("message", "Message", "Tell me about your project or idea...", dialogContentW-2, 4),
	)
	d.Title = "Say Hello"
	d.Subtitle = "Let's discuss your next AI project or collaboration"
	d.SubmitLabel = "Send Message"
	return d
}

// NewNewsletterDialog builds the newsletter signup dialog.
func NewNewsletterDialog(deps DialogDeps) *FormDialog {
	d := newFormDialog(submit.KindNewsletter, submit.NewsletterSchema(), deps,
		newInputField("email", "Email", "Your email", dialogContentW-3),
	)
	d.Title = "Newsletter"
	d.Subtitle = "Get updates on AI insights, projects, and breakthrough discoveries"
	d.SubmitLabel = "Subscribe"
	return d
}

// SetStyles switches the colors used for rendering.
func (d *FormDialog) SetStyles(s Styles) { d.styles = s }

// Show opens the dialog. Returns false if it was not closed.
func (d *FormDialog) Show() bool {
	if !d.Modal.Open() {
		return false
	}
	d.layout()
	return true
}

// Close starts the exit transition.
func (d *FormDialog) Close() bool { return d.Modal.Close() }

// Focused returns the id of the focused control.
func (d *FormDialog) Focused() string { return d.focus.Current }

// Field returns the editor value for name.
func (d *FormDialog) Field(name string) string {
	if f := d.field(name); f != nil {
		return f.Value()
	}
	return ""
}

// SetField replaces the editor value for name.
func (d *FormDialog) SetField(name, value string) {
	if f := d.field(name); f != nil {
		f.SetValue(value)
	}
}

func (d *FormDialog) field(name string) *formField {
	for _, f := range d.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

func (d *FormDialog) values() submit.Fields {
	out := make(submit.Fields, 0, len(d.fields))
	for _, f := range d.fields {
		out = append(out, submit.Field{Name: f.name, Value: f.Value()})
	}
	return out
}

func (d *FormDialog) modalChanged(from, to modal.Phase) {
	switch to {
	case modal.Opening:
		if from == modal.Closed {
			d.Pipeline.Attach()
			d.focus.Current = ""
			d.focus.Next()
		}
	case modal.Closing:
		d.Pipeline.Detach()
		for _, f := range d.fields {
			f.Blur()
		}
		d.hovered = ""
	}
}

func (d *FormDialog) pipelineChanged(_, to submit.Phase) {
	if to == submit.Succeeded {
		for _, f := range d.fields {
			f.Reset()
		}
	}
}

func (d *FormDialog) moveFocus(from, to string) {
	if f := d.field(from); f != nil {
		f.Blur()
	}
	if f := d.field(to); f != nil {
		d.focusCmd = f.Focus()
	}
}

// Init implements View.
func (d *FormDialog) Init() tea.Cmd { return nil }

// Update implements View.
func (d *FormDialog) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.screenW, d.screenH = msg.Width, msg.Height
		d.layout()
		return d, nil
	case stepMsg:
		d.Modal.Step(msg.DT)
		return d, nil
	case spinner.TickMsg:
		if !d.Pipeline.Pending() {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd
	case tea.MouseMsg:
		return d, d.handleMouse(msg)
	case tea.KeyMsg:
		if !d.Modal.Interactive() {
			return d, nil
		}
		return d, d.handleKey(msg)
	}
	if f := d.field(d.focus.Current); f != nil {
		return d, f.Update(msg)
	}
	return d, nil
}

func (d *FormDialog) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return func() tea.Msg { return DismissModalMsg{} }
	case "tab", "down":
		d.focus.Next()
		return d.takeFocusCmd()
	case "shift+tab", "up":
		d.focus.Prev()
		return d.takeFocusCmd()
	case "ctrl+s":
		return d.submit()
	case "enter":
		f := d.field(d.focus.Current)
		switch {
		case d.focus.IsLast(), f == nil:
			return d.submit()
		case f.multi:
		case d.isLastField(f):
			return d.submit()
		default:
			d.focus.Next()
			return d.takeFocusCmd()
		}
	}
	if f := d.field(d.focus.Current); f != nil {
		return f.Update(msg)
	}
	return nil
}

func (d *FormDialog) isLastField(f *formField) bool {
	return len(d.fields) > 0 && d.fields[len(d.fields)-1] == f
}

func (d *FormDialog) takeFocusCmd() tea.Cmd {
	cmd := d.focusCmd
	d.focusCmd = nil
	return cmd
}

func (d *FormDialog) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x, y := msg.X, msg.Y
	switch {
	case msg.Action == tea.MouseActionMotion:
		d.hovered = d.hit(x, y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if d.Modal.Click(x, y) || !d.Modal.Interactive() {
			return nil
		}
		switch id := d.hit(x, y); id {
		case "":
		case "close":
			d.Close()
		case submitID:
			d.focus.SetFocus(submitID)
			return d.submit()
		default:
			d.focus.SetFocus(id)
			return d.takeFocusCmd()
		}
	}
	return nil
}

// hit returns the control under (x, y): a field name, submitID, "close", or "".
func (d *FormDialog) hit(x, y int) string {
	p := d.Modal.Panel()
	if !p.Contains(x, y) {
		return ""
	}
	cx, cy := x-p.X-dialogInsetX, y-p.Y-dialogInsetY
	if cy == 0 && cx >= dialogContentW-3 && cx < dialogContentW {
		return "close"
	}
	if cx < 0 || cx >= dialogContentW {
		return ""
	}
	for _, f := range d.fields {
		if cy >= f.row && cy <= f.row+f.height() {
			return f.name
		}
	}
	if cy == d.submitRow {
		return submitID
	}
	return ""
}

func (d *FormDialog) submit() tea.Cmd {
	cmd, err := d.Pipeline.Submit(d.values())
	var verr *submit.ValidationError
	switch {
	case errors.As(err, &verr):
		for _, f := range d.fields {
			if _, bad := verr.Fields[f.name]; bad {
				d.focus.SetFocus(f.name)
				break
			}
		}
		return d.takeFocusCmd()
	case err != nil:
		return nil
	}
	return tea.Batch(cmd, d.spinner.Tick)
}

// Resolve applies a submission result addressed to this dialog.
func (d *FormDialog) Resolve(msg submit.ResultMsg) error {
	return d.Pipeline.Resolve(msg)
}

// panelSize returns the outer size of the rendered panel.
func (d *FormDialog) panelSize() (int, int) {
	return dialogContentW + 2*dialogInsetX, d.hint + 1 + 2*dialogInsetY
}

func (d *FormDialog) layout() {
	if !d.Modal.Visible() {
		return
	}
	w, h := d.panelSize()
	d.Modal.SetPanel(geom.Rect{
		X: max(0, (d.screenW-w)/2),
		Y: max(0, (d.screenH-h)/2),
		W: w,
		H: h,
	})
}

// Offset returns how many rows below its resting place the panel is drawn.
func (d *FormDialog) Offset() int {
	return int(math.Round((1 - d.Modal.Progress()) * dialogSlide))
}

// View implements View. It renders the panel only; the caller places it.
func (d *FormDialog) View() string {
	s := d.styles
	lines := make([]string, d.hint+1)

	closeBtn := "[✕]"
	if d.hovered == "close" {
		closeBtn = s.Focused.Render(closeBtn)
	} else {
		closeBtn = s.Muted.Render(closeBtn)
	}
	lines[0] = placeAt(s.Title.Render(d.Title), dialogContentW-3, closeBtn)
	sub := textutil.Wrap(d.Subtitle, dialogContentW)
	for i := 0; i < len(sub) && i < 2; i++ {
		text := sub[i]
		if i == 1 && len(sub) > 2 {
			text = textutil.Truncate(text+" "+sub[2], dialogContentW)
		}
		lines[1+i] = s.Muted.Render(text)
	}

	errs := d.Pipeline.FieldErrors()
	for _, f := range d.fields {
		label := s.Label.Render(f.label)
		if f.Focused() {
			label = s.Selected.Render(f.label)
		}
		if msg, ok := errs[f.name]; ok {
			label += "  " + s.Error.Render(ansi.Truncate(msg, dialogContentW-lipgloss.Width(f.label)-2, "…"))
		}
		lines[f.row] = label
		marker := "  "
		if f.Focused() {
			marker = s.Selected.Render("› ")
		}
		for i, l := range strings.Split(f.View(), "\n") {
			if i >= f.height() {
				break
			}
			lines[f.row+1+i] = marker + l
			marker = "  "
		}
	}

	lines[d.submitRow] = d.submitButton()
	lines[d.hint] = s.Hint.Render("tab: next  enter: send  ctrl+s: send  esc: close")

	box := s.Box
	if d.Modal.Progress() < 0.5 {
		box = box.BorderForeground(lipgloss.Color(s.Palette.Muted))
	}
	return box.Width(dialogContentW + 2*(dialogInsetX-1)).Render(strings.Join(lines, "\n"))
}

func (d *FormDialog) submitButton() string {
	s := d.styles
	label := d.SubmitLabel
	if d.Pipeline.Pending() {
		label = d.spinner.View() + " Sending..."
	}
	pad := max(0, dialogContentW-4-lipgloss.Width(label))
	text := "[ " + strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2) + " ]"
	if d.focus.Current == submitID || d.hovered == submitID {
		return s.Focused.Render(text)
	}
	return s.Button.Render(text)
}
