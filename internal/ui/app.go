package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/analytics"
	"folio/internal/config"
	"folio/internal/motion"
	"folio/internal/notify"
	"folio/internal/submit"
)

const toastWidth = 36

// AppModel is the root model. It owns the theme and both dialogs, routes
// input to whichever surface is on top, and drives every animation from a
// single frame clock.
type AppModel struct {
	Mode       AppMode
	Theme      Theme
	Styles     Styles
	Profile    config.Profile
	Intro      *IntroView
	Page       *PortfolioView
	Contact    *FormDialog
	Newsletter *FormDialog
	Toaster    *notify.Toaster
	Tracker    analytics.Tracker
	KeyHandler *KeyHandler
	Animator   *motion.Animator

	Width, Height int
}

// AppDeps are the external collaborators of the app.
type AppDeps struct {
	Sender  submit.Sender
	Tracker analytics.Tracker
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(cfg config.Config, deps AppDeps) *AppModel {
	if deps.Tracker == nil {
		deps.Tracker = analytics.Nop{}
	}
	theme := ParseTheme(cfg.Theme)
	styles := NewStyles(theme)
	toaster := notify.NewToaster(styles.Toast())

	dd := DialogDeps{
		Sender:     deps.Sender,
		Notifier:   toaster,
		Tracker:    deps.Tracker,
		Timeout:    cfg.Email.Timeout,
		Transition: cfg.Motion.Dialog,
	}

	reg := NewKeybindRegistry()
	portfolio := []AppMode{ModePortfolio}
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.Bind("ctrl+c", tea.Quit)
	reg.BindWithDescForMode("c", func() tea.Msg { return ShowContactMsg{} }, "Contact", portfolio)
	reg.BindWithDescForMode("n", func() tea.Msg { return ShowNewsletterMsg{} }, "Newsletter", portfolio)
	reg.BindWithDescForMode("t", func() tea.Msg { return ToggleThemeMsg{} }, "Theme", portfolio)
	reg.BindWithDescForMode("esc", func() tea.Msg { return DismissToastsMsg{} }, "", portfolio)

	m := &AppModel{
		Mode:       ModeIntro,
		Theme:      theme,
		Styles:     styles,
		Profile:    cfg.Profile,
		Intro:      NewIntroView(styles),
		Page:       NewPortfolioView(cfg, theme),
		Contact:    NewContactDialog(dd),
		Newsletter: NewNewsletterDialog(dd),
		Toaster:    toaster,
		Tracker:    deps.Tracker,
		KeyHandler: NewKeyHandler(reg),
		Animator:   motion.NewAnimator(cfg.Motion.FPS),
	}
	if !cfg.Motion.Intro {
		m.Mode = ModePortfolio
	}
	m.applyTheme()
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Animator.Tick(), a.currentView().Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case motion.FrameMsg:
		a.step(msg)
		return a, a.Animator.Tick()
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
		a.Intro.Update(msg)
		a.Page.Update(msg)
		a.Contact.Update(msg)
		a.Newsletter.Update(msg)
		return a, nil
	case IntroDoneMsg:
		a.Mode = ModePortfolio
		return a, nil
	case ShowContactMsg:
		return a, a.show(a.Contact)
	case ShowNewsletterMsg:
		return a, a.show(a.Newsletter)
	case DismissModalMsg:
		if d := a.activeDialog(); d != nil {
			d.Close()
		}
		return a, nil
	case DismissToastsMsg:
		a.Toaster.Dismiss()
		return a, nil
	case ToggleThemeMsg:
		a.Theme = a.Theme.Toggled()
		a.applyTheme()
		return a, nil
	case SocialClickMsg:
		a.Tracker.Track(analytics.Event{Action: "click", Category: "social", Label: strings.ToLower(msg.Label)})
		a.Toaster.Show(notify.Notification{Title: msg.Label, Description: msg.URL})
		return a, nil
	case ResumeMsg:
		a.Tracker.Track(analytics.Event{Action: "download", Category: "resume", Label: "hero_section"})
		a.Toaster.Show(notify.Notification{Title: "Resume", Description: a.Profile.Resume})
		return a, nil
	case submit.ResultMsg:
		a.resolve(msg)
		return a, nil
	case spinner.TickMsg:
		_, c1 := a.Contact.Update(msg)
		_, c2 := a.Newsletter.Update(msg)
		return a, tea.Batch(c1, c2)
	case tea.BlurMsg:
		a.Page.PointerLeave()
		a.Contact.hovered = ""
		a.Newsletter.hovered = ""
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case tea.MouseMsg:
		if a.Mode != ModePortfolio {
			return a, nil
		}
		if d := a.activeDialog(); d != nil {
			a.Page.PointerLeave()
			_, cmd := d.Update(msg)
			return a, cmd
		}
		_, cmd := a.Page.Update(msg)
		return a, cmd
	}

	if d := a.activeDialog(); d != nil {
		_, cmd := d.Update(msg)
		return a, cmd
	}
	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	// An open dialog owns the keyboard so typed letters reach its fields.
	if d := a.activeDialog(); d != nil {
		_, cmd := d.Update(msg)
		return cmd
	}
	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
			return cmd
		}
	}
	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return cmd
}

// step advances every animation by one frame.
func (a *AppModel) step(msg motion.FrameMsg) {
	step := stepMsg{DT: a.Animator.Advance(msg)}
	if a.Mode == ModeIntro {
		a.Intro.Update(step)
	}
	a.Page.Update(step)
	a.Contact.Update(step)
	a.Newsletter.Update(step)
	a.Toaster.Prune()
}

// show opens d unless another dialog is already on screen.
func (a *AppModel) show(d *FormDialog) tea.Cmd {
	if a.Mode != ModePortfolio || a.activeDialog() != nil {
		return nil
	}
	if !d.Show() {
		return nil
	}
	a.Page.PointerLeave()
	return d.takeFocusCmd()
}

// activeDialog returns the dialog currently on screen, if any.
func (a *AppModel) activeDialog() *FormDialog {
	for _, d := range []*FormDialog{a.Contact, a.Newsletter} {
		if d.Modal.Visible() {
			return d
		}
	}
	return nil
}

func (a *AppModel) resolve(msg submit.ResultMsg) {
	for _, d := range []*FormDialog{a.Contact, a.Newsletter} {
		if d.Pipeline.ID() != msg.Pipeline {
			continue
		}
		if err := d.Resolve(msg); err != nil && !submit.IsStale(err) {
			log.Printf("ui: %s submission: %v", msg.Kind, err)
		}
		return
	}
	log.Printf("ui: result for unknown pipeline %d dropped", msg.Pipeline)
}

func (a *AppModel) applyTheme() {
	a.Styles = NewStyles(a.Theme)
	a.Intro.Styles = a.Styles
	a.Page.SetTheme(a.Theme)
	a.Contact.SetStyles(a.Styles)
	a.Newsletter.SetStyles(a.Styles)
	a.Toaster.SetStyles(a.Styles.Toast())
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Mode == ModeIntro {
		return a.Intro.View()
	}
	base := a.Page.View()
	if a.Height > 0 {
		lines := strings.Split(base, "\n")
		for len(lines) < a.Height-1 {
			lines = append(lines, "")
		}
		base = strings.Join(lines, "\n")
	}
	var extra []Hint
	d := a.activeDialog()
	if d == nil && a.Toaster.Len() > 0 {
		extra = append(extra, Hint{Key: "esc", Desc: "Dismiss"})
	}
	base += "\n" + RenderKeybindHelp(a.KeyHandler.Registry, a.Mode, a.Styles, extra...)

	if d != nil {
		p := d.Modal.Panel()
		base = overlay(dim(base, a.Styles.Muted.Render), d.View(), p.X, p.Y+d.Offset())
	}
	if a.Toaster.Len() > 0 {
		base = overlay(base, a.Toaster.View(toastWidth), max(0, a.Width-toastWidth-4), 3)
	}
	return base
}

func (a *appModelAdapter) currentView() View {
	if a.Mode == ModeIntro {
		return a.Intro
	}
	return a.Page
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch t := v.(type) {
	case *IntroView:
		a.Intro = t
	case *PortfolioView:
		a.Page = t
	}
}
