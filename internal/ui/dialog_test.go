package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/modal"
	"folio/internal/notify"
	"folio/internal/submit"
)

func newTestContact(t *testing.T, s *stubSender) (*FormDialog, *notes) {
	t.Helper()
	n := &notes{}
	d := NewContactDialog(DialogDeps{Sender: s, Notifier: n, Transition: 300 * time.Millisecond})
	d.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	require.True(t, d.Show())
	return d, n
}

func fillContact(d *FormDialog) {
	d.SetField("name", "Ada Lovelace")
	d.SetField("email", "ada@example.com")
	d.SetField("message", "Let's build an engine together.")
}

func TestFormDialog_ShowAttachesAndFocuses(t *testing.T) {
	d, _ := newTestContact(t, &stubSender{})
	assert.Equal(t, modal.Opening, d.Modal.Phase())
	assert.True(t, d.Pipeline.Live())
	assert.Equal(t, "name", d.Focused())
	assert.False(t, d.Show(), "second Show is a no-op")

	settle(d, 400*time.Millisecond)
	assert.Equal(t, modal.Open, d.Modal.Phase())
	assert.Zero(t, d.Offset())
}

func TestFormDialog_TabOrder(t *testing.T) {
	d, _ := newTestContact(t, &stubSender{})
	d.Update(keyMsg("tab"))
	assert.Equal(t, "email", d.Focused())
	d.Update(keyMsg("enter"))
	assert.Equal(t, "message", d.Focused(), "enter on a single-line field advances")
	d.Update(keyMsg("tab"))
	assert.Equal(t, submitID, d.Focused())
	d.Update(keyMsg("tab"))
	assert.Equal(t, "name", d.Focused())
	d.Update(keyMsg("shift+tab"))
	assert.Equal(t, submitID, d.Focused())
}

func TestFormDialog_TypingGoesToFocusedField(t *testing.T) {
	d, _ := newTestContact(t, &stubSender{})
	typeText(d, "Al")
	d.Update(keyMsg("tab"))
	typeText(d, "cn")
	assert.Equal(t, "Al", d.Field("name"))
	assert.Equal(t, "cn", d.Field("email"))
}

func TestFormDialog_InvalidSubmitShowsErrors(t *testing.T) {
	s := &stubSender{}
	d, _ := newTestContact(t, s)
	d.Update(keyMsg("tab"))
	d.SetField("name", "Ada")

	d.Update(keyMsg("ctrl+s"))
	assert.Empty(t, s.calls)
	assert.Equal(t, submit.Idle, d.Pipeline.Phase())

	errs := d.Pipeline.FieldErrors()
	assert.Equal(t, "Please enter a valid email address", errs["email"])
	assert.Equal(t, "Message must be at least 10 characters", errs["message"])
	assert.NotContains(t, errs, "name")
	assert.Equal(t, "email", d.Focused(), "focus jumps to the first invalid field")
	assert.Contains(t, ansi.Strip(d.View()), "Please enter a valid email address")
}

func TestFormDialog_SuccessClearsAndCloses(t *testing.T) {
	s := &stubSender{}
	d, n := newTestContact(t, s)
	settle(d, 400*time.Millisecond)
	fillContact(d)

	_, cmd := d.Update(keyMsg("ctrl+s"))
	require.NotNil(t, cmd)
	assert.True(t, d.Pipeline.Pending())
	assert.Contains(t, ansi.Strip(d.View()), "Sending...")

	res, ok := resultIn(collect(cmd))
	require.True(t, ok)
	require.NoError(t, d.Resolve(res))

	require.Len(t, n.got, 1)
	assert.Equal(t, "Message sent successfully!", n.got[0].Title)
	assert.Equal(t, notify.Default, n.got[0].Variant)
	assert.Empty(t, d.Field("name"))
	assert.Empty(t, d.Field("message"))
	assert.Equal(t, modal.Closing, d.Modal.Phase())
	assert.False(t, d.Pipeline.Live())
	require.Len(t, s.calls, 1)
	assert.Equal(t, "ada@example.com", s.calls[0].Fields.Get("email"))
}

func TestFormDialog_SubmitWhilePendingIsIgnored(t *testing.T) {
	s := &stubSender{}
	d, _ := newTestContact(t, s)
	fillContact(d)

	_, first := d.Update(keyMsg("ctrl+s"))
	require.NotNil(t, first)
	_, second := d.Update(keyMsg("ctrl+s"))
	assert.Nil(t, second)

	collect(first)
	assert.Len(t, s.calls, 1)
}

func TestFormDialog_FailureKeepsDialogOpen(t *testing.T) {
	s := &stubSender{err: errDown}
	d, n := newTestContact(t, s)
	settle(d, 400*time.Millisecond)
	fillContact(d)

	_, cmd := d.Update(keyMsg("ctrl+s"))
	res, ok := resultIn(collect(cmd))
	require.True(t, ok)

	err := d.Resolve(res)
	var derr *submit.DispatchError
	require.True(t, errors.As(err, &derr))
	require.Len(t, n.got, 1)
	assert.Equal(t, "Failed to send message", n.got[0].Title)
	assert.Equal(t, "smtp unavailable", n.got[0].Description)
	assert.Equal(t, notify.Destructive, n.got[0].Variant)

	assert.Equal(t, modal.Open, d.Modal.Phase())
	assert.Equal(t, "Ada Lovelace", d.Field("name"), "fields survive a failure")
	assert.Equal(t, submit.Idle, d.Pipeline.Phase())
}

func TestFormDialog_ResultAfterCloseIsDiscarded(t *testing.T) {
	s := &stubSender{}
	d, n := newTestContact(t, s)
	fillContact(d)

	_, cmd := d.Update(keyMsg("ctrl+s"))
	require.True(t, d.Close())

	// The send still runs to completion.
	res, ok := resultIn(collect(cmd))
	require.True(t, ok)
	assert.Len(t, s.calls, 1)

	assert.True(t, submit.IsStale(d.Resolve(res)))
	assert.Empty(t, n.got)
	assert.Equal(t, "Ada Lovelace", d.Field("name"))
}

func TestFormDialog_ReopenWaitsForEarlierSend(t *testing.T) {
	s := &stubSender{}
	d, n := newTestContact(t, s)
	fillContact(d)

	_, cmd := d.Update(keyMsg("ctrl+s"))
	d.Close()
	settle(d, 400*time.Millisecond)
	require.Equal(t, modal.Closed, d.Modal.Phase())
	require.True(t, d.Show())

	assert.True(t, d.Pipeline.Pending(), "the earlier send is still in flight")
	_, again := d.Update(keyMsg("ctrl+s"))
	_, ok := resultIn(collect(again))
	assert.False(t, ok, "no second send while the first is unresolved")

	res, _ := resultIn(collect(cmd))
	assert.True(t, submit.IsStale(d.Resolve(res)))
	assert.Empty(t, n.got)
	assert.Equal(t, "Ada Lovelace", d.Field("name"), "a stale success leaves the draft alone")
	assert.Equal(t, submit.Idle, d.Pipeline.Phase())

	_, cmd = d.Update(keyMsg("ctrl+s"))
	res, ok = resultIn(collect(cmd))
	require.True(t, ok)
	require.NoError(t, d.Resolve(res))
	assert.Len(t, s.calls, 2)
}

func TestFormDialog_EnterOnSubmitButtonSends(t *testing.T) {
	s := &stubSender{}
	d, _ := newTestContact(t, s)
	fillContact(d)

	d.Update(keyMsg("shift+tab"))
	require.Equal(t, submitID, d.Focused())
	_, cmd := d.Update(keyMsg("enter"))
	_, ok := resultIn(collect(cmd))
	assert.True(t, ok)
	assert.Len(t, s.calls, 1)
}

func TestFormDialog_BackdropClick(t *testing.T) {
	d, _ := newTestContact(t, &stubSender{})
	settle(d, 400*time.Millisecond)
	p := d.Modal.Panel()
	require.True(t, p.Measured())

	d.Update(mouseClick(p.X+1, p.Y+1))
	assert.Equal(t, modal.Open, d.Modal.Phase(), "clicks inside the panel are contained")

	d.Update(mouseClick(p.X-1, p.Y))
	assert.Equal(t, modal.Closing, d.Modal.Phase())
	settle(d, 400*time.Millisecond)
	assert.Equal(t, modal.Closed, d.Modal.Phase())
	assert.False(t, d.Modal.Panel().Measured())
}

func TestFormDialog_MouseControls(t *testing.T) {
	d, _ := newTestContact(t, &stubSender{})
	settle(d, 400*time.Millisecond)
	p := d.Modal.Panel()
	ox, oy := p.X+dialogInsetX, p.Y+dialogInsetY

	email := d.field("email")
	d.Update(mouseClick(ox+2, oy+email.row+1))
	assert.Equal(t, "email", d.Focused())

	d.Update(mouseMove(ox+2, oy+d.submitRow))
	assert.Equal(t, submitID, d.hovered)

	d.Update(mouseClick(ox+dialogContentW-2, oy))
	assert.Equal(t, modal.Closing, d.Modal.Phase(), "the close control closes")
}

func TestFormDialog_KeysIgnoredWhileClosing(t *testing.T) {
	d, _ := newTestContact(t, &stubSender{})
	d.Close()
	typeText(d, "zz")
	assert.Empty(t, d.Field("name"))
}

func TestFormDialog_EscRequestsDismiss(t *testing.T) {
	d, _ := newTestContact(t, &stubSender{})
	_, cmd := d.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, DismissModalMsg{}, cmd())
}

func TestNewsletterDialog_EnterOnLastFieldSubmits(t *testing.T) {
	s := &stubSender{}
	n := &notes{}
	d := NewNewsletterDialog(DialogDeps{Sender: s, Notifier: n})
	require.True(t, d.Show())
	assert.Equal(t, "email", d.Focused())

	typeText(d, "reader@example.com")
	_, cmd := d.Update(keyMsg("enter"))
	res, ok := resultIn(collect(cmd))
	require.True(t, ok)
	assert.Equal(t, submit.KindNewsletter, res.Kind)
	require.NoError(t, d.Resolve(res))
	require.Len(t, n.got, 1)
	assert.Equal(t, "Welcome to the Neural Network!", n.got[0].Title)
}
