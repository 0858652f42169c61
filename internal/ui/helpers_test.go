package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/analytics"
	"folio/internal/config"
	"folio/internal/notify"
	"folio/internal/submit"
)

// stubSender answers every request with err, or with a canned message.
type stubSender struct {
	err   error
	calls []submit.Request
}

func (s *stubSender) Send(_ context.Context, req submit.Request) (submit.Response, error) {
	s.calls = append(s.calls, req)
	if s.err != nil {
		return submit.Response{}, s.err
	}
	return submit.Response{Message: "ok"}, nil
}

var errDown = errors.New("smtp unavailable")

// notes records notifications.
type notes struct{ got []notify.Notification }

func (n *notes) Show(x notify.Notification) { n.got = append(n.got, x) }

// events records analytics events.
type events struct{ got []analytics.Event }

func (e *events) Track(x analytics.Event) { e.got = append(e.got, x) }

// collect runs cmd and flattens batches into their messages. Only use it
// on commands known not to sleep.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// resultIn returns the first submit.ResultMsg among msgs.
func resultIn(msgs []tea.Msg) (submit.ResultMsg, bool) {
	for _, m := range msgs {
		if r, ok := m.(submit.ResultMsg); ok {
			return r, true
		}
	}
	return submit.ResultMsg{}, false
}

// settle steps v for d in frame-sized increments.
func settle(v View, d time.Duration) {
	const frame = 16 * time.Millisecond
	for t := time.Duration(0); t < d; t += frame {
		v.Update(stepMsg{DT: frame})
	}
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Motion.Intro = false
	return cfg
}
