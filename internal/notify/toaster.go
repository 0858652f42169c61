package notify

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultLifetime is how long a toast stays on screen.
	DefaultLifetime = 5 * time.Second
	// MaxVisible caps the stack; the oldest toast is dropped first.
	MaxVisible = 3
)

type toast struct {
	Notification
	expires time.Time
}

// Toaster is a stack of expiring toasts. Show never blocks.
type Toaster struct {
	Lifetime time.Duration
	Now      func() time.Time

	toasts []toast
	styles Styles
}

// Styles controls toast rendering.
type Styles struct {
	Box         lipgloss.Style
	Destructive lipgloss.Style
	Title       lipgloss.Style
	Description lipgloss.Style
}

// NewToaster creates an empty toaster.
func NewToaster(s Styles) *Toaster {
	return &Toaster{Lifetime: DefaultLifetime, Now: time.Now, styles: s}
}

// SetStyles replaces the render styles (e.g. after a theme change).
func (t *Toaster) SetStyles(s Styles) { t.styles = s }

// Show queues n.
func (t *Toaster) Show(n Notification) {
	t.toasts = append(t.toasts, toast{Notification: n, expires: t.Now().Add(t.Lifetime)})
	if len(t.toasts) > MaxVisible {
		t.toasts = t.toasts[len(t.toasts)-MaxVisible:]
	}
}

// Prune drops expired toasts.
func (t *Toaster) Prune() {
	now := t.Now()
	kept := t.toasts[:0]
	for _, ts := range t.toasts {
		if now.Before(ts.expires) {
			kept = append(kept, ts)
		}
	}
	t.toasts = kept
}

// Dismiss removes every toast.
func (t *Toaster) Dismiss() { t.toasts = nil }

// Active returns the visible notifications, oldest first.
func (t *Toaster) Active() []Notification {
	out := make([]Notification, len(t.toasts))
	for i, ts := range t.toasts {
		out[i] = ts.Notification
	}
	return out
}

// Len returns the number of visible toasts.
func (t *Toaster) Len() int { return len(t.toasts) }

// View renders the stack, newest at the bottom, each box width columns wide.
func (t *Toaster) View(width int) string {
	if len(t.toasts) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(t.toasts))
	for _, ts := range t.toasts {
		box := t.styles.Box
		if ts.Variant == Destructive {
			box = t.styles.Destructive
		}
		body := t.styles.Title.Render(ts.Title)
		if ts.Description != "" {
			body += "\n" + t.styles.Description.Render(ts.Description)
		}
		boxes = append(boxes, box.Width(width).Render(body))
	}
	return strings.Join(boxes, "\n")
}
