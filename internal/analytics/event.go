// Package analytics records user interactions as OpenTelemetry spans.
package analytics

// Event describes one tracked interaction.
type Event struct {
	Action   string
	Category string
	Label    string
}

// Tracker records events. Implementations must not block the caller and
// swallow their own failures.
type Tracker interface {
	Track(Event)
}

// Nop discards every event.
type Nop struct{}

// Track implements Tracker.
func (Nop) Track(Event) {}
