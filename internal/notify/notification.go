// Package notify shows short-lived toast notifications.
package notify

// Variant selects the toast styling.
type Variant int

const (
	Default Variant = iota
	Destructive
)

func (v Variant) String() string {
	switch v {
	case Default:
		return "default"
	case Destructive:
		return "destructive"
	default:
		return "unknown"
	}
}

// Notification is one message for the user.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}
