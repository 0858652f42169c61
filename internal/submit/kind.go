package submit

import (
	"folio/internal/analytics"
)

// Kind tags a submission for the dispatch collaborator.
type Kind string

const (
	KindContact    Kind = "contact"
	KindNewsletter Kind = "newsletter"
)

// Profile is the user-facing copy and tracking for one Kind.
type Profile struct {
	SuccessTitle string
	FailureTitle string
	Event        analytics.Event
}

// ProfileFor returns the built-in profile for k.
func ProfileFor(k Kind) Profile {
	switch k {
	case KindNewsletter:
		return Profile{
			SuccessTitle: "Welcome to the Neural Network!",
			FailureTitle: "Subscription failed",
			Event:        analytics.Event{Action: "subscribe", Category: "newsletter", Label: "newsletter_signup"},
		}
	default:
		return Profile{
			SuccessTitle: "Message sent successfully!",
			FailureTitle: "Failed to send message",
			Event:        analytics.Event{Action: "submit", Category: "contact", Label: "contact_form"},
		}
	}
}
