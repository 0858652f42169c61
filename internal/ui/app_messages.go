package ui

// ShowContactMsg opens the contact dialog (c, or the Contact button).
type ShowContactMsg struct{}

// ShowNewsletterMsg opens the newsletter dialog (n, or the navbar button).
type ShowNewsletterMsg struct{}

// ToggleThemeMsg switches between dark and light.
type ToggleThemeMsg struct{}

// SocialClickMsg is sent when a social link is clicked.
type SocialClickMsg struct {
	Label string
	URL   string
}

// ResumeMsg is sent when the Resume button is clicked.
type ResumeMsg struct{}

// IntroDoneMsg ends the intro and shows the portfolio.
type IntroDoneMsg struct{}

// DismissModalMsg closes whichever dialog is open (Esc).
type DismissModalMsg struct{}

// DismissToastsMsg clears every visible toast.
type DismissToastsMsg struct{}
