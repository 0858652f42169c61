package ui

// AppMode represents the top-level application mode.
type AppMode int

const (
	ModeIntro AppMode = iota
	ModePortfolio
)

func (m AppMode) String() string {
	switch m {
	case ModeIntro:
		return "Intro"
	case ModePortfolio:
		return "Portfolio"
	default:
		return "Unknown"
	}
}
