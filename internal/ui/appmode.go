package ui

// AppMode is the top-level screen the app is showing.
type AppMode int

const (
	ModeInput AppMode = iota
	ModeDisplay
)

func (m AppMode) String() string {
	switch m {
	case ModeInput:
		return "Input"
	case ModeDisplay:
		return "Display"
	default:
		return "Unknown"
	}
}
