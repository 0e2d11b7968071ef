package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - borders, emphasis
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title     lipgloss.Style // Bold accent color - screen titles
	Box       lipgloss.Style // Standard box with rounded border
	BoxDanger lipgloss.Style // Error box (danger border)
	Danger    lipgloss.Style // Error text
	Muted     lipgloss.Style // Dimmed text
	Normal    lipgloss.Style // Normal text
	Hint      lipgloss.Style // Help/hint text
	Value     lipgloss.Style // Highlighted values in the weather card
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Danger: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Value: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
}
