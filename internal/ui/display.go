package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skycheck/internal/weather"
)

// displayState tags the single state of the display screen. There is no
// transition back to displayLoading once resolved.
type displayState int

const (
	displayLoading displayState = iota
	displayFailed
	displayLoaded
)

// DisplayView shows current conditions for one city. It holds the one-shot
// city carried over from the input screen and exactly one of: a pending
// fetch, a snapshot, or a failure.
type DisplayView struct {
	City     string
	state    displayState
	snapshot weather.Snapshot
	spinner  spinner.Model
}

// Ensure DisplayView implements View.
var _ View = (*DisplayView)(nil)

// NewDisplayView creates the display screen in the loading state.
func NewDisplayView(city string) *DisplayView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &DisplayView{
		City:    city,
		state:   displayLoading,
		spinner: s,
	}
}

// Init implements View.
func (v *DisplayView) Init() tea.Cmd {
	return v.spinner.Tick
}

// Loaded reports whether the snapshot has arrived.
func (v *DisplayView) Loaded() bool { return v.state == displayLoaded }

// Failed reports whether the fetch failed.
func (v *DisplayView) Failed() bool { return v.state == displayFailed }

// Update implements View.
func (v *DisplayView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if v.state == displayLoading {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil
	case WeatherLoadedMsg:
		// A completion for a different city is a stale fetch; drop it.
		if msg.City != v.City || v.state != displayLoading {
			return v, nil
		}
		v.state = displayLoaded
		v.snapshot = msg.Snapshot
		return v, nil
	case WeatherFailedMsg:
		if msg.City != v.City || v.state != displayLoading {
			return v, nil
		}
		v.state = displayFailed
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter":
			return v, func() tea.Msg { return ReturnToInputMsg{} }
		}
	}
	return v, nil
}

// View implements View.
func (v *DisplayView) View() string {
	switch v.state {
	case displayFailed:
		content := Styles.Danger.Render("Could not fetch weather for "+v.City) + "\n\n"
		content += Styles.Hint.Render("Enter: new search  q: quit")
		return Styles.BoxDanger.Render(content)
	case displayLoaded:
		return Styles.Box.Render(v.renderCard())
	default:
		content := v.spinner.View() + " " +
			Styles.Normal.Render("Fetching current conditions for "+v.City+"…")
		return Styles.Box.Render(content)
	}
}

// renderCard renders the weather card. Fahrenheit is derived from the
// snapshot's Celsius value at render time.
func (v *DisplayView) renderCard() string {
	s := v.snapshot
	var b strings.Builder
	b.WriteString(Styles.Title.Render(s.Location) + "  " + Styles.Normal.Render(s.Condition) + "\n\n")
	b.WriteString(Styles.Value.Render(fmt.Sprintf("%.1f°C / %.1f°F", s.TempC, s.TempF())) + "\n")
	b.WriteString(Styles.Normal.Render(fmt.Sprintf("Humidity: %d%%", s.Humidity)) + "\n")
	b.WriteString(Styles.Normal.Render(fmt.Sprintf("Wind: %g mph", s.WindMPH)) + "\n")
	b.WriteString("\n" + Styles.Hint.Render("Enter: new search  q: quit"))
	return b.String()
}
