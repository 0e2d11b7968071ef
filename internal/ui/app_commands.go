package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"skycheck/internal/weather"
)

// WeatherFetcher is the slice of the weather client the UI needs.
type WeatherFetcher interface {
	Current(ctx context.Context, city string) (*weather.Snapshot, error)
}

// fetchWeatherCmd returns a command that fetches current conditions for
// city. Fire-and-forget: exactly one completion message comes back, and a
// fetch is never cancelled when the user navigates away early.
func fetchWeatherCmd(f WeatherFetcher, city string) tea.Cmd {
	return func() tea.Msg {
		if f == nil {
			return WeatherFailedMsg{City: city}
		}
		snap, err := f.Current(context.Background(), city)
		if err != nil {
			return WeatherFailedMsg{City: city, Err: err}
		}
		return WeatherLoadedMsg{City: city, Snapshot: *snap}
	}
}
