package ui

import "skycheck/internal/weather"

// SubmitCityMsg is sent when the user submits a non-empty city on the
// input screen. City carries the trimmed value exactly as entered.
type SubmitCityMsg struct {
	City string
}

// ReturnToInputMsg is sent when the user leaves the display screen to
// search again (esc/enter there, or SPC s).
type ReturnToInputMsg struct{}

// WeatherLoadedMsg is sent when a fetch completes successfully.
// City identifies the request so a stale completion can be dropped.
type WeatherLoadedMsg struct {
	City     string
	Snapshot weather.Snapshot
}

// WeatherFailedMsg is sent when a fetch fails for any reason (network,
// API error, malformed body). The display screen shows one generic
// message regardless of Err.
type WeatherFailedMsg struct {
	City string
	Err  error
}
