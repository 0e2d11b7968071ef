package config

import (
	"fmt"
	"os"
	"time"
)

// Default weatherapi.com current-conditions endpoint base.
const DefaultBaseURL = "https://api.weatherapi.com/v1"

// DefaultTimeout bounds a single weather request.
const DefaultTimeout = 10 * time.Second

// Config holds environment-based settings.
type Config struct {
	APIKey  string
	BaseURL string
	LogFile string
	Timeout time.Duration
}

// Load reads configuration from environment variables.
// WEATHER_API_KEY is required; everything else has a default.
func Load() (*Config, error) {
	key := os.Getenv("WEATHER_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("WEATHER_API_KEY is required")
	}
	base := os.Getenv("WEATHER_API_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := DefaultTimeout
	if v := os.Getenv("WEATHER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid WEATHER_TIMEOUT %q: %w", v, err)
		}
		timeout = d
	}
	return &Config{
		APIKey:  key,
		BaseURL: base,
		LogFile: os.Getenv("SKYCHECK_LOG_FILE"),
		Timeout: timeout,
	}, nil
}
