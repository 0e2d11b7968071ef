// Package weather is a thin client for the weatherapi.com current
// conditions endpoint.
package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"skycheck/internal/jsonutil"
)

const defaultBaseURL = "https://api.weatherapi.com/v1"

// ClientOption configures a Client.
type ClientOption func(*Client)

// Client issues current-conditions requests against one API base URL.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// WithAPIKey sets the API credential.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithBaseURL overrides the API base URL (tests point this at a local server).
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New builds a Client. An API key is required.
func New(opts ...ClientOption) (*Client, error) {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("weather client: missing API key")
	}
	return c, nil
}

// Current fetches current conditions for a city. The city must be non-empty;
// every failure (network, non-2xx, malformed body) comes back as a plain
// error — callers do not distinguish kinds.
func (c *Client) Current(ctx context.Context, city string) (*Snapshot, error) {
	if city == "" {
		return nil, fmt.Errorf("weather: empty city")
	}

	ctx, span := otel.Tracer("skycheck/weather").Start(ctx, "weather.current",
		oteltrace.WithAttributes(attribute.String("weather.city", city)))
	defer span.End()

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fail(span, city, fmt.Errorf("weather: parse base URL %q: %w", c.baseURL, err))
	}
	u = u.JoinPath("current.json")
	q := u.Query()
	q.Set("key", c.apiKey)
	q.Set("q", city)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fail(span, city, fmt.Errorf("weather: build request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fail(span, city, fmt.Errorf("weather: request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fail(span, city, fmt.Errorf("weather: unexpected status %d", resp.StatusCode))
	}

	var body currentResponse
	if err := jsonutil.DecodeWithContext(resp.Body, &body, "weather: decode response"); err != nil {
		return nil, fail(span, city, err)
	}

	snap := body.snapshot()
	log.Debug().Str("city", city).Str("condition", snap.Condition).
		Float64("temp_c", snap.TempC).Msg("fetched current conditions")
	return &snap, nil
}

// fail records the error on the span and log before returning it. The UI
// shows one generic message; this is where the detail stays observable.
func fail(span oteltrace.Span, city string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	log.Error().Err(err).Str("city", city).Msg("weather fetch failed")
	return err
}
