// Package logging configures the zerolog global logger.
//
// The TUI owns stdout/stderr, so diagnostics go to a file (or nowhere).
// Packages log through github.com/rs/zerolog/log after Setup runs.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the global logger. With an empty path, logging is a no-op.
// The returned closer flushes and releases the log file; call it on exit.
func Setup(path string) (io.Closer, error) {
	if path == "" {
		log.Logger = zerolog.New(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
