package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"skycheck/internal/config"
	"skycheck/internal/logging"
	"skycheck/internal/tracing"
	"skycheck/internal/ui"
	"skycheck/internal/weather"
)

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "skycheck: %v\n", err)
		os.Exit(1)
	}

	closer, err := logging.Setup(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skycheck: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	ctx := context.Background()
	shutdownTracing, err := tracing.Setup(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skycheck: tracing: %v\n", err)
		os.Exit(1)
	}
	defer shutdownTracing(ctx)

	client, err := weather.New(
		weather.WithAPIKey(cfg.APIKey),
		weather.WithBaseURL(cfg.BaseURL),
		weather.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skycheck: %v\n", err)
		os.Exit(1)
	}

	log.Info().Str("base_url", cfg.BaseURL).Msg("starting skycheck")

	p := tea.NewProgram(ui.NewAppModel(client).AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "skycheck: %v\n", err)
		os.Exit(1)
	}
}
