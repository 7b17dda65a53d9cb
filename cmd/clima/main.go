package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"clima/internal/cli"
	"clima/internal/config"
	"clima/internal/observability"
)

func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	c := cli.New(cli.Options{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
	})

	if err := c.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
