package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/qbtui/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	configPath := ""
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
			configPath = "config.toml"
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "qbtui",
		Usage:    "Manage trackers across qBittorrent torrents",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		switch {
		case errors.Is(err, shared.ErrMissingCredentials):
			logger.Fatalf("credentials missing: %v", err)
		case errors.Is(err, shared.ErrInvalidCredentials):
			logger.Fatalf("authentication rejected: %v", err)
		default:
			logger.Fatalf("application error: %v", err)
		}
	}
}
