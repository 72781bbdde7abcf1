package main

import (
	"context"
	"os"

	"github.com/desertthunder/qbtui/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates the config file when missing and initializes the journal
// database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}

	r.logger.Info("initializing journal database", "path", config.Database.Path)

	db, _, err := r.openJournal(config)
	if err != nil {
		return err
	}
	defer db.Close()

	r.config = config
	r.configPath = configPath

	r.writePlain("✓ Config: %s\n", configPath)
	r.writePlain("✓ Journal database: %s\n", config.Database.Path)
	r.writePlain("\nEdit %s to point at your qBittorrent Web UI, then run 'qbtui tui'.\n", configPath)

	return nil
}
