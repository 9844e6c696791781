package main

import (
	"context"
	"fmt"
	"os"

	"github.com/quietgrove/jukebox/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupDatabase ensures a config file exists and runs migrations on the
// catalog database.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err != nil {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, continuing with defaults", "error", err)
		} else {
			r.logger.Info("config file created", "path", configPath)
		}
	}

	if r.db == nil {
		return fmt.Errorf("%w: database not initialized", shared.ErrStorageFailure)
	}

	r.logger.Info("running database migrations", "path", r.config.Database.Path)
	if err := shared.RunMigrations(r.db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	r.logger.Infof("setup complete for database: %v", r.config.Database.Path)
	return nil
}

// RollbackDatabase reverts the most recent migration.
func (r *Runner) RollbackDatabase(ctx context.Context, cmd *cli.Command) error {
	if r.db == nil {
		return fmt.Errorf("%w: database not initialized", shared.ErrStorageFailure)
	}

	r.logger.Warn("rolling back most recent migration")
	if err := shared.RollbackMigration(r.db); err != nil {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}

	return nil
}

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize database and run migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.SetupDatabase,
		Commands: []*cli.Command{
			{
				Name:   "rollback",
				Usage:  "Revert the most recent migration",
				Action: r.RollbackDatabase,
			},
		},
	}
}
