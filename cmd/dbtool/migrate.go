package main

import (
	"github.com/spf13/cobra"

	"github.com/shenikar/school_locator/internal/config"
	"github.com/shenikar/school_locator/pkg/logger"
	"github.com/shenikar/school_locator/pkg/migrator"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return migrator.Up(cfg, logger.New(cfg.LogLevel, cfg.AppEnv))
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last --steps migrations (default 1, 0 rolls back everything)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return migrator.Down(cfg, logger.New(cfg.LogLevel, cfg.AppEnv), steps)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back, 0 rolls back everything")

	cmd.AddCommand(up, down)
	return cmd
}
