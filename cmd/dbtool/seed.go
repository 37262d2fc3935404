package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shenikar/school_locator/internal/config"
	"github.com/shenikar/school_locator/internal/repository"
	"github.com/shenikar/school_locator/internal/seed"
	"github.com/shenikar/school_locator/internal/service"
	"github.com/shenikar/school_locator/internal/webhook"
	"github.com/shenikar/school_locator/pkg/logger"
	"github.com/shenikar/school_locator/pkg/postgres"
	redisclient "github.com/shenikar/school_locator/pkg/redis"
)

func newSeedCmd() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "seed <schools.json>",
		Short: "Load schools from a JSON file",
		Long:  "Add every school from a JSON array through the regular validation and duplicate checks. Invalid and duplicate entries are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("seed: open %s: %w", args[0], err)
			}
			defer f.Close()

			records, err := seed.Load(f)
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel, cfg.AppEnv)

			dbpool, err := postgres.NewPostgresDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer dbpool.Close()

			redisClient, err := redisclient.NewRedisClient(ctx, cfg)
			if err != nil {
				return err
			}
			defer redisClient.Close()

			svc := service.NewSchoolService(
				repository.NewSchoolRepository(dbpool),
				log,
				cfg,
				webhook.NewRedisWebhookPublisher(redisClient),
			)

			res, err := seed.Run(ctx, svc, records, concurrency, cfg.DuplicateTolerance, log)
			log.WithField("added", res.Added).WithField("skipped", res.Skipped).Info("Seeding finished")
			return err
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of schools inserted in parallel")
	return cmd
}
