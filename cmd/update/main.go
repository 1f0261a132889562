package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/bootstrap"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/schema"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/config"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/logger"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/period"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/postgres"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/util"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(
		logger.WithName(cfg.App.Name),
		logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)),
	)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	start, err := period.Parse(cfg.App.StartPeriod)
	if err != nil {
		fatal(appLogger, err)
	}

	client, err := postgres.NewClient(ctx, cfg.Postgres)
	if err != nil {
		fatal(appLogger, err)
	}
	defer client.Close()

	if health := client.CheckHealth(ctx); health.Status != "healthy" {
		fatal(appLogger, fmt.Errorf("postgres unhealthy: %s", health.Error))
	}

	app, err := (&bootstrap.Bootstrap{}).Init(bootstrap.BootstrapConfig{
		Postgres: client,
		Config:   cfg,
		Logger:   appLogger,
	})
	if err != nil {
		fatal(appLogger, err)
	}

	if err := schema.Ensure(ctx, client, cfg.App.Instrument, app.Registry.Codes()); err != nil {
		fatal(appLogger, err)
	}

	ctx = util.WithRequestID(ctx, "")
	result, err := app.Usecase.Update.Run(ctx, start)
	if err != nil {
		appLogger.ErrorContext(ctx, err)
		_ = appLogger.Sync()
		os.Exit(1)
	}

	appLogger.InfoContext(ctx, "update finished",
		logger.NewField("run_id", result.RunID),
		logger.NewField("months_added", len(result.MonthsAdded)),
		logger.NewField("bars_built", result.BarsBuilt),
		logger.NewField("bar_count", result.BarCount),
		logger.NewField("minutes_open", result.MinutesOpen),
		logger.NewField("duration", result.Finished.Sub(result.Started).String()),
	)
}

func fatal(l logger.Interface, err error) {
	l.Error(err)
	_ = l.Sync()
	os.Exit(1)
}
