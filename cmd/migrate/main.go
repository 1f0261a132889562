package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/bootstrap"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/schema"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/config"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/logger"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/postgres"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/util"
)

func main() {
	rebuild := flag.Bool("rebuild", false, "rebuild all bars and re-annotate them after ensuring the schema")
	flag.Parse()

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

	client, err := postgres.NewClient(ctx, cfg.Postgres)
	if err != nil {
		fatal(appLogger, err)
	}
	defer client.Close()

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
	appLogger.InfoContext(ctx, "schema ensured",
		logger.NewField("instrument", cfg.App.Instrument),
		logger.NewField("exchanges", len(app.Registry.Codes())),
	)

	if !*rebuild {
		return
	}

	// A schema change that adds session columns needs existing bars to be
	// regenerated and re-annotated over the full history.
	ctx = util.WithRequestID(ctx, "")
	built, err := app.Usecase.Bars.Rebuild(ctx, time.Time{}, time.Time{})
	if err != nil {
		fatal(appLogger, err)
	}
	minutesOpen, err := app.Usecase.Session.Annotate(ctx, time.Time{}, time.Time{})
	if err != nil {
		fatal(appLogger, err)
	}

	appLogger.InfoContext(ctx, "bars rebuilt",
		logger.NewField("bars", built),
		logger.NewField("minutes_open", minutesOpen),
	)
}

func fatal(l logger.Interface, err error) {
	l.Error(err)
	_ = l.Sync()
	os.Exit(1)
}
