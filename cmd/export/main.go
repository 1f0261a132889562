package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/bootstrap"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/feed"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/export"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/tick"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/config"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/logger"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/postgres"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/util"
)

func main() {
	kind := flag.String("kind", "bars", "what to export: ticks or bars")
	variant := flag.String("variant", "execution", "tick feed to export: execution or reference")
	fromFlag := flag.String("from", "", "range start, RFC3339 or YYYY-MM-DD; empty exports from the beginning")
	toFlag := flag.String("to", "", "range end (exclusive), RFC3339 or YYYY-MM-DD; empty exports to the end")
	format := flag.String("format", "", "output format, overriding EXPORT_FORMAT")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *format == "" {
		*format = cfg.Export.Format
	}

	appLogger, err := logger.NewLogger(
		logger.WithName(cfg.App.Name),
		logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)),
	)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	from, err := parseTimeFlag(*fromFlag)
	if err != nil {
		fatal(appLogger, err)
	}
	to, err := parseTimeFlag(*toFlag)
	if err != nil {
		fatal(appLogger, err)
	}

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

	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		fatal(appLogger, err)
	}

	ctx = util.WithRequestID(ctx, "")

	var (
		path string
		rows int
	)
	switch *kind {
	case "ticks":
		path, rows, err = exportTicks(ctx, app, cfg, feed.Variant(*variant), from, to, *format)
	case "bars":
		path, rows, err = exportBars(ctx, app, cfg, from, to, *format)
	default:
		err = fmt.Errorf("unknown export kind %q: use ticks or bars", *kind)
	}
	if err != nil {
		appLogger.ErrorContext(ctx, err)
		_ = appLogger.Sync()
		os.Exit(1)
	}
	if path == "" {
		appLogger.InfoContext(ctx, "nothing to export")
		return
	}

	appLogger.InfoContext(ctx, "export written",
		logger.NewField("path", path),
		logger.NewField("rows", rows),
		logger.NewField("format", *format),
	)
}

func exportTicks(
	ctx context.Context,
	app bootstrap.Bootstrap,
	cfg *config.Config,
	variant feed.Variant,
	from, to time.Time,
	format string,
) (string, int, error) {
	saver, err := export.NewTickSaver(format)
	if err != nil {
		return "", 0, err
	}

	filter := tick.Filter{}
	if !from.IsZero() {
		filter.From = &from
	}
	if !to.IsZero() {
		filter.To = &to
	}
	ticks, err := app.Usecase.Query.Ticks(ctx, variant, filter)
	if err != nil {
		return "", 0, err
	}
	if len(ticks) == 0 {
		return "", 0, nil
	}

	// The query returns newest first; archives are chronological.
	for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
		ticks[i], ticks[j] = ticks[j], ticks[i]
	}

	name := export.Filename(
		cfg.App.Instrument,
		variant.String()+"_ticks",
		ticks[0].Timestamp,
		ticks[len(ticks)-1].Timestamp,
		saver.Extension(),
	)
	path := filepath.Join(cfg.Export.Dir, name)
	if err := saver.Save(ticks, path); err != nil {
		return "", 0, err
	}
	return path, len(ticks), nil
}

func exportBars(
	ctx context.Context,
	app bootstrap.Bootstrap,
	cfg *config.Config,
	from, to time.Time,
	format string,
) (string, int, error) {
	saver, err := export.NewBarSaver(format, app.Registry)
	if err != nil {
		return "", 0, err
	}

	bars, err := app.Usecase.Query.BarRows(ctx, from, to)
	if err != nil {
		return "", 0, err
	}
	if len(bars) == 0 {
		return "", 0, nil
	}

	name := export.Filename(
		cfg.App.Instrument,
		"bars",
		bars[0].Timestamp,
		bars[len(bars)-1].Timestamp.Add(time.Minute),
		saver.Extension(),
	)
	path := filepath.Join(cfg.Export.Dir, name)
	if err := saver.Save(bars, path); err != nil {
		return "", 0, err
	}
	return path, len(bars), nil
}

func parseTimeFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC3339 or YYYY-MM-DD", value)
	}
	return t, nil
}

func fatal(l logger.Interface, err error) {
	l.Error(err)
	_ = l.Sync()
	os.Exit(1)
}
