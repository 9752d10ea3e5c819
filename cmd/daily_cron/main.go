package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/aidaily/ai-daily/internal/fetcher"
	"github.com/aidaily/ai-daily/internal/pipeline"
	"github.com/aidaily/ai-daily/internal/scheduler"
	"github.com/aidaily/ai-daily/internal/sources"
	"github.com/aidaily/ai-daily/internal/storage"
	"github.com/aidaily/ai-daily/internal/storage/factory"
	"github.com/aidaily/ai-daily/pkg/config/env"
)

// The cron binary shares the API's storage so regenerated briefs land
// where the dashboard reads them. It runs as a sidecar daemon.
func main() {
	slog.SetLogLoggerLevel(slog.LevelInfo)

	err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/daily_cron/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kv, err := factory.NewKV(ctx, storageCfg)
	if err != nil {
		slog.Error("Failed to create storage backend", "error", err)
		os.Exit(1)
	}

	briefs := storage.NewBriefStore(kv)
	pipe := pipeline.New(sources.Default(), newFetcher(), briefs)

	job := func(ctx context.Context, date string) error {
		_, err := pipe.Generate(ctx, date, true)
		return err
	}

	sched := scheduler.New(storage.NewPushStore(kv), job)

	slog.Info("Starting regeneration scheduler")
	if err := sched.Start(ctx); err != nil {
		slog.Error("Scheduler stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Scheduler shut down")
}

func newFetcher() fetcher.Fetcher {
	if os.Getenv("FETCH_MODE") == "sim" {
		return fetcher.NewSimFetcher(time.Now)
	}

	client := fetcher.NewHTTPClient(fetcher.DefaultTimeout)
	return fetcher.NewChain(
		fetcher.NewRSSFetcher(client),
		fetcher.NewSearchFetcher(client),
	)
}
