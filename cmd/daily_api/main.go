package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/aidaily/ai-daily/internal/fetcher"
	"github.com/aidaily/ai-daily/internal/pipeline"
	"github.com/aidaily/ai-daily/internal/router"
	"github.com/aidaily/ai-daily/internal/server"
	"github.com/aidaily/ai-daily/internal/sources"
	"github.com/aidaily/ai-daily/internal/storage"
	"github.com/aidaily/ai-daily/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	registry, err := loadRegistry(cfg.SourcesFile)
	if err != nil {
		slog.Error("Failed to load source registry", "error", err)
		os.Exit(1)
		return
	}

	kv, healthChecker, err := factory.NewKVWithHealth(context.Background(), &cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create storage backend", "error", err)
		os.Exit(1)
		return
	}

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "AI Daily API is running")
	})

	briefs := storage.NewBriefStore(kv)
	pipe := pipeline.New(registry, newFetcher(cfg.FetchMode), briefs)

	var briefOpts []router.BriefRouterOption
	if cfg.CronSecret != "" {
		briefOpts = append(briefOpts, router.WithCronSecret(cfg.CronSecret))
		slog.Info("Generation trigger guarded by bearer secret")
	}

	briefRouter := router.NewBriefRouter(s.Echo, briefs, pipe, briefOpts...)
	briefRouter.Bind()

	adminRouter := router.NewAdminRouter(s.Echo, storage.NewModelStore(kv), storage.NewPushStore(kv))
	adminRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}

func loadRegistry(path string) (*sources.Registry, error) {
	if path == "" {
		return sources.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	slog.Info("Loading source registry", "path", path)
	return sources.LoadYAML(f)
}

func newFetcher(mode FetchMode) fetcher.Fetcher {
	if mode == FetchSim {
		slog.Info("Using simulated article feeds")
		return fetcher.NewSimFetcher(time.Now)
	}

	client := fetcher.NewHTTPClient(fetcher.DefaultTimeout)
	return fetcher.NewChain(
		fetcher.NewRSSFetcher(client),
		fetcher.NewSearchFetcher(client),
	)
}
