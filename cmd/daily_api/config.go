package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aidaily/ai-daily/internal/storage/factory"
	"github.com/aidaily/ai-daily/pkg/config/env"
)

// FetchMode selects where articles come from.
type FetchMode string

const (
	FetchSim     FetchMode = "sim"
	FetchNetwork FetchMode = "network"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type DailyApiConfig struct {
	StorageConfig factory.StorageConfig
	FetchMode     FetchMode
	SourcesFile   string
	CronSecret    string
}

func (as *AppConfig) Load() (*DailyApiConfig, error) {

	err := env.LoadDotEnv(as.ENV, "cmd/daily_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	mode := FetchMode(os.Getenv("FETCH_MODE"))
	if mode == "" {
		mode = FetchSim
	}
	if mode != FetchSim && mode != FetchNetwork {
		return nil, fmt.Errorf("invalid FETCH_MODE: %s, expected one of %v", mode, []FetchMode{FetchSim, FetchNetwork})
	}

	return &DailyApiConfig{
		StorageConfig: *storageCfg,
		FetchMode:     mode,
		SourcesFile:   os.Getenv("SOURCES_FILE"),
		CronSecret:    os.Getenv("CRON_SECRET"),
	}, nil
}
