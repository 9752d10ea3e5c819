package factory

import (
	"context"
	"fmt"

	"github.com/aidaily/ai-daily/internal/storage"
	"github.com/aidaily/ai-daily/internal/storage/inmem"
	"github.com/aidaily/ai-daily/internal/storage/pg"
	pkgserver "github.com/aidaily/ai-daily/pkg/server"
)

// NewKV creates the configured key/value backend. Business logic never
// branches on the backend; it sees storage.KV only.
func NewKV(ctx context.Context, cfg *StorageConfig) (storage.KV, error) {
	kv, _, err := NewKVWithHealth(ctx, cfg)
	return kv, err
}

// NewKVWithHealth additionally returns the health checker matching the
// backend: a pool ping for pg, always-ok for in-memory.
func NewKVWithHealth(ctx context.Context, cfg *StorageConfig) (storage.KV, pkgserver.HealthChecker, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, nil, fmt.Errorf("missing PostgreSQL config for pg storage")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		kv, err := pg.NewKV(ctx, pool)
		if err != nil {
			return nil, nil, err
		}
		return kv, pg.NewHealthChecker(pool), nil

	case storage.InMem:
		return inmem.NewKV(), pkgserver.NewOkHealthChecker(), nil

	default:
		return nil, nil, fmt.Errorf(string(storage.ErrUnsupportedKV), cfg.Type)
	}
}
