package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aidaily/ai-daily/internal/domain"
)

const pushConfigKey = "push_config"

// PushUpdate carries the optional fields of a push-config edit.
type PushUpdate struct {
	PushTime  *string
	Timezone  *string
	IsEnabled *bool
}

// PushStore manages the singleton push configuration. A first read
// materializes the default config so admins always see a concrete one.
type PushStore struct {
	kv  KV
	now func() time.Time
}

func NewPushStore(kv KV) *PushStore {
	return &PushStore{kv: kv, now: time.Now}
}

// WithClock overrides the timestamp source. Tests only.
func (s *PushStore) WithClock(now func() time.Time) *PushStore {
	s.now = now
	return s
}

// Get returns the push config, creating the default on first read.
func (s *PushStore) Get(ctx context.Context) (domain.PushConfig, error) {
	raw, err := s.kv.Get(ctx, pushConfigKey)
	if errors.Is(err, ErrNotFound) {
		cfg := domain.DefaultPushConfig(s.now())
		if err := s.write(ctx, cfg); err != nil {
			return domain.PushConfig{}, err
		}
		return cfg, nil
	}
	if err != nil {
		return domain.PushConfig{}, fmt.Errorf("failed to read push config: %w", err)
	}

	var cfg domain.PushConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return domain.PushConfig{}, fmt.Errorf("failed to unmarshal push config: %w", err)
	}
	return cfg, nil
}

// Update merges the given fields into the stored config. Validation is
// the caller's job; the store never writes partially.
func (s *PushStore) Update(ctx context.Context, upd PushUpdate) (domain.PushConfig, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return domain.PushConfig{}, err
	}

	if upd.PushTime != nil && *upd.PushTime != "" {
		cfg.PushTime = *upd.PushTime
	}
	if upd.Timezone != nil && *upd.Timezone != "" {
		cfg.Timezone = *upd.Timezone
	}
	if upd.IsEnabled != nil {
		cfg.IsEnabled = *upd.IsEnabled
	}
	cfg.UpdatedAt = s.now()

	if err := s.write(ctx, cfg); err != nil {
		return domain.PushConfig{}, err
	}
	return cfg, nil
}

func (s *PushStore) write(ctx context.Context, cfg domain.PushConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal push config: %w", err)
	}
	if err := s.kv.Set(ctx, pushConfigKey, raw); err != nil {
		return fmt.Errorf("failed to write push config: %w", err)
	}
	return nil
}
