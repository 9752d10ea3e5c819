package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aidaily/ai-daily/internal/apperr"
	"github.com/aidaily/ai-daily/internal/domain"
)

const modelsKey = "ai_models"

// ModelUpdate carries the optional fields of a model edit. Nil fields
// keep the stored value.
type ModelUpdate struct {
	Name     *string
	IsActive *bool
	Priority *int
}

// ModelStore manages the tracked-model list. The whole list lives as
// one JSON array under a single key, the way the original service kept
// it. Reads and writes are last-write-wins.
type ModelStore struct {
	kv  KV
	now func() time.Time
}

func NewModelStore(kv KV) *ModelStore {
	return &ModelStore{kv: kv, now: time.Now}
}

// WithClock overrides the timestamp source. Tests only.
func (s *ModelStore) WithClock(now func() time.Time) *ModelStore {
	s.now = now
	return s
}

// List returns all models; an absent key reads as an empty list.
func (s *ModelStore) List(ctx context.Context) ([]domain.ModelConfig, error) {
	raw, err := s.kv.Get(ctx, modelsKey)
	if errors.Is(err, ErrNotFound) {
		return []domain.ModelConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read model list: %w", err)
	}

	var models []domain.ModelConfig
	if err := json.Unmarshal(raw, &models); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model list: %w", err)
	}
	if models == nil {
		models = []domain.ModelConfig{}
	}
	return models, nil
}

// Create appends a new model entry and returns it.
func (s *ModelStore) Create(ctx context.Context, name string, priority int) (domain.ModelConfig, error) {
	models, err := s.List(ctx)
	if err != nil {
		return domain.ModelConfig{}, err
	}

	model := domain.NewModelConfig(name, priority, s.now())
	models = append(models, model)

	if err := s.write(ctx, models); err != nil {
		return domain.ModelConfig{}, err
	}
	return model, nil
}

// Update edits the model with the given id. Unknown id is a NotFound
// and leaves the list untouched.
func (s *ModelStore) Update(ctx context.Context, id string, upd ModelUpdate) (domain.ModelConfig, error) {
	models, err := s.List(ctx)
	if err != nil {
		return domain.ModelConfig{}, err
	}

	for i := range models {
		if models[i].ID != id {
			continue
		}
		if upd.Name != nil && *upd.Name != "" {
			models[i].Name = *upd.Name
		}
		if upd.IsActive != nil {
			models[i].IsActive = *upd.IsActive
		}
		if upd.Priority != nil {
			models[i].Priority = *upd.Priority
		}
		models[i].UpdatedAt = s.now()

		if err := s.write(ctx, models); err != nil {
			return domain.ModelConfig{}, err
		}
		return models[i], nil
	}

	return domain.ModelConfig{}, apperr.NewNotFound("model not found")
}

// Delete removes the model with the given id. Unknown id is a NotFound.
func (s *ModelStore) Delete(ctx context.Context, id string) error {
	models, err := s.List(ctx)
	if err != nil {
		return err
	}

	filtered := models[:0:0]
	for _, m := range models {
		if m.ID != id {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) == len(models) {
		return apperr.NewNotFound("model not found")
	}

	return s.write(ctx, filtered)
}

func (s *ModelStore) write(ctx context.Context, models []domain.ModelConfig) error {
	raw, err := json.Marshal(models)
	if err != nil {
		return fmt.Errorf("failed to marshal model list: %w", err)
	}
	if err := s.kv.Set(ctx, modelsKey, raw); err != nil {
		return fmt.Errorf("failed to write model list: %w", err)
	}
	return nil
}
