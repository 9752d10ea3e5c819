package domain

import (
	"time"

	"github.com/google/uuid"
)

// ModelConfig is an admin-managed tracked model entry. Name uniqueness
// is a convention, not enforced. Priority 1 is the highest rank.
type ModelConfig struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewModelConfig builds an active model entry with a fresh opaque id.
func NewModelConfig(name string, priority int, now time.Time) ModelConfig {
	if priority < 1 {
		priority = 1
	}
	return ModelConfig{
		ID:        uuid.NewString(),
		Name:      name,
		IsActive:  true,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
