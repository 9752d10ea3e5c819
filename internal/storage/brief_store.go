package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aidaily/ai-daily/internal/domain"
)

const (
	briefKeyPrefix = "brief:"
	briefLatestKey = "brief:latest"
	briefIndexKey  = "brief:index"

	// ArchiveLimit caps how many dates the archive listing returns.
	ArchiveLimit = 200

	briefRecordVersion = "1.0"
)

// briefRecord is the persisted shape: the brief plus storage metadata.
type briefRecord struct {
	domain.Brief
	SavedAt time.Time `json:"savedAt"`
	Version string    `json:"version"`
}

// BriefStore persists daily briefs: one record per date, a latest
// pointer, and a chronological index for the archive. The three writes
// are independent; a crash between them can leave the pointer or index
// behind the date record, which readers tolerate.
type BriefStore struct {
	kv  KV
	now func() time.Time
}

func NewBriefStore(kv KV) *BriefStore {
	return &BriefStore{kv: kv, now: time.Now}
}

// WithClock overrides the save timestamp source. Tests only.
func (s *BriefStore) WithClock(now func() time.Time) *BriefStore {
	s.now = now
	return s
}

func briefKey(date string) string {
	return briefKeyPrefix + date
}

// Save writes the brief under its date key, moves the latest pointer,
// and indexes the date by save time.
func (s *BriefStore) Save(ctx context.Context, brief domain.Brief) error {
	savedAt := s.now()
	record := briefRecord{Brief: brief, SavedAt: savedAt, Version: briefRecordVersion}

	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal brief: %w", err)
	}

	if err := s.kv.Set(ctx, briefKey(brief.Date), raw); err != nil {
		return fmt.Errorf("failed to save brief %s: %w", brief.Date, err)
	}
	if err := s.kv.Set(ctx, briefLatestKey, raw); err != nil {
		return fmt.Errorf("failed to update latest pointer: %w", err)
	}
	if err := s.kv.IndexAdd(ctx, briefIndexKey, brief.Date, float64(savedAt.UnixMilli())); err != nil {
		return fmt.Errorf("failed to index brief date %s: %w", brief.Date, err)
	}
	return nil
}

// Get returns the brief for date, or ErrNotFound.
func (s *BriefStore) Get(ctx context.Context, date string) (domain.Brief, error) {
	return s.load(ctx, briefKey(date))
}

// Latest returns the brief behind the latest pointer, or ErrNotFound.
func (s *BriefStore) Latest(ctx context.Context) (domain.Brief, error) {
	return s.load(ctx, briefLatestKey)
}

// Exists reports whether a brief was generated for date.
func (s *BriefStore) Exists(ctx context.Context, date string) (bool, error) {
	_, err := s.kv.Get(ctx, briefKey(date))
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Dates lists known brief dates, most recent first, capped at ArchiveLimit.
func (s *BriefStore) Dates(ctx context.Context) ([]string, error) {
	dates, err := s.kv.RangeByScoreDesc(ctx, briefIndexKey, 0, ArchiveLimit-1)
	if err != nil {
		return nil, fmt.Errorf("failed to list brief dates: %w", err)
	}
	if dates == nil {
		dates = []string{}
	}
	return dates, nil
}

// Delete removes the brief for date and its index entry. The latest
// pointer is left alone; it moves on the next save.
func (s *BriefStore) Delete(ctx context.Context, date string) error {
	if err := s.kv.Delete(ctx, briefKey(date)); err != nil {
		return fmt.Errorf("failed to delete brief %s: %w", date, err)
	}
	if err := s.kv.IndexRemove(ctx, briefIndexKey, date); err != nil {
		return fmt.Errorf("failed to unindex brief %s: %w", date, err)
	}
	return nil
}

func (s *BriefStore) load(ctx context.Context, key string) (domain.Brief, error) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		return domain.Brief{}, err
	}

	var record briefRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return domain.Brief{}, fmt.Errorf("failed to unmarshal brief at %s: %w", key, err)
	}
	return record.Brief, nil
}
