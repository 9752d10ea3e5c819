package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for an absent key.
var ErrNotFound = errors.New("key not found")

// KV is the persistence adapter every store in this service runs on.
// Implementations provide plain key/value operations plus a scored
// index used for chronological listing. Semantics are last-write-wins;
// no transaction spans multiple calls.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	IndexAdd(ctx context.Context, indexKey, member string, score float64) error
	IndexRemove(ctx context.Context, indexKey, member string) error
	// RangeByScoreDesc returns members of the index ordered by
	// descending score, from rank start through stop inclusive.
	RangeByScoreDesc(ctx context.Context, indexKey string, start, stop int) ([]string, error)
}

// Type names a KV backend.
type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type KVError string

const (
	ErrUnsupportedKV KVError = "unsupported storage type: %s"
)

func (e KVError) Error() string {
	return string(e)
}
