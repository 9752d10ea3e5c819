package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/aidaily/ai-daily/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KV is the production backend: two tables on Postgres, one for plain
// entries and one for the scored indexes.
type KV struct {
	db *pgxpool.Pool
}

func NewKV(ctx context.Context, pool *ConnectionPool) (*KV, error) {
	kv := &KV{db: pool.conn}
	if err := kv.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return kv, nil
}

func (kv *KV) ensureSchema(ctx context.Context) error {
	schema := `
        CREATE TABLE IF NOT EXISTS kv_entries (
            key        TEXT PRIMARY KEY,
            value      JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        );
        CREATE TABLE IF NOT EXISTS kv_index (
            index_key TEXT NOT NULL,
            member    TEXT NOT NULL,
            score     DOUBLE PRECISION NOT NULL,
            PRIMARY KEY (index_key, member)
        );
        CREATE INDEX IF NOT EXISTS kv_index_score_idx
            ON kv_index (index_key, score DESC);
    `
	if _, err := kv.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure kv schema: %w", err)
	}
	return nil
}

func (kv *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := kv.db.QueryRow(ctx,
		`SELECT value FROM kv_entries WHERE key = $1`, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, nil
}

func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	cmd := `
        INSERT INTO kv_entries (key, value, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE
            SET value = EXCLUDED.value, updated_at = now();
    `
	if _, err := kv.db.Exec(ctx, cmd, key, value); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (kv *KV) Delete(ctx context.Context, key string) error {
	if _, err := kv.db.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (kv *KV) IndexAdd(ctx context.Context, indexKey, member string, score float64) error {
	cmd := `
        INSERT INTO kv_index (index_key, member, score)
        VALUES ($1, $2, $3)
        ON CONFLICT (index_key, member) DO UPDATE
            SET score = EXCLUDED.score;
    `
	if _, err := kv.db.Exec(ctx, cmd, indexKey, member, score); err != nil {
		return fmt.Errorf("failed to add %s to index %s: %w", member, indexKey, err)
	}
	return nil
}

func (kv *KV) IndexRemove(ctx context.Context, indexKey, member string) error {
	cmd := `DELETE FROM kv_index WHERE index_key = $1 AND member = $2`
	if _, err := kv.db.Exec(ctx, cmd, indexKey, member); err != nil {
		return fmt.Errorf("failed to remove %s from index %s: %w", member, indexKey, err)
	}
	return nil
}

func (kv *KV) RangeByScoreDesc(ctx context.Context, indexKey string, start, stop int) ([]string, error) {
	if start > stop || start < 0 {
		return []string{}, nil
	}

	query := `
        SELECT member FROM kv_index
        WHERE index_key = $1
        ORDER BY score DESC, member DESC
        OFFSET $2 LIMIT $3;
    `
	rows, err := kv.db.Query(ctx, query, indexKey, start, stop-start+1)
	if err != nil {
		return nil, fmt.Errorf("failed to range index %s: %w", indexKey, err)
	}
	defer rows.Close()

	members := []string{}
	for rows.Next() {
		var member string
		if err := rows.Scan(&member); err != nil {
			return nil, fmt.Errorf("failed to scan index member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading index %s: %w", indexKey, err)
	}
	return members, nil
}

var _ storage.KV = (*KV)(nil)
