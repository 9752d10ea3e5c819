package inmem

import (
	"context"
	"testing"

	"github.com/aidaily/ai-daily/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKV_GetSetDelete(t *testing.T) {
	kv := NewKV()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, kv.Set(ctx, "k", []byte(`{"a":1}`)))

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)

	require.NoError(t, kv.Delete(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestKV_SetOverwrites(t *testing.T) {
	kv := NewKV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("old")))
	require.NoError(t, kv.Set(ctx, "k", []byte("new")))

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestKV_GetReturnsCopy(t *testing.T) {
	kv := NewKV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("value")))

	got, _ := kv.Get(ctx, "k")
	got[0] = 'X'

	again, _ := kv.Get(ctx, "k")
	assert.Equal(t, []byte("value"), again, "callers must not mutate stored bytes")
}

func TestKV_RangeByScoreDesc(t *testing.T) {
	kv := NewKV()
	ctx := context.Background()

	require.NoError(t, kv.IndexAdd(ctx, "idx", "a", 1))
	require.NoError(t, kv.IndexAdd(ctx, "idx", "b", 3))
	require.NoError(t, kv.IndexAdd(ctx, "idx", "c", 2))

	members, err := kv.RangeByScoreDesc(ctx, "idx", 0, 9)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, members)
}

func TestKV_RangeByScoreDesc_Bounds(t *testing.T) {
	kv := NewKV()
	ctx := context.Background()

	for i, m := range []string{"a", "b", "c", "d"} {
		require.NoError(t, kv.IndexAdd(ctx, "idx", m, float64(i)))
	}

	members, err := kv.RangeByScoreDesc(ctx, "idx", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, members)

	members, err = kv.RangeByScoreDesc(ctx, "idx", 10, 20)
	require.NoError(t, err)
	assert.Empty(t, members)

	members, err = kv.RangeByScoreDesc(ctx, "idx", 2, 1)
	require.NoError(t, err)
	assert.Empty(t, members)

	members, err = kv.RangeByScoreDesc(ctx, "no-such-index", 0, 9)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestKV_IndexAddUpdatesScore(t *testing.T) {
	kv := NewKV()
	ctx := context.Background()

	require.NoError(t, kv.IndexAdd(ctx, "idx", "a", 1))
	require.NoError(t, kv.IndexAdd(ctx, "idx", "b", 2))
	require.NoError(t, kv.IndexAdd(ctx, "idx", "a", 3))

	members, err := kv.RangeByScoreDesc(ctx, "idx", 0, 9)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, members)
}

func TestKV_IndexRemove(t *testing.T) {
	kv := NewKV()
	ctx := context.Background()

	require.NoError(t, kv.IndexAdd(ctx, "idx", "a", 1))
	require.NoError(t, kv.IndexRemove(ctx, "idx", "a"))
	require.NoError(t, kv.IndexRemove(ctx, "idx", "never-there"))

	members, err := kv.RangeByScoreDesc(ctx, "idx", 0, 9)
	require.NoError(t, err)
	assert.Empty(t, members)
}
