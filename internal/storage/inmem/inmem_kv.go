package inmem

import (
	"context"
	"sort"
	"sync"

	"github.com/aidaily/ai-daily/internal/storage"
)

// KV is the development backend: plain maps behind one RWMutex. Data
// does not survive a restart.
type KV struct {
	mu      sync.RWMutex
	entries map[string][]byte
	indexes map[string]map[string]float64
}

func NewKV() *KV {
	return &KV{
		entries: make(map[string][]byte),
		indexes: make(map[string]map[string]float64),
	}
}

func (kv *KV) Get(_ context.Context, key string) ([]byte, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	value, ok := kv.entries[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (kv *KV) Set(_ context.Context, key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	kv.entries[key] = stored
	return nil
}

func (kv *KV) Delete(_ context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	delete(kv.entries, key)
	return nil
}

func (kv *KV) IndexAdd(_ context.Context, indexKey, member string, score float64) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	idx, ok := kv.indexes[indexKey]
	if !ok {
		idx = make(map[string]float64)
		kv.indexes[indexKey] = idx
	}
	idx[member] = score
	return nil
}

func (kv *KV) IndexRemove(_ context.Context, indexKey, member string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	if idx, ok := kv.indexes[indexKey]; ok {
		delete(idx, member)
	}
	return nil
}

func (kv *KV) RangeByScoreDesc(_ context.Context, indexKey string, start, stop int) ([]string, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	idx, ok := kv.indexes[indexKey]
	if !ok || start > stop || start < 0 {
		return []string{}, nil
	}

	members := make([]string, 0, len(idx))
	for member := range idx {
		members = append(members, member)
	}
	sort.Slice(members, func(i, j int) bool {
		si, sj := idx[members[i]], idx[members[j]]
		if si != sj {
			return si > sj
		}
		return members[i] > members[j]
	})

	if start >= len(members) {
		return []string{}, nil
	}
	if stop >= len(members) {
		stop = len(members) - 1
	}
	return members[start : stop+1], nil
}

var _ storage.KV = (*KV)(nil)
