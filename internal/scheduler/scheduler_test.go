package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/aidaily/ai-daily/internal/storage"
	"github.com/aidaily/ai-daily/internal/storage/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronSpec(t *testing.T) {
	tests := []struct {
		pushTime string
		want     string
		wantErr  bool
	}{
		{pushTime: "09:00", want: "0 9 * * *"},
		{pushTime: "00:00", want: "0 0 * * *"},
		{pushTime: "23:59", want: "59 23 * * *"},
		{pushTime: "7:05", want: "5 7 * * *"},
		{pushTime: "25:00", wantErr: true},
		{pushTime: "0900", wantErr: true},
		{pushTime: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := cronSpec(tt.pushTime)
		if tt.wantErr {
			assert.Error(t, err, "pushTime %q", tt.pushTime)
			continue
		}
		require.NoError(t, err, "pushTime %q", tt.pushTime)
		assert.Equal(t, tt.want, got, "pushTime %q", tt.pushTime)
	}
}

func TestScheduler_SyncArmsWhenEnabled(t *testing.T) {
	push := storage.NewPushStore(inmem.NewKV())
	s := New(push, func(ctx context.Context, date string) error { return nil })

	require.NoError(t, s.sync(context.Background()))

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.NotNil(t, s.cron)
	assert.Len(t, s.cron.Entries(), 1)
}

func TestScheduler_SyncDisarmsWhenDisabled(t *testing.T) {
	push := storage.NewPushStore(inmem.NewKV())
	ctx := context.Background()

	s := New(push, func(ctx context.Context, date string) error { return nil })
	require.NoError(t, s.sync(ctx))

	disabled := false
	_, err := push.Update(ctx, storage.PushUpdate{IsEnabled: &disabled})
	require.NoError(t, err)

	require.NoError(t, s.sync(ctx))

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Nil(t, s.cron)
}

func TestScheduler_SyncIsIdempotent(t *testing.T) {
	push := storage.NewPushStore(inmem.NewKV())
	ctx := context.Background()

	s := New(push, func(ctx context.Context, date string) error { return nil })
	require.NoError(t, s.sync(ctx))

	s.mu.Lock()
	first := s.cron
	s.mu.Unlock()

	require.NoError(t, s.sync(ctx))

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Same(t, first, s.cron, "unchanged config must not rebuild the cron")
}

func TestScheduler_StartStopsOnCancel(t *testing.T) {
	push := storage.NewPushStore(inmem.NewKV())
	s := New(push, func(ctx context.Context, date string) error { return nil },
		WithResyncInterval(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Nil(t, s.cron)
}
