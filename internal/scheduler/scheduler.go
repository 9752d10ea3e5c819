package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aidaily/ai-daily/internal/domain"
	"github.com/aidaily/ai-daily/internal/storage"
	"github.com/robfig/cron/v3"
)

const DefaultResyncInterval = time.Minute

// Job regenerates the brief for the given date.
type Job func(ctx context.Context, date string) error

// Scheduler runs the daily regeneration job at the push time stored in
// the push config. It re-reads the config periodically so admin edits
// take effect without a restart.
type Scheduler struct {
	push   *storage.PushStore
	job    Job
	resync time.Duration

	mu      sync.Mutex
	cron    *cron.Cron
	applied domain.PushConfig
}

type Option func(*Scheduler)

func WithResyncInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		s.resync = d
	}
}

func New(push *storage.PushStore, job Job, opts ...Option) *Scheduler {
	s := &Scheduler{
		push:   push,
		job:    job,
		resync: DefaultResyncInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	if err := s.sync(ctx); err != nil {
		return fmt.Errorf("scheduler: initial sync: %w", err)
	}

	ticker := time.NewTicker(s.resync)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.stopCron()
			return nil
		case <-ticker.C:
			if err := s.sync(ctx); err != nil {
				slog.Warn("Push config resync failed", "error", err)
			}
		}
	}
}

// sync reconciles the running cron with the stored push config.
func (s *Scheduler) sync(ctx context.Context) error {
	cfg, err := s.push.Get(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && sameSchedule(s.applied, cfg) {
		return nil
	}

	s.stopCronLocked()
	s.applied = cfg

	if !cfg.IsEnabled {
		slog.Info("Scheduled regeneration disabled")
		return nil
	}

	spec, err := cronSpec(cfg.PushTime)
	if err != nil {
		return err
	}

	c := cron.New(cron.WithLocation(cfg.Location()))
	if _, err := c.AddFunc(spec, func() { s.runJob(cfg) }); err != nil {
		return fmt.Errorf("scheduler: add job: %w", err)
	}
	c.Start()
	s.cron = c

	slog.Info("Scheduled regeneration armed",
		"push_time", cfg.PushTime,
		"timezone", cfg.Timezone,
	)
	return nil
}

func (s *Scheduler) runJob(cfg domain.PushConfig) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	date := time.Now().In(cfg.Location()).Format(domain.DateFormat)
	slog.Info("Running scheduled regeneration", "date", date)

	if err := s.job(ctx, date); err != nil {
		slog.Error("Scheduled regeneration failed", "date", date, "error", err)
		return
	}
	slog.Info("Scheduled regeneration completed", "date", date)
}

func (s *Scheduler) stopCron() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopCronLocked()
}

func (s *Scheduler) stopCronLocked() {
	if s.cron == nil {
		return
	}
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.cron = nil
}

func sameSchedule(a, b domain.PushConfig) bool {
	return a.PushTime == b.PushTime &&
		a.Timezone == b.Timezone &&
		a.IsEnabled == b.IsEnabled
}

// cronSpec converts an HH:MM push time to a daily cron expression.
func cronSpec(pushTime string) (string, error) {
	if err := domain.ValidatePushTime(pushTime); err != nil {
		return "", err
	}
	parts := strings.SplitN(pushTime, ":", 2)
	hour := strings.TrimPrefix(parts[0], "0")
	if hour == "" {
		hour = "0"
	}
	minute := strings.TrimPrefix(parts[1], "0")
	if minute == "" {
		minute = "0"
	}
	return fmt.Sprintf("%s %s * * *", minute, hour), nil
}
