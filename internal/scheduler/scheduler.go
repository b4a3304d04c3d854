package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/Volcanex/kindle-server/internal/domain"
)

// Syncer defines the interface for batch sync operations.
type Syncer interface {
	SyncDue(ctx context.Context, force bool) (*domain.BatchResult, error)
	CleanupOldArticles(ctx context.Context, days int) (int64, error)
}

type Scheduler struct {
	syncer      Syncer
	interval    time.Duration
	cleanupDays int
	logger      *slog.Logger
}

func NewScheduler(syncer Syncer, interval time.Duration, cleanupDays int, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:      syncer,
		interval:    interval,
		cleanupDays: cleanupDays,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	cleanup := time.NewTicker(24 * time.Hour)
	defer cleanup.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		case <-cleanup.C:
			s.runCleanup(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	if _, err := s.syncer.SyncDue(syncCtx, false); err != nil {
		s.logger.Error("sync failed", "error", err)
	}
}

func (s *Scheduler) runCleanup(ctx context.Context) {
	cleanupCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if _, err := s.syncer.CleanupOldArticles(cleanupCtx, s.cleanupDays); err != nil {
		s.logger.Error("cleanup failed", "error", err)
	}
}
