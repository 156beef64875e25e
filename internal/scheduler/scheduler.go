package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

// resyncer repairs synchronization state that a lost notification may have
// left stale.
type resyncer interface {
	Resync(ctx context.Context) error
}

type Scheduler struct {
	feed     resyncer
	interval time.Duration
	logger   logger.Logger
}

func New(
	feed resyncer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		feed:     feed,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	start := time.Now()
	if err := s.feed.Resync(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("failed to resync change feed",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Debug("change feed resynced",
		logger.Duration("took", time.Since(start)),
	)
}
