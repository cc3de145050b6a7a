package sync

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Schedule runs a full sync every interval until ctx is done. A tick that finds a run
// in progress is skipped.
func (s *Service) Schedule(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("Sync scheduler started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sync scheduler stopped")
			return
		case <-ticker.C:
			if _, err := s.Run(ctx, ModeFull); err != nil {
				if errors.Is(err, ErrRunInProgress) {
					s.logger.Info("Skipping scheduled sync, previous run still active")
					continue
				}
				s.logger.Error("Scheduled sync failed", zap.Error(err))
			}
		}
	}
}
