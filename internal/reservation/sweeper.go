package reservation

import (
	"context"
	"time"

	"driveslot/internal/event"
	"driveslot/internal/instructor"
	"driveslot/internal/logger"
	"driveslot/internal/metrics"
)

// Sweeper hard-releases pending online-payment reservations older than the
// TTL. Soft release only changes what the abandoning student sees; the
// sweeper is what actually frees the slot for everyone else.
type Sweeper struct {
	repo     instructor.Repository
	bus      *event.Bus
	ttl      time.Duration
	interval time.Duration
}

func NewSweeper(repo instructor.Repository, bus *event.Bus, ttl, interval time.Duration) *Sweeper {
	return &Sweeper{repo: repo, bus: bus, ttl: ttl, interval: interval}
}

func (s *Sweeper) Start(ctx context.Context) {
	logger.Info("reservation sweeper started",
		"ttl_minutes", s.ttl.Minutes(),
		"interval_seconds", s.interval.Seconds(),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("reservation sweeper stopped")
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce releases expired pendings and wakes the affected calendars.
// Errors are logged, not returned: the next tick retries.
func (s *Sweeper) SweepOnce(ctx context.Context) int {
	cutoff := time.Now().Add(-s.ttl)

	instructorIDs, err := s.repo.ReleaseExpired(ctx, cutoff)
	if err != nil {
		logger.Error("sweep failed", "error", err.Error())
		return 0
	}

	if len(instructorIDs) == 0 {
		return 0
	}

	metrics.RecordExpiredReleased(len(instructorIDs))
	logger.Info("released expired reservations", "count", len(instructorIDs))

	notified := make(map[int]struct{})
	for _, id := range instructorIDs {
		if _, ok := notified[id]; ok {
			continue
		}
		notified[id] = struct{}{}
		s.bus.Publish(event.SlotsTopic(id))
	}

	return len(instructorIDs)
}
