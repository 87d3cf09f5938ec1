package sweeper

import (
	"context"
	"fmt"
	"time"

	"statushub/internal/app/adapters/metrics"
	"statushub/internal/app/domain/status"
	"statushub/internal/app/ports"
	"statushub/pkg/logger"
)

// Sweeper periodically removes expired records from the store and pushes a
// StatusExpired event per removed id. Read-time filtering already keeps
// queries correct on its own; the sweeper exists to reclaim memory and to
// emit the expiry notifications no read path can produce.
type Sweeper struct {
	log   logger.Logger
	store ports.StoragePort
	hub   ports.HubPort
	clock ports.Clock

	interval      time.Duration
	retryInterval time.Duration
}

func New(log logger.Logger, store ports.StoragePort, hub ports.HubPort, clock ports.Clock, interval, retryInterval time.Duration) *Sweeper {
	return &Sweeper{
		log:           log,
		store:         store,
		hub:           hub,
		clock:         clock,
		interval:      interval,
		retryInterval: retryInterval,
	}
}

// Run loops until ctx is cancelled. A failed cycle is logged and retried
// after the shorter retry interval; the loop itself never terminates on a
// transient failure.
func (s *Sweeper) Run(ctx context.Context) {
	for {
		wait := s.interval
		if err := s.RunOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			s.log.Error("Sweep cycle failed", err)
			metrics.SweepFailures.Inc()
			wait = s.retryInterval
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// RunOnce executes a single sweep-and-notify cycle. Exported so tests can
// trigger cycles deterministically instead of waiting out real intervals.
func (s *Sweeper) RunOnce(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sweep panic: %v", r)
		}
	}()

	start := time.Now()
	defer func() {
		metrics.SweepDuration.Observe(time.Since(start).Seconds())
	}()

	ids := s.store.SweepExpired(s.clock.Now())
	if len(ids) == 0 {
		return nil
	}

	for _, id := range ids {
		// The swept records are already gone from the store; on shutdown
		// the remaining notifies are simply skipped.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.hub.Notify(status.EventExpired, id)
	}

	metrics.StatusesExpired.Add(float64(len(ids)))
	metrics.StoredStatuses.Set(float64(s.store.Len()))
	s.log.Info("Cleaned up expired statuses", "count", len(ids))
	return nil
}
