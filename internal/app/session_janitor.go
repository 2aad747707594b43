package app

import (
	"context"
	"time"

	"github.com/riskibarqy/courtside/internal/platform/logging"
)

const (
	maxSessionJanitorInterval = time.Minute
	minSessionJanitorInterval = time.Second
)

type sessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) int
}

// sessionJanitorInterval sweeps at half the TTL, within [1s, 1m].
func sessionJanitorInterval(ttl time.Duration) time.Duration {
	return min(max(ttl/2, minSessionJanitorInterval), maxSessionJanitorInterval)
}

// startSessionJanitor purges idle scorekeeping sessions on every tick until
// the returned stop func is called. stop waits for an in-flight sweep.
func startSessionJanitor(purger sessionPurger, interval time.Duration, logger *logging.Logger) func() error {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := purger.PurgeExpiredSessions(ctx); removed > 0 {
					logger.Info("session janitor swept", "removed", removed)
				}
			}
		}
	}()

	return func() error {
		cancel()
		<-done
		return nil
	}
}
