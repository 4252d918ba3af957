package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Source exposes the cached service health flag read by the health route.
type Source interface {
	IsHealthy() bool
}

// StoreChecker monitors store connectivity with periodic HealthPing probes
// and caches the result, so the health route never blocks on the backend.
type StoreChecker struct {
	pinger       HealthPinger
	healthy      atomic.Int32
	log          zerolog.Logger
	probeTimeout time.Duration
}

// NewStoreChecker creates a checker over the driver's ping. The checker
// starts unhealthy until the first successful probe.
func NewStoreChecker(p HealthPinger, log zerolog.Logger, probeTimeout time.Duration) *StoreChecker {
	c := &StoreChecker{pinger: p, log: log, probeTimeout: probeTimeout}
	c.healthy.Store(0)
	return c
}

// IsHealthy returns the cached flag without touching the store.
func (c *StoreChecker) IsHealthy() bool { return c.healthy.Load() == 1 }

// Start probes once immediately, then on every interval tick until ctx ends.
// Transitions are logged; steady state is silent.
func (c *StoreChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := int32(-1)
	check := func() {
		to := c.probeTimeout
		if to <= 0 {
			to = 2 * time.Second
		}
		probeCtx, cancel := context.WithTimeout(ctx, to)
		defer cancel()

		cur := int32(1)
		if err := c.pinger.HealthPing(probeCtx); err != nil {
			c.log.Error().Err(err).Msg("store health probe failed")
			cur = 0
		}
		c.healthy.Store(cur)
		if cur != prev {
			if cur == 1 {
				c.log.Info().Msg("store health: UP")
			} else {
				c.log.Error().Msg("store health: DOWN")
			}
			prev = cur
		}
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
