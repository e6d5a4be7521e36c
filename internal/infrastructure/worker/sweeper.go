package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const defaultInterval = 5 * time.Minute

// CartEvictor is the interface the sweeper drives; implemented by the cart
// service.
type CartEvictor interface {
	EvictIdle(cutoff time.Time) int
}

// Sweeper periodically evicts carts that have been idle longer than ttl.
// Carts live only in memory, so without the sweeper an abandoned cart would
// be held for the whole process lifetime.
type Sweeper struct {
	carts    CartEvictor
	ttl      time.Duration
	interval time.Duration
	log      zerolog.Logger
	evicted  func(int)
}

// NewSweeper creates a Sweeper evicting carts idle longer than ttl, checking
// every interval. If interval <= 0, defaultInterval is used. The optional
// evicted callback receives the count of each sweep that removed something
// (used to feed metrics).
func NewSweeper(carts CartEvictor, ttl, interval time.Duration, log zerolog.Logger, evicted func(int)) *Sweeper {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Sweeper{carts: carts, ttl: ttl, interval: interval, log: log, evicted: evicted}
}

// Start launches the sweep loop. It stops when ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	n := s.carts.EvictIdle(time.Now().Add(-s.ttl))
	if n == 0 {
		return
	}
	s.log.Debug().Int("count", n).Msg("cart sweep completed")
	if s.evicted != nil {
		s.evicted(n)
	}
}
