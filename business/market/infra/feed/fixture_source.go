package feed

import (
	"context"
	"sync"
	"time"

	"github.com/quantagov/quantum-arb/business/market/domain"
	"github.com/quantagov/quantum-arb/internal/logger"
)

// FixtureMarket is one market replayed by the fixture source.
type FixtureMarket struct {
	ID           string
	Spot         domain.PoolState
	Conditionals []domain.PoolState
}

// FixtureSource replays a fixed set of markets on a ticker. It exists for
// offline runs and demos where no governance runtime is available.
type FixtureSource struct {
	markets  []FixtureMarket
	interval time.Duration
	logger   logger.LoggerInterface

	out      chan *domain.Snapshot
	done     chan struct{}
	once     sync.Once
	sequence uint64
}

// NewFixtureSource creates a fixture source replaying markets every interval.
func NewFixtureSource(markets []FixtureMarket, interval time.Duration, log logger.LoggerInterface) *FixtureSource {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &FixtureSource{
		markets:  markets,
		interval: interval,
		logger:   log,
		out:      make(chan *domain.Snapshot, 64),
		done:     make(chan struct{}),
	}
}

// Subscribe starts the replay loop and returns the snapshot channel.
func (s *FixtureSource) Subscribe(ctx context.Context) (<-chan *domain.Snapshot, error) {
	s.logger.Info(ctx, "fixture feed started",
		"markets", len(s.markets),
		"interval", s.interval.String())

	go s.run(ctx)
	return s.out, nil
}

func (s *FixtureSource) run(ctx context.Context) {
	// The replay loop owns the channel; closing it here keeps Close from
	// racing an in-flight send.
	defer close(s.out)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Emit one round immediately so the detector has work at startup.
	s.emitRound()

	for {
		select {
		case <-ticker.C:
			s.emitRound()
		case <-s.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *FixtureSource) emitRound() {
	for _, m := range s.markets {
		s.sequence++
		snap := &domain.Snapshot{
			MarketID:     m.ID,
			Sequence:     s.sequence,
			Spot:         m.Spot,
			Conditionals: append([]domain.PoolState(nil), m.Conditionals...),
			Timestamp:    time.Now(),
		}

		select {
		case s.out <- snap:
		case <-s.done:
			return
		default:
			// Detector is behind. Skip this market for the round.
		}
	}
}

// Close stops the replay loop.
func (s *FixtureSource) Close() error {
	s.once.Do(func() {
		close(s.done)
	})
	return nil
}
