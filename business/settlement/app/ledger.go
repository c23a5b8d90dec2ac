// Package app contains the settlement application services: the live pool
// ledger and the complete-set executor.
package app

import (
	"fmt"
	"sync"

	arbDomain "github.com/quantagov/quantum-arb/business/arbitrage/domain"
)

// Ledger owns the live pool state per market and provides the explicit
// single-writer guarantee the optimizer's pure layers do not need but
// settlement does: pool reads and writes for one arbitrage attempt happen
// under one per-market lock, so no two attempts touch overlapping pools.
type Ledger struct {
	mu      sync.RWMutex
	markets map[string]*marketEntry
}

type marketEntry struct {
	mu     sync.Mutex
	market arbDomain.Market
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{markets: make(map[string]*marketEntry)}
}

// Register installs live pool state for a market, replacing any previous
// state under the same id.
func (l *Ledger) Register(id string, m arbDomain.Market) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.markets[id] = &marketEntry{market: m}
}

// Snapshot returns an immutable copy of a market's pools, safe for
// concurrent estimation off the critical path.
func (l *Ledger) Snapshot(id string) (arbDomain.Market, bool) {
	l.mu.RLock()
	e, ok := l.markets[id]
	l.mu.RUnlock()
	if !ok {
		return arbDomain.Market{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyMarket(e.market), true
}

// withExclusive runs fn holding the market's writer lock. fn receives a
// working copy; the copy is committed back only when fn returns nil, so a
// failed attempt leaves the live pools untouched.
func (l *Ledger) withExclusive(id string, fn func(m *arbDomain.Market) error) error {
	l.mu.RLock()
	e, ok := l.markets[id]
	l.mu.RUnlock()
	if !ok {
		return fmt.Errorf("market %q not registered", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	working := copyMarket(e.market)
	if err := fn(&working); err != nil {
		return err
	}
	e.market = working
	return nil
}

func copyMarket(m arbDomain.Market) arbDomain.Market {
	out := m
	out.Conditionals = make([]arbDomain.ConditionalPool, len(m.Conditionals))
	copy(out.Conditionals, m.Conditionals)
	return out
}
