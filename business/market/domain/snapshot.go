// Package domain contains the market snapshot types consumed by the
// arbitrage detector. Snapshots arrive from the governance runtime as plain
// numeric aggregates; there is no wire format beyond the feed adapters.
package domain

import (
	"fmt"
	"time"

	ammDomain "github.com/quantagov/quantum-arb/business/amm/domain"
	arbDomain "github.com/quantagov/quantum-arb/business/arbitrage/domain"
)

// PoolState is the wire shape of one pool inside a snapshot.
type PoolState struct {
	AssetReserve  uint64 `json:"asset_reserve"`
	StableReserve uint64 `json:"stable_reserve"`
	FeeBps        uint16 `json:"fee_bps"`
}

// Snapshot is one observation of a proposal's market set: the spot pool and
// its conditional pools, plus an optional search-window hint.
type Snapshot struct {
	MarketID     string      `json:"market_id"`
	Sequence     uint64      `json:"sequence"`
	Spot         PoolState   `json:"spot"`
	Conditionals []PoolState `json:"conditionals"`
	// HintLo/HintHi optionally narrow the optimizer's search window.
	// Both zero means no hint. Hints never affect correctness, only
	// iteration count.
	HintLo    uint64    `json:"hint_lo,omitempty"`
	HintHi    uint64    `json:"hint_hi,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Market converts the snapshot into a validated arbitrage market.
func (s *Snapshot) Market() (arbDomain.Market, error) {
	if s.MarketID == "" {
		return arbDomain.Market{}, fmt.Errorf("snapshot missing market id")
	}
	spot := ammDomain.Pool{
		AssetReserve:  s.Spot.AssetReserve,
		StableReserve: s.Spot.StableReserve,
		FeeBps:        s.Spot.FeeBps,
	}
	conds := make([]ammDomain.Pool, len(s.Conditionals))
	for i, p := range s.Conditionals {
		conds[i] = ammDomain.Pool{
			AssetReserve:  p.AssetReserve,
			StableReserve: p.StableReserve,
			FeeBps:        p.FeeBps,
		}
	}
	return arbDomain.NewMarket(spot, conds)
}

// HasHint reports whether the snapshot carries a search-window hint.
func (s *Snapshot) HasHint() bool {
	return s.HintLo != 0 || s.HintHi != 0
}
