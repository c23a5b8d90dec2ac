// Package app contains application services and port definitions for the
// arbitrage context.
package app

import (
	"fmt"

	"github.com/quantagov/quantum-arb/business/arbitrage/domain"
	"github.com/quantagov/quantum-arb/internal/numeric"
)

// coarseThreshold is the interval width at which the ternary narrowing
// stops and the linear scan takes over.
//
// Liveness invariant: the threshold must be >= minCoarseThreshold. While
// the interval is wider than the threshold, the discarded third is
// (hi-lo)/3 >= 3, so every iteration shrinks the interval geometrically
// and the search completes in O(log_1.5(upper/threshold)) iterations. If
// the interval were ever allowed to reach width 2 while (hi-lo)/3 floors
// to 0, the loop would make no progress and never terminate.
const coarseThreshold = 10

// minCoarseThreshold is the smallest threshold for which the narrowing
// loop provably makes progress.
const minCoarseThreshold = 3

// maxIterations is a hard ceiling on narrowing iterations. The geometric
// bound keeps the real count far below it for any uint64 interval
// (log_1.5(2^64) ≈ 110); the ceiling exists so that a future regression
// degrades to a truncated search instead of a hung one.
const maxIterations = 256

// Hint narrows the search window. It never affects which sizes are legal,
// only how many the search has to look at.
type Hint struct {
	Lo uint64
	Hi uint64
}

// ProfitFunc is a profit-for-size curve, assumed unimodal.
type ProfitFunc func(size uint64) uint64

// Optimizer finds the profit-maximizing trade size on a unimodal curve
// with a two-phase bounded search: coarse ternary narrowing followed by a
// linear scan of the final window.
type Optimizer struct {
	threshold uint64
}

// NewOptimizer constructs an Optimizer and enforces the liveness invariant
// on the coarse threshold at construction time. A violating threshold is a
// programming defect, not a runtime condition.
func NewOptimizer() (*Optimizer, error) {
	if coarseThreshold < minCoarseThreshold {
		return nil, fmt.Errorf("coarse threshold %d below liveness floor %d", coarseThreshold, minCoarseThreshold)
	}
	return &Optimizer{threshold: coarseThreshold}, nil
}

// Maximize returns the size in [0, upper] maximizing fn, the profit at that
// size, and the number of fn evaluations spent. The hint, when non-nil,
// narrows the window after clamping to [0, upper].
func (o *Optimizer) Maximize(fn ProfitFunc, upper uint64, hint *Hint) (uint64, uint64, int) {
	lo, hi := uint64(0), upper
	if hint != nil {
		if hint.Lo > lo {
			lo = hint.Lo
		}
		if hint.Hi < hi {
			hi = hint.Hi
		}
		if lo > hi {
			lo, hi = 0, upper
		}
	}

	evals := 0
	probe := func(size uint64) uint64 {
		evals++
		return fn(size)
	}

	// Degenerate windows resolve by boundary evaluation alone; a ternary
	// split of a width-0 or width-1 interval is meaningless.
	if hi-lo <= 1 {
		bestSize, bestProfit := lo, probe(lo)
		if hi != lo {
			if p := probe(hi); p > bestProfit {
				bestSize, bestProfit = hi, p
			}
		}
		return bestSize, bestProfit, evals
	}

	// Phase 1: coarse ternary narrowing. Keeping the inferior probe
	// point inside the interval (lo=m1 / hi=m2, not ±1) stays correct on
	// plateaus from rounding-induced non-strict concavity.
	for iter := 0; hi-lo > o.threshold && iter < maxIterations; iter++ {
		third := (hi - lo) / 3
		m1 := lo + third
		m2 := hi - third
		if probe(m1) < probe(m2) {
			lo = m1
		} else {
			hi = m2
		}
	}

	// Phase 2: linear scan of the remaining tight window picks the true
	// maximum regardless of plateaus near the optimum.
	bestSize, bestProfit := lo, probe(lo)
	for size := lo + 1; size <= hi; size++ {
		if p := probe(size); p > bestProfit {
			bestSize, bestProfit = size, p
		}
		if size == numeric.MaxUint64 {
			break
		}
	}
	return bestSize, bestProfit, evals
}

// upperBound derives the search ceiling for a direction from pool reserves,
// saturating-safely. The simulators are total, so a generous bound costs
// iterations, never correctness.
func upperBound(m domain.Market, d domain.Direction) uint64 {
	if d == domain.ConditionalToSpot {
		// A complete set cannot contain more asset than the shallowest
		// conditional pool can sell.
		min := uint64(numeric.MaxUint64)
		for i := range m.Conditionals {
			if r := m.Conditionals[i].AssetReserve; r < min {
				min = r
			}
		}
		return numeric.SatSub(min, 1)
	}
	// Selling into spot deeper than its own asset reserve is never
	// optimal: the marginal price has long collapsed by then.
	return m.Spot.AssetReserve
}
