package domain

import (
	ammDomain "github.com/quantagov/quantum-arb/business/amm/domain"
)

// The two directional simulators compose the quote engine and the quantum
// aggregator into a single profit-for-size function. Both are pure,
// deterministic and total: any out-of-range size yields 0 profit rather
// than an error, which preserves the unimodal shape the search relies on.

// SimulateSpotToConditional sells size asset into the spot pool, splits the
// stable proceeds across every conditional pool and recombines the asset
// outputs into a complete set. Profit is denominated in asset and clamped
// to zero.
func SimulateSpotToConditional(m Market, size uint64) uint64 {
	if size == 0 {
		return 0
	}
	stableOut := ammDomain.QuoteOut(m.Spot.AssetReserve, m.Spot.StableReserve, size, m.Spot.FeeBps)
	if stableOut == 0 {
		return 0
	}
	assetBack := AggregateSellProceeds(m.Conditionals, stableOut)
	if assetBack <= size {
		return 0
	}
	return assetBack - size
}

// SimulateConditionalToSpot prices a complete set of size asset across all
// conditional pools (quantum MAX cost) and sells the recombined asset into
// the spot pool. Profit is denominated in stable and clamped to zero.
func SimulateConditionalToSpot(m Market, size uint64) uint64 {
	if size == 0 {
		return 0
	}
	cost, ok := AggregateBuyCost(m.Conditionals, size)
	if !ok {
		return 0
	}
	proceeds := ammDomain.QuoteOut(m.Spot.AssetReserve, m.Spot.StableReserve, size, m.Spot.FeeBps)
	if proceeds <= cost {
		return 0
	}
	return proceeds - cost
}

// Simulate dispatches to the simulator for the given direction.
func Simulate(m Market, d Direction, size uint64) uint64 {
	if d == ConditionalToSpot {
		return SimulateConditionalToSpot(m, size)
	}
	return SimulateSpotToConditional(m, size)
}
