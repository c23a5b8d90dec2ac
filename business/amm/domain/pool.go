// Package domain contains the constant-product pool model and quote engine
// shared by the spot market and every conditional market.
package domain

import (
	"fmt"

	"github.com/quantagov/quantum-arb/internal/numeric"
)

// FeeDenominator is the basis-point scale for pool fees.
const FeeDenominator = 10_000

// Pool is an immutable snapshot of a two-token constant-product pool.
// The optimizer only ever reads snapshots; live mutation happens in the
// settlement ledger, which commits a replacement snapshot.
type Pool struct {
	AssetReserve  uint64
	StableReserve uint64
	FeeBps        uint16
}

// Validate checks the pool invariants: both reserves positive while active
// and the fee strictly below 100%.
func (p Pool) Validate() error {
	if p.AssetReserve == 0 || p.StableReserve == 0 {
		return fmt.Errorf("pool has empty reserve (asset=%d stable=%d)", p.AssetReserve, p.StableReserve)
	}
	if p.FeeBps >= FeeDenominator {
		return fmt.Errorf("pool fee %d bps out of range [0, %d)", p.FeeBps, FeeDenominator)
	}
	return nil
}

// SwapAssetIn sells amountIn of the asset token into the pool and returns
// the stable output together with the post-swap pool.
func (p Pool) SwapAssetIn(amountIn uint64) (uint64, Pool) {
	out := QuoteOut(p.AssetReserve, p.StableReserve, amountIn, p.FeeBps)
	if out == 0 {
		return 0, p
	}
	next := p
	next.AssetReserve = numeric.SatAdd(next.AssetReserve, amountIn)
	next.StableReserve -= out
	return out, next
}

// SwapStableIn sells amountIn of the stable token into the pool and returns
// the asset output together with the post-swap pool.
func (p Pool) SwapStableIn(amountIn uint64) (uint64, Pool) {
	out := QuoteOut(p.StableReserve, p.AssetReserve, amountIn, p.FeeBps)
	if out == 0 {
		return 0, p
	}
	next := p
	next.StableReserve = numeric.SatAdd(next.StableReserve, amountIn)
	next.AssetReserve -= out
	return out, next
}

// BuyAssetExact acquires exactly amountOut of the asset token, paying stable.
// It reports false when the pool cannot serve the request (exhausted reserve
// or a saturated quote).
func (p Pool) BuyAssetExact(amountOut uint64) (uint64, Pool, bool) {
	in, ok := QuoteIn(p.StableReserve, p.AssetReserve, amountOut, p.FeeBps)
	if !ok {
		return 0, p, false
	}
	next := p
	next.StableReserve = numeric.SatAdd(next.StableReserve, in)
	next.AssetReserve -= amountOut
	return in, next, true
}
