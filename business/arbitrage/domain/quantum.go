package domain

import (
	ammDomain "github.com/quantagov/quantum-arb/business/amm/domain"
)

// Quantum cost semantics: one base-currency deposit mints `amount` of
// conditional tokens for every outcome at once. Acting across N pools
// therefore costs the worst single pool — never the sum. Getting this
// wrong misprices opportunities by a factor approaching N.

// AggregateBuyCost returns the stable cost of acquiring amount of the asset
// token from every conditional pool, i.e. the cost of reconstructing a
// complete set. Only the single most expensive pool constrains how much
// base currency must be minted, so the aggregate is the MAX of the
// per-pool quotes. It reports false if any pool cannot serve the request.
func AggregateBuyCost(conds []ConditionalPool, amount uint64) (uint64, bool) {
	if amount == 0 {
		return 0, true
	}
	var worst uint64
	for i := range conds {
		in, ok := ammDomain.QuoteIn(conds[i].StableReserve, conds[i].AssetReserve, amount, conds[i].FeeBps)
		if !ok {
			return 0, false
		}
		if in > worst {
			worst = in
		}
	}
	return worst, true
}

// AggregateSellProceeds returns the asset obtainable by selling amount of
// stable into every conditional pool and recombining the outputs into a
// complete set. The weakest pool is the bottleneck, so the aggregate is
// the MIN of the per-pool quotes.
func AggregateSellProceeds(conds []ConditionalPool, amount uint64) uint64 {
	if amount == 0 || len(conds) == 0 {
		return 0
	}
	best := uint64(0)
	for i := range conds {
		out := ammDomain.QuoteOut(conds[i].StableReserve, conds[i].AssetReserve, amount, conds[i].FeeBps)
		if i == 0 || out < best {
			best = out
		}
	}
	return best
}
