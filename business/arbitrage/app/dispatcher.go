package app

import (
	"github.com/quantagov/quantum-arb/business/arbitrage/domain"
)

// BestTrade runs one directional search per direction and returns the
// better result together with the total evaluation count. Ties resolve
// deterministically in favor of SpotToConditional. Total cost is about
// twice one directional search, never more.
func (o *Optimizer) BestTrade(m domain.Market, hint *Hint) (domain.Result, int) {
	s2cSize, s2cProfit, s2cEvals := o.Maximize(func(size uint64) uint64 {
		return domain.SimulateSpotToConditional(m, size)
	}, upperBound(m, domain.SpotToConditional), hint)

	c2sSize, c2sProfit, c2sEvals := o.Maximize(func(size uint64) uint64 {
		return domain.SimulateConditionalToSpot(m, size)
	}, upperBound(m, domain.ConditionalToSpot), hint)

	evals := s2cEvals + c2sEvals

	if c2sProfit > s2cProfit {
		return domain.Result{
			Amount:    c2sSize,
			Profit:    c2sProfit,
			Direction: domain.ConditionalToSpot,
		}, evals
	}

	res := domain.Result{
		Amount:    s2cSize,
		Profit:    s2cProfit,
		Direction: domain.SpotToConditional,
	}
	if res.Profit == 0 {
		// No arbitrage: report zero amount so amount > 0 implies
		// profit > 0.
		res.Amount = 0
	}
	return res, evals
}
