package domain

import (
	"fmt"

	ammDomain "github.com/quantagov/quantum-arb/business/amm/domain"
)

// MaxConditionals is the protocol ceiling on outcome markets per proposal.
const MaxConditionals = 50

// MinConditionals is the smallest meaningful outcome count.
const MinConditionals = 2

// ConditionalPool is an outcome-specific constant-product pool. Its tokens
// are redeemable only if the carried outcome is realized.
type ConditionalPool struct {
	ammDomain.Pool
	Outcome int
}

// Market is one spot pool plus an ordered sequence of conditional pools,
// all denominated in the same asset/stable pair. Conditional pool i
// corresponds to outcome i.
type Market struct {
	Spot         ammDomain.Pool
	Conditionals []ConditionalPool
}

// NewMarket validates and assembles a market from pool snapshots.
// Outcome indices are assigned by position.
func NewMarket(spot ammDomain.Pool, conditionals []ammDomain.Pool) (Market, error) {
	if err := spot.Validate(); err != nil {
		return Market{}, fmt.Errorf("spot pool: %w", err)
	}
	if len(conditionals) < MinConditionals || len(conditionals) > MaxConditionals {
		return Market{}, fmt.Errorf("conditional pool count %d outside [%d, %d]",
			len(conditionals), MinConditionals, MaxConditionals)
	}

	conds := make([]ConditionalPool, len(conditionals))
	for i, p := range conditionals {
		if err := p.Validate(); err != nil {
			return Market{}, fmt.Errorf("conditional pool %d: %w", i, err)
		}
		conds[i] = ConditionalPool{Pool: p, Outcome: i}
	}

	return Market{Spot: spot, Conditionals: conds}, nil
}

// Outcomes returns the number of conditional markets.
func (m Market) Outcomes() int {
	return len(m.Conditionals)
}
