// Package domain contains the settlement-side types: transient quantum
// balances and execution receipts.
package domain

import (
	"github.com/quantagov/quantum-arb/internal/numeric"

	arbDomain "github.com/quantagov/quantum-arb/business/arbitrage/domain"
)

// QuantumBalance tracks quantum-split holdings across every outcome during
// one arbitrage execution. Index i corresponds to conditional pool i. It is
// created and destroyed within a single execution; the leftover after the
// complete-set burn is returned to the caller as dust.
type QuantumBalance struct {
	Asset  []uint64
	Stable []uint64
}

// NewQuantumBalance creates an empty balance spanning the given outcomes.
func NewQuantumBalance(outcomes int) *QuantumBalance {
	return &QuantumBalance{
		Asset:  make([]uint64, outcomes),
		Stable: make([]uint64, outcomes),
	}
}

// DepositStable quantum-splits amount of base currency: every outcome is
// credited the full amount at once.
func (b *QuantumBalance) DepositStable(amount uint64) {
	for i := range b.Stable {
		b.Stable[i] = numeric.SatAdd(b.Stable[i], amount)
	}
}

// CompleteSetAsset returns the largest asset quantity uniformly available
// across every outcome, i.e. the largest burnable complete set.
func (b *QuantumBalance) CompleteSetAsset() uint64 {
	if len(b.Asset) == 0 {
		return 0
	}
	min := b.Asset[0]
	for _, v := range b.Asset[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// BurnAsset removes amount of asset from every outcome, redeeming the
// backing currency. It reports false if any outcome holds less than amount.
func (b *QuantumBalance) BurnAsset(amount uint64) bool {
	for _, v := range b.Asset {
		if v < amount {
			return false
		}
	}
	for i := range b.Asset {
		b.Asset[i] -= amount
	}
	return true
}

// IsEmpty reports whether every outcome balance is zero.
func (b *QuantumBalance) IsEmpty() bool {
	for _, v := range b.Asset {
		if v != 0 {
			return false
		}
	}
	for _, v := range b.Stable {
		if v != 0 {
			return false
		}
	}
	return true
}

// Receipt records one settled arbitrage: the realized profit withdrawn for
// the recipient and any non-uniform remainder returned as dust.
type Receipt struct {
	MarketID  string
	Direction arbDomain.Direction
	Amount    uint64
	Profit    uint64
	Recipient string
	Dust      *QuantumBalance
}
