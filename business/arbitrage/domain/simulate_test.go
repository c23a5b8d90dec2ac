package domain

import (
	"testing"

	ammDomain "github.com/quantagov/quantum-arb/business/amm/domain"
)

func mustMarket(t *testing.T, spot ammDomain.Pool, conds []ConditionalPool) Market {
	t.Helper()
	pools := make([]ammDomain.Pool, len(conds))
	for i := range conds {
		pools[i] = conds[i].Pool
	}
	m, err := NewMarket(spot, pools)
	if err != nil {
		t.Fatalf("NewMarket() error = %v", err)
	}
	return m
}

func TestSimulateZeroSize(t *testing.T) {
	m := mustMarket(t,
		ammDomain.Pool{AssetReserve: 1000, StableReserve: 1000, FeeBps: 0},
		makeConds(3, 1000, 1000, 0),
	)
	if got := SimulateSpotToConditional(m, 0); got != 0 {
		t.Errorf("SimulateSpotToConditional(0) = %d, want 0", got)
	}
	if got := SimulateConditionalToSpot(m, 0); got != 0 {
		t.Errorf("SimulateConditionalToSpot(0) = %d, want 0", got)
	}
}

// A balanced market prices asset identically everywhere; after fees and
// rounding no size in either direction can profit.
func TestSimulateBalancedMarket(t *testing.T) {
	m := mustMarket(t,
		ammDomain.Pool{AssetReserve: 1000, StableReserve: 1000, FeeBps: 30},
		makeConds(3, 1000, 1000, 30),
	)
	for _, size := range []uint64{1, 10, 100, 500, 999} {
		if got := SimulateSpotToConditional(m, size); got != 0 {
			t.Errorf("SimulateSpotToConditional(%d) = %d, want 0", size, got)
		}
		if got := SimulateConditionalToSpot(m, size); got != 0 {
			t.Errorf("SimulateConditionalToSpot(%d) = %d, want 0", size, got)
		}
	}
}

// Asset is cheap in the conditional pools: sell spot, recombine a complete
// set from the outcomes, keep the surplus asset.
func TestSimulateSpotToConditionalProfit(t *testing.T) {
	m := mustMarket(t,
		ammDomain.Pool{AssetReserve: 1000, StableReserve: 1000, FeeBps: 0},
		makeConds(3, 10_000, 1000, 0),
	)

	// size 100: spot yields 90 stable, each conditional pool converts that
	// to 825 asset, complete set = min = 825, profit = 825 - 100.
	if got := SimulateSpotToConditional(m, 100); got != 725 {
		t.Errorf("SimulateSpotToConditional(100) = %d, want 725", got)
	}

	// The opposite direction buys expensive and sells cheap: no profit.
	if got := SimulateConditionalToSpot(m, 100); got != 0 {
		t.Errorf("SimulateConditionalToSpot(100) = %d, want 0", got)
	}
}

// Asset is rich on spot: mint a complete set cheaply from the conditionals
// and sell the recombined asset into the deep spot stable reserve.
func TestSimulateConditionalToSpotProfit(t *testing.T) {
	m := mustMarket(t,
		ammDomain.Pool{AssetReserve: 1000, StableReserve: 10_000, FeeBps: 0},
		makeConds(2, 10_000, 1000, 0),
	)

	// size 100: complete set costs max(11, 11) = 11 stable, spot sale
	// yields 909 stable, profit = 909 - 11.
	if got := SimulateConditionalToSpot(m, 100); got != 898 {
		t.Errorf("SimulateConditionalToSpot(100) = %d, want 898", got)
	}
}

// Oversized trades collapse the marginal price; profit clamps to zero
// instead of going negative.
func TestSimulateClampsLosses(t *testing.T) {
	m := mustMarket(t,
		ammDomain.Pool{AssetReserve: 1000, StableReserve: 1000, FeeBps: 0},
		makeConds(3, 10_000, 1000, 0),
	)
	if got := SimulateSpotToConditional(m, 1_000_000_000); got != 0 {
		t.Errorf("oversized SimulateSpotToConditional = %d, want 0", got)
	}
	if got := SimulateConditionalToSpot(m, 1_000_000_000); got != 0 {
		t.Errorf("oversized SimulateConditionalToSpot = %d, want 0", got)
	}
}

func TestSimulateDispatch(t *testing.T) {
	m := mustMarket(t,
		ammDomain.Pool{AssetReserve: 1000, StableReserve: 10_000, FeeBps: 0},
		makeConds(2, 10_000, 1000, 0),
	)
	if got, want := Simulate(m, ConditionalToSpot, 100), SimulateConditionalToSpot(m, 100); got != want {
		t.Errorf("Simulate(ConditionalToSpot) = %d, want %d", got, want)
	}
	if got, want := Simulate(m, SpotToConditional, 100), SimulateSpotToConditional(m, 100); got != want {
		t.Errorf("Simulate(SpotToConditional) = %d, want %d", got, want)
	}
}
