package domain

import (
	"testing"

	ammDomain "github.com/quantagov/quantum-arb/business/amm/domain"
)

func makeConds(n int, asset, stable uint64, feeBps uint16) []ConditionalPool {
	conds := make([]ConditionalPool, n)
	for i := range conds {
		conds[i] = ConditionalPool{
			Pool:    ammDomain.Pool{AssetReserve: asset, StableReserve: stable, FeeBps: feeBps},
			Outcome: i,
		}
	}
	return conds
}

// One deposit mints tokens for every outcome at once, so N identical pools
// cost exactly what one pool costs. A sum would be off by a factor of N.
func TestAggregateBuyCostIdenticalPools(t *testing.T) {
	single, ok := ammDomain.QuoteIn(1000, 1000, 90, 0)
	if !ok {
		t.Fatal("single-pool quote unreachable")
	}

	for _, n := range []int{MinConditionals, 5, MaxConditionals} {
		cost, ok := AggregateBuyCost(makeConds(n, 1000, 1000, 0), 90)
		if !ok {
			t.Fatalf("n=%d: aggregate unreachable", n)
		}
		if cost != single {
			t.Errorf("n=%d: aggregate cost = %d, want single-pool cost %d", n, cost, single)
		}
	}
}

func TestAggregateBuyCostTakesWorstPool(t *testing.T) {
	conds := makeConds(2, 1000, 1000, 0)
	conds[1].StableReserve = 2000 // asset twice as expensive here

	cost, ok := AggregateBuyCost(conds, 90)
	if !ok {
		t.Fatal("aggregate unreachable")
	}
	if cost != 198 {
		t.Errorf("aggregate cost = %d, want 198 (the expensive pool's quote)", cost)
	}
}

func TestAggregateBuyCostUnreachablePool(t *testing.T) {
	conds := makeConds(3, 1000, 1000, 0)
	conds[2].AssetReserve = 50 // cannot serve 90

	cost, ok := AggregateBuyCost(conds, 90)
	if ok {
		t.Errorf("aggregate reported reachable with an exhausted pool, cost=%d", cost)
	}
}

func TestAggregateBuyCostZeroAmount(t *testing.T) {
	cost, ok := AggregateBuyCost(makeConds(3, 1000, 1000, 30), 0)
	if !ok || cost != 0 {
		t.Errorf("zero amount = (%d, %v), want (0, true)", cost, ok)
	}
}

func TestAggregateSellProceedsIdenticalPools(t *testing.T) {
	single := ammDomain.QuoteOut(1000, 1000, 100, 0)

	for _, n := range []int{MinConditionals, 5, MaxConditionals} {
		got := AggregateSellProceeds(makeConds(n, 1000, 1000, 0), 100)
		if got != single {
			t.Errorf("n=%d: aggregate proceeds = %d, want single-pool proceeds %d", n, got, single)
		}
	}
}

func TestAggregateSellProceedsTakesWeakestPool(t *testing.T) {
	conds := makeConds(2, 1000, 1000, 0)
	conds[1].AssetReserve = 500 // shallow asset side yields less

	got := AggregateSellProceeds(conds, 100)
	if got != 45 {
		t.Errorf("aggregate proceeds = %d, want 45 (the shallow pool's quote)", got)
	}
}

func TestAggregateSellProceedsEdges(t *testing.T) {
	if got := AggregateSellProceeds(nil, 100); got != 0 {
		t.Errorf("no pools = %d, want 0", got)
	}
	if got := AggregateSellProceeds(makeConds(3, 1000, 1000, 0), 0); got != 0 {
		t.Errorf("zero amount = %d, want 0", got)
	}
}

func TestNewMarket(t *testing.T) {
	spot := ammDomain.Pool{AssetReserve: 1000, StableReserve: 1000, FeeBps: 30}
	good := []ammDomain.Pool{
		{AssetReserve: 1000, StableReserve: 1000, FeeBps: 30},
		{AssetReserve: 2000, StableReserve: 500, FeeBps: 30},
	}

	m, err := NewMarket(spot, good)
	if err != nil {
		t.Fatalf("NewMarket() error = %v", err)
	}
	if m.Outcomes() != 2 {
		t.Errorf("Outcomes() = %d, want 2", m.Outcomes())
	}
	for i, c := range m.Conditionals {
		if c.Outcome != i {
			t.Errorf("conditional %d carries outcome %d", i, c.Outcome)
		}
	}

	if _, err := NewMarket(ammDomain.Pool{}, good); err == nil {
		t.Error("NewMarket accepted an empty spot pool")
	}
	if _, err := NewMarket(spot, good[:1]); err == nil {
		t.Error("NewMarket accepted a single conditional pool")
	}
	if _, err := NewMarket(spot, make([]ammDomain.Pool, MaxConditionals+1)); err == nil {
		t.Error("NewMarket accepted too many conditional pools")
	}
	bad := []ammDomain.Pool{good[0], {AssetReserve: 0, StableReserve: 1, FeeBps: 0}}
	if _, err := NewMarket(spot, bad); err == nil {
		t.Error("NewMarket accepted an invalid conditional pool")
	}
}
