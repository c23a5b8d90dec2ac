package domain

import (
	"testing"

	"github.com/quantagov/quantum-arb/internal/numeric"
)

func TestQuoteOut(t *testing.T) {
	tests := []struct {
		name       string
		reserveIn  uint64
		reserveOut uint64
		amountIn   uint64
		feeBps     uint16
		want       uint64
	}{
		{"balanced no fee", 1000, 1000, 100, 0, 90},
		{"balanced no fee larger", 1000, 1000, 500, 0, 333},
		{"fee reduces output", 1000, 1000, 500, 30, 332},
		{"deep output reserve", 1000, 10_000, 100, 0, 909},
		{"zero amount", 1000, 1000, 0, 0, 0},
		{"zero input reserve", 0, 1000, 100, 0, 0},
		{"zero output reserve", 1000, 0, 100, 0, 0},
		{"fee at denominator", 1000, 1000, 100, FeeDenominator, 0},
		{"tiny pool huge input", 1, 1, numeric.MaxUint64, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuoteOut(tt.reserveIn, tt.reserveOut, tt.amountIn, tt.feeBps)
			if got != tt.want {
				t.Errorf("QuoteOut(%d, %d, %d, %d) = %d, want %d",
					tt.reserveIn, tt.reserveOut, tt.amountIn, tt.feeBps, got, tt.want)
			}
		})
	}
}

// Any finite input must leave the output reserve nonzero; the pool can
// always honor its own quote.
func TestQuoteOutNeverDrainsReserve(t *testing.T) {
	reserves := []uint64{1, 2, 1000, numeric.MaxUint64}
	amounts := []uint64{1, 999, numeric.MaxUint64 / 2, numeric.MaxUint64}

	for _, reserveOut := range reserves {
		for _, amountIn := range amounts {
			out := QuoteOut(1000, reserveOut, amountIn, 30)
			if out >= reserveOut {
				t.Errorf("QuoteOut(1000, %d, %d, 30) = %d, drains reserve", reserveOut, amountIn, out)
			}
		}
	}
}

func TestQuoteIn(t *testing.T) {
	tests := []struct {
		name       string
		reserveIn  uint64
		reserveOut uint64
		amountOut  uint64
		feeBps     uint16
		want       uint64
		wantOK     bool
	}{
		{"balanced no fee", 1000, 1000, 90, 0, 99, true},
		{"exact division", 100, 100, 50, 0, 100, true},
		{"ceil on remainder", 100, 100, 51, 0, 105, true},
		{"zero amount is free", 1000, 1000, 0, 0, 0, true},
		{"output equals reserve", 1000, 1000, 1000, 0, 0, false},
		{"output exceeds reserve", 1000, 1000, 2000, 0, 0, false},
		{"zero input reserve", 0, 1000, 100, 0, 0, false},
		{"zero output reserve", 1000, 0, 100, 0, 0, false},
		{"fee at denominator", 1000, 1000, 100, FeeDenominator, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := QuoteIn(tt.reserveIn, tt.reserveOut, tt.amountOut, tt.feeBps)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("QuoteIn(%d, %d, %d, %d) = (%d, %v), want (%d, %v)",
					tt.reserveIn, tt.reserveOut, tt.amountOut, tt.feeBps, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestQuoteInSaturates(t *testing.T) {
	// With a 50% fee the required input doubles past the uint64 range and
	// must read as infinitely expensive, not wrap.
	in, ok := QuoteIn(numeric.MaxUint64, 2, 1, 5000)
	if !ok {
		t.Fatal("QuoteIn reported unreachable for a servable request")
	}
	if in != numeric.MaxUint64 {
		t.Errorf("QuoteIn = %d, want saturated MaxUint64", in)
	}
}

// Buying back exactly what a swap produced can never cost more than the
// original input: QuoteOut floors and QuoteIn ceils, both in the pool's
// favor.
func TestQuoteRoundTrip(t *testing.T) {
	pools := []struct{ reserveIn, reserveOut uint64 }{
		{1000, 1000},
		{1000, 10_000},
		{123_456, 7_890},
	}
	amounts := []uint64{1, 17, 100, 500}
	fees := []uint16{0, 30, 300}

	for _, p := range pools {
		for _, amountIn := range amounts {
			for _, fee := range fees {
				out := QuoteOut(p.reserveIn, p.reserveOut, amountIn, fee)
				if out == 0 {
					continue
				}
				in, ok := QuoteIn(p.reserveIn, p.reserveOut, out, fee)
				if !ok {
					t.Errorf("QuoteIn(%d, %d, %d, %d) unreachable after QuoteOut produced it",
						p.reserveIn, p.reserveOut, out, fee)
					continue
				}
				if in > amountIn {
					t.Errorf("round trip loses: QuoteOut(%d)=%d but QuoteIn(%d)=%d",
						amountIn, out, out, in)
				}
			}
		}
	}
}

func TestPoolValidate(t *testing.T) {
	tests := []struct {
		name    string
		pool    Pool
		wantErr bool
	}{
		{"valid", Pool{AssetReserve: 1000, StableReserve: 1000, FeeBps: 30}, false},
		{"zero fee valid", Pool{AssetReserve: 1, StableReserve: 1, FeeBps: 0}, false},
		{"empty asset reserve", Pool{AssetReserve: 0, StableReserve: 1000, FeeBps: 30}, true},
		{"empty stable reserve", Pool{AssetReserve: 1000, StableReserve: 0, FeeBps: 30}, true},
		{"fee at denominator", Pool{AssetReserve: 1000, StableReserve: 1000, FeeBps: FeeDenominator}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pool.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSwapAssetIn(t *testing.T) {
	pool := Pool{AssetReserve: 1000, StableReserve: 1000, FeeBps: 0}

	out, next := pool.SwapAssetIn(100)
	if out != 90 {
		t.Fatalf("SwapAssetIn(100) out = %d, want 90", out)
	}
	if next.AssetReserve != 1100 || next.StableReserve != 910 {
		t.Errorf("post-swap reserves = {%d, %d}, want {1100, 910}", next.AssetReserve, next.StableReserve)
	}
	if pool.AssetReserve != 1000 || pool.StableReserve != 1000 {
		t.Error("SwapAssetIn mutated the receiver snapshot")
	}

	out, next = pool.SwapAssetIn(0)
	if out != 0 || next != pool {
		t.Errorf("SwapAssetIn(0) = (%d, %+v), want no-op", out, next)
	}
}

func TestSwapStableIn(t *testing.T) {
	pool := Pool{AssetReserve: 1000, StableReserve: 1000, FeeBps: 0}

	out, next := pool.SwapStableIn(100)
	if out != 90 {
		t.Fatalf("SwapStableIn(100) out = %d, want 90", out)
	}
	if next.StableReserve != 1100 || next.AssetReserve != 910 {
		t.Errorf("post-swap reserves = {%d, %d}, want {910, 1100}", next.AssetReserve, next.StableReserve)
	}
}

func TestBuyAssetExact(t *testing.T) {
	pool := Pool{AssetReserve: 1000, StableReserve: 1000, FeeBps: 0}

	in, next, ok := pool.BuyAssetExact(90)
	if !ok {
		t.Fatal("BuyAssetExact(90) not servable")
	}
	if in != 99 {
		t.Errorf("BuyAssetExact(90) in = %d, want 99", in)
	}
	if next.AssetReserve != 910 || next.StableReserve != 1099 {
		t.Errorf("post-buy reserves = {%d, %d}, want {910, 1099}", next.AssetReserve, next.StableReserve)
	}

	_, next, ok = pool.BuyAssetExact(1000)
	if ok {
		t.Error("BuyAssetExact(1000) drained the reserve")
	}
	if next != pool {
		t.Error("failed buy altered the pool")
	}
}
