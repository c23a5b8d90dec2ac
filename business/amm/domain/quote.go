package domain

import (
	"github.com/holiman/uint256"

	"github.com/quantagov/quantum-arb/internal/numeric"
)

// QuoteOut returns the output of a constant-product swap for amountIn of the
// input token, with the fee charged on the input leg. The result floors so
// the pool never loses value to rounding.
//
// The function is total: invalid preconditions and zero-value swaps return 0
// rather than failing, so search callers keep their monotonicity assumptions.
func QuoteOut(reserveIn, reserveOut, amountIn uint64, feeBps uint16) uint64 {
	if amountIn == 0 || reserveIn == 0 || reserveOut == 0 || feeBps >= FeeDenominator {
		return 0
	}

	// inAfterFee = amountIn * (10000 - feeBps)
	var inAfterFee, num, den uint256.Int
	inAfterFee.Mul(uint256.NewInt(amountIn), uint256.NewInt(uint64(FeeDenominator-feeBps)))

	// out = floor(reserveOut * inAfterFee / (reserveIn * 10000 + inAfterFee))
	num.Mul(&inAfterFee, uint256.NewInt(reserveOut))
	den.Mul(uint256.NewInt(reserveIn), uint256.NewInt(FeeDenominator))
	den.Add(&den, &inAfterFee)
	num.Div(&num, &den)

	// Strictly below reserveOut for any finite input, so the pool can
	// always honor the quote.
	return numeric.ClampUint64(&num)
}

// QuoteIn returns the input required to receive exactly amountOut of the
// output token. The result ceils, again in the pool's favor. It reports
// false when the request would meet or exceed the output reserve; a quote
// whose input exceeds the uint64 range saturates to MaxUint64 (infinite
// cost) instead of wrapping.
func QuoteIn(reserveIn, reserveOut, amountOut uint64, feeBps uint16) (uint64, bool) {
	if amountOut == 0 {
		return 0, true
	}
	if reserveIn == 0 || reserveOut == 0 || feeBps >= FeeDenominator {
		return 0, false
	}
	if amountOut >= reserveOut {
		// Draining the pool is unreachable at any price.
		return 0, false
	}

	// in = ceil(reserveIn * amountOut * 10000 / ((reserveOut - amountOut) * (10000 - feeBps)))
	var num, den, in uint256.Int
	num.Mul(uint256.NewInt(reserveIn), uint256.NewInt(amountOut))
	num.Mul(&num, uint256.NewInt(FeeDenominator))
	den.Mul(uint256.NewInt(reserveOut-amountOut), uint256.NewInt(uint64(FeeDenominator-feeBps)))
	numeric.CeilDiv(&in, &num, &den)

	return numeric.ClampUint64(&in), true
}
