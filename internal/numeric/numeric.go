// Package numeric provides saturating fixed-width arithmetic shared by the
// quoting and settlement layers. Every helper saturates instead of wrapping:
// a saturated value reads as "unreachable" to the search above and is never
// selected as optimal.
package numeric

import (
	"math"
	"math/bits"

	"github.com/holiman/uint256"
)

// MaxUint64 is the protocol's magnitude ceiling for reserves and amounts.
const MaxUint64 = math.MaxUint64

// SatAdd returns a+b, saturating at MaxUint64.
func SatAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return MaxUint64
	}
	return sum
}

// SatSub returns a-b, floored at 0.
func SatSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// SatMul returns a*b, saturating at MaxUint64.
func SatMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return MaxUint64
	}
	return lo
}

// ClampUint64 saturates a 256-bit value to the uint64 range.
func ClampUint64(x *uint256.Int) uint64 {
	if x.IsUint64() {
		return x.Uint64()
	}
	return MaxUint64
}

// CeilDiv sets z = ceil(num/den) and returns z. A zero denominator yields
// a saturated result rather than a panic, keeping callers total.
func CeilDiv(z, num, den *uint256.Int) *uint256.Int {
	if den.IsZero() {
		return z.SetAllOne()
	}
	var rem uint256.Int
	z.DivMod(num, den, &rem)
	if !rem.IsZero() {
		z.AddUint64(z, 1)
	}
	return z
}

// Min returns the smaller of a and b.
func Min(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
