package numeric

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestSatAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b uint64
		want uint64
	}{
		{"zero plus zero", 0, 0, 0},
		{"small values", 3, 4, 7},
		{"at ceiling", MaxUint64 - 1, 1, MaxUint64},
		{"overflow saturates", MaxUint64, 1, MaxUint64},
		{"both max", MaxUint64, MaxUint64, MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SatAdd(tt.a, tt.b); got != tt.want {
				t.Errorf("SatAdd(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSatSub(t *testing.T) {
	tests := []struct {
		name string
		a, b uint64
		want uint64
	}{
		{"simple", 10, 3, 7},
		{"equal floors to zero", 5, 5, 0},
		{"underflow floors to zero", 3, 10, 0},
		{"from max", MaxUint64, 1, MaxUint64 - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SatSub(tt.a, tt.b); got != tt.want {
				t.Errorf("SatSub(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSatMul(t *testing.T) {
	tests := []struct {
		name string
		a, b uint64
		want uint64
	}{
		{"zero times anything", 0, MaxUint64, 0},
		{"small values", 7, 6, 42},
		{"overflow saturates", 1 << 33, 1 << 33, MaxUint64},
		{"max times one", MaxUint64, 1, MaxUint64},
		{"max times two saturates", MaxUint64, 2, MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SatMul(tt.a, tt.b); got != tt.want {
				t.Errorf("SatMul(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestClampUint64(t *testing.T) {
	fits := uint256.NewInt(12345)
	if got := ClampUint64(fits); got != 12345 {
		t.Errorf("ClampUint64(12345) = %d, want 12345", got)
	}

	max := uint256.NewInt(MaxUint64)
	if got := ClampUint64(max); got != MaxUint64 {
		t.Errorf("ClampUint64(MaxUint64) = %d, want MaxUint64", got)
	}

	over := new(uint256.Int).AddUint64(uint256.NewInt(MaxUint64), 1)
	if got := ClampUint64(over); got != MaxUint64 {
		t.Errorf("ClampUint64(2^64) = %d, want MaxUint64", got)
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		name     string
		num, den uint64
		want     uint64
	}{
		{"exact division", 10, 5, 2},
		{"rounds up", 10, 3, 4},
		{"one remainder", 7, 2, 4},
		{"zero numerator", 0, 9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var z uint256.Int
			CeilDiv(&z, uint256.NewInt(tt.num), uint256.NewInt(tt.den))
			if !z.IsUint64() || z.Uint64() != tt.want {
				t.Errorf("CeilDiv(%d, %d) = %s, want %d", tt.num, tt.den, z.String(), tt.want)
			}
		})
	}

	t.Run("zero denominator saturates", func(t *testing.T) {
		var z uint256.Int
		CeilDiv(&z, uint256.NewInt(1), uint256.NewInt(0))
		if ClampUint64(&z) != MaxUint64 {
			t.Errorf("CeilDiv by zero = %s, want saturated", z.String())
		}
	})
}

func TestMinMax(t *testing.T) {
	if got := Min(3, 9); got != 3 {
		t.Errorf("Min(3, 9) = %d, want 3", got)
	}
	if got := Min(9, 3); got != 3 {
		t.Errorf("Min(9, 3) = %d, want 3", got)
	}
	if got := Max(3, 9); got != 9 {
		t.Errorf("Max(3, 9) = %d, want 9", got)
	}
	if got := Max(9, 3); got != 9 {
		t.Errorf("Max(9, 3) = %d, want 9", got)
	}
}
