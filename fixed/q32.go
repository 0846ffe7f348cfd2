package fixed

import (
	"math"
	"math/bits"
	"strconv"
)

// Q32.32 signed fixed point: 32 integer bits, 32 fractional bits in an
// int64. Resolution is 2^-32 (~2.3e-10), range ±2^31. Plenty for angles in
// [-2π, 2π] and unit-magnitude vector components.
const (
	q32Shift = 32
	q32Scale = 1 << q32Shift
)

// Q32 is the binary fixed-point scalar. Multiplication and division run
// through 128-bit intermediates and saturate instead of wrapping.
type Q32 int64

// Q converts a float64 to Q32.32.
func Q(v float64) Q32 { return Q32(v * q32Scale) }

func (q Q32) Add(o Q32) Q32 { return q + o }
func (q Q32) Sub(o Q32) Q32 { return q - o }

func (q Q32) Mul(o Q32) Q32 {
	if q == 0 || o == 0 {
		return 0
	}
	negative := (q < 0) != (o < 0)
	ua, ub := uint64(q), uint64(o)
	if q < 0 {
		ua = uint64(-q)
	}
	if o < 0 {
		ub = uint64(-o)
	}

	// Q32.32 * Q32.32 = Q64.64, shift right 32 for Q32.32
	hi, lo := bits.Mul64(ua, ub)
	result := Q32((hi << 32) | (lo >> 32))

	if negative {
		return -result
	}
	return result
}

func (q Q32) Div(o Q32) Q32 {
	if o == 0 {
		// No NaN in this representation; saturate toward the dividend's sign.
		if q < 0 {
			return math.MinInt64
		}
		if q > 0 {
			return math.MaxInt64
		}
		return 0
	}
	negative := (q < 0) != (o < 0)
	ua, ub := uint64(q), uint64(o)
	if q < 0 {
		ua = uint64(-q)
	}
	if o < 0 {
		ub = uint64(-o)
	}

	// a << 32 as 128-bit: hi = a >> 32, lo = a << 32
	hi := ua >> 32
	lo := ua << 32

	// Quotient would not fit in 64 bits; saturate
	if hi >= ub {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	quo, _ := bits.Div64(hi, lo, ub)
	if quo > math.MaxInt64 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	if negative {
		return -Q32(quo)
	}
	return Q32(quo)
}

// Rem is the fixed-point remainder. Raw integer remainder of the raw values
// is exactly the scaled remainder, and Go's % already takes the sign of the
// dividend, which is the convention angle normalization depends on.
func (q Q32) Rem(o Q32) Q32 {
	if o == 0 {
		return 0
	}
	return q % o
}

func (q Q32) Less(o Q32) bool { return q < o }

func (q Q32) FromFloat(v float64) Q32 { return Q(v) }

func (q Q32) Float() float64 { return float64(q) / q32Scale }

func (q Q32) String() string {
	return strconv.FormatFloat(q.Float(), 'f', -1, 64)
}
