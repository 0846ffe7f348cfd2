// Package cordic computes sine and cosine with the CORDIC shift-and-add
// iteration: per step one sign test, two multiplications by a signed power
// of two, and one table subtraction, with a single gain multiplication at
// the end to restore unit magnitude. Circular rotation mode only.
//
// The engine is generic over fixed.Real, so the same loop runs on the
// float64-backed fixed.Float and the binary fixed-point fixed.Q32.
package cordic

import (
	"errors"
	"math"

	"github.com/lixenwraith/cordic/fixed"
)

var (
	// ErrInvalidIterations rejects iteration counts below 1. A zero count
	// would reference an empty angle table; it is a caller error, not a
	// degenerate success.
	ErrInvalidIterations = errors.New("cordic: iterations must be at least 1")

	// ErrNonFiniteAngle rejects NaN and infinite inputs before
	// normalization, where a non-finite remainder would poison every later
	// comparison.
	ErrNonFiniteAngle = errors.New("cordic: angle must be finite")
)

// Rotate runs iters micro-rotations and returns the scaled (cos, sin)
// approximation of theta. The angle is first reduced modulo 2π
// (sign-preserving) and folded into [-π/2, π/2], so any finite input
// converges for iteration counts where the algorithm converges at all.
//
// Convention: the loop runs exactly iters times, i = 0..iters-1, consuming
// angle table entry i on iteration i from a table built to iters+1 entries
// (capped at tableCap; past the cap the step angle is halved each
// iteration). The gain factor multiplies iters-1 terms.
//
// Accuracy grows with iters and is bounded by the representation; iters of
// 1 or 2 run normally and return the correspondingly coarse result.
func Rotate[T fixed.Real[T]](theta T, iters int) (cosApprox, sinApprox T, err error) {
	var zero T
	if iters < 1 {
		return zero, zero, ErrInvalidIterations
	}
	if f := theta.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
		return zero, zero, ErrNonFiniteAngle
	}

	t := tablesFor(iters)

	var (
		one    = zero.FromFloat(1)
		negOne = zero.FromFloat(-1)
		two    = zero.FromFloat(2)
		pi     = zero.FromFloat(math.Pi)
		halfPi = zero.FromFloat(math.Pi / 2)
		twoPi  = zero.FromFloat(2 * math.Pi)
	)

	// Wrap into the principal range. The remainder keeps the dividend's
	// sign, so negative angles stay negative and the per-step sign test
	// drives the rotation the right way.
	theta = theta.Rem(twoPi)
	if pi.Less(theta) {
		theta = theta.Sub(twoPi)
	} else if theta.Less(negOne.Mul(pi)) {
		theta = theta.Add(twoPi)
	}

	// The micro-rotations can only reach |theta| <= Σ atan(2^-i) ≈ 1.7433,
	// which does not cover all of [-π, π]. Fold the outer quadrants through
	// the half-turn identity cos(θ∓π) = -cos θ, sin(θ∓π) = -sin θ.
	flip := false
	if halfPi.Less(theta) {
		theta = theta.Sub(pi)
		flip = true
	} else if theta.Less(negOne.Mul(halfPi)) {
		theta = theta.Add(pi)
		flip = true
	}

	var (
		stepSize = one                         // 2^-i
		step     = zero.FromFloat(t.angles[0]) // atan(2^-i)
		cosAcc   = one
		sinAcc   = zero
	)

	for i := 0; i < iters; i++ {
		// Zero residual rotates positive, so the test is strictly-less.
		sigmaNeg := theta.Less(zero)

		factor := stepSize
		if sigmaNeg {
			factor = negOne.Mul(stepSize)
		}

		// Linearized rotation: [1, -factor; factor, 1] applied to the
		// accumulator. The per-step magnitude growth is repaid once by the
		// gain multiplication after the loop.
		cosAcc, sinAcc = cosAcc.Sub(factor.Mul(sinAcc)), factor.Mul(cosAcc).Add(sinAcc)

		if sigmaNeg {
			theta = theta.Add(step)
		} else {
			theta = theta.Sub(step)
		}

		stepSize = stepSize.Div(two)
		if i+1 < len(t.angles) {
			step = zero.FromFloat(t.angles[i+1])
		} else {
			// Past the precomputed table atan(2^-i) and 2^-i agree to full
			// precision, so halving the previous step continues the sequence.
			step = step.Div(two)
		}
	}

	gain := zero.FromFloat(t.gain)
	cosAcc, sinAcc = cosAcc.Mul(gain), sinAcc.Mul(gain)
	if flip {
		cosAcc, sinAcc = negOne.Mul(cosAcc), negOne.Mul(sinAcc)
	}
	return cosAcc, sinAcc, nil
}

// SinCos evaluates on the float64-backed representation.
func SinCos(theta float64, iters int) (cos, sin float64, err error) {
	c, s, err := Rotate(fixed.F(theta), iters)
	if err != nil {
		return 0, 0, err
	}
	return c.Float(), s.Float(), nil
}

// SinCosQ32 evaluates on the Q32.32 fixed-point representation.
func SinCosQ32(theta float64, iters int) (cos, sin float64, err error) {
	c, s, err := Rotate(fixed.Q(theta), iters)
	if err != nil {
		return 0, 0, err
	}
	return c.Float(), s.Float(), nil
}
