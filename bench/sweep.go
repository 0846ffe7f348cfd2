// Package bench sweeps the CORDIC engine across a grid of angles and lines
// each sample up against the stdlib reference, for CSV export or storage.
package bench

import (
	"fmt"
	"math"

	"github.com/lixenwraith/cordic/cordic"
)

// Default sweep grid: 0.00..3.13 rad in 0.01 steps at 100 iterations.
const (
	DefaultStart      = 0.0
	DefaultEnd        = 3.13
	DefaultStep       = 0.01
	DefaultIterations = 100
)

// Sample is one grid point: both approximations next to the stdlib
// reference, plus the absolute errors.
type Sample struct {
	Theta     float64 `db:"theta"`
	CordicCos float64 `db:"cordic_cos"`
	StdCos    float64 `db:"std_cos"`
	CosErr    float64 `db:"cos_err"`
	CordicSin float64 `db:"cordic_sin"`
	StdSin    float64 `db:"std_sin"`
	SinErr    float64 `db:"sin_err"`
}

// Sweep describes an evaluation grid.
type Sweep struct {
	Start      float64
	End        float64
	Step       float64
	Iterations int
}

// Default returns the standard comparison grid.
func Default() Sweep {
	return Sweep{
		Start:      DefaultStart,
		End:        DefaultEnd,
		Step:       DefaultStep,
		Iterations: DefaultIterations,
	}
}

// Run evaluates every grid point. Thetas are generated as Start + i*Step so
// the step error does not accumulate across the sweep.
func (s Sweep) Run() ([]Sample, error) {
	if s.Step <= 0 {
		return nil, fmt.Errorf("bench: step must be positive, got %g", s.Step)
	}
	if s.End < s.Start {
		return nil, fmt.Errorf("bench: end %g before start %g", s.End, s.Start)
	}

	n := int(math.Floor((s.End-s.Start)/s.Step+0.5)) + 1
	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		theta := s.Start + float64(i)*s.Step

		c, sn, err := cordic.SinCos(theta, s.Iterations)
		if err != nil {
			return nil, fmt.Errorf("bench: theta %g: %w", theta, err)
		}

		samples = append(samples, Sample{
			Theta:     theta,
			CordicCos: c,
			StdCos:    math.Cos(theta),
			CosErr:    math.Abs(c - math.Cos(theta)),
			CordicSin: sn,
			StdSin:    math.Sin(theta),
			SinErr:    math.Abs(sn - math.Sin(theta)),
		})
	}
	return samples, nil
}
