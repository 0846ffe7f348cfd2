package cordic

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/lixenwraith/cordic/fixed"
)

// TestConvergence verifies the approximation tracks the stdlib reference
// across the principal range at a high iteration count.
func TestConvergence(t *testing.T) {
	const iters = 1000
	const tolerance = 1e-3

	for i := -314; i <= 314; i += 7 {
		theta := float64(i) / 100.0

		c, s, err := SinCos(theta, iters)
		if err != nil {
			t.Fatalf("SinCos(%g, %d): %v", theta, iters, err)
		}

		if diff := math.Abs(c - math.Cos(theta)); diff > tolerance {
			t.Errorf("cos(%g): got %g, want %g (diff %g)", theta, c, math.Cos(theta), diff)
		}
		if diff := math.Abs(s - math.Sin(theta)); diff > tolerance {
			t.Errorf("sin(%g): got %g, want %g (diff %g)", theta, s, math.Sin(theta), diff)
		}
	}
}

// TestQ32Convergence runs the same check on the fixed-point backend. The
// tolerance is looser: every micro-rotation rounds to 2^-32.
func TestQ32Convergence(t *testing.T) {
	const iters = 32
	const tolerance = 1e-4

	for i := -300; i <= 300; i += 25 {
		theta := float64(i) / 100.0

		c, s, err := SinCosQ32(theta, iters)
		if err != nil {
			t.Fatalf("SinCosQ32(%g, %d): %v", theta, iters, err)
		}

		if diff := math.Abs(c - math.Cos(theta)); diff > tolerance {
			t.Errorf("cos(%g): got %g, want %g (diff %g)", theta, c, math.Cos(theta), diff)
		}
		if diff := math.Abs(s - math.Sin(theta)); diff > tolerance {
			t.Errorf("sin(%g): got %g, want %g (diff %g)", theta, s, math.Sin(theta), diff)
		}
	}
}

// TestGainFactor checks 0 < K <= 1, non-increasing in the iteration count,
// converging toward the CORDIC limit constant. K(1) is the empty product 1;
// every later count multiplies in at least one term below 1.
func TestGainFactor(t *testing.T) {
	const limit = 0.6072529350088812

	prev := 1.0
	for n := 1; n <= 60; n++ {
		k := buildTables(n).gain

		if k <= 0 || k > 1 {
			t.Errorf("K(%d) = %g, want in (0, 1]", n, k)
		}
		if n >= 2 && k >= 1 {
			t.Errorf("K(%d) = %g, want < 1", n, k)
		}
		if k > prev {
			t.Errorf("K(%d) = %g increased from K(%d) = %g", n, k, n-1, prev)
		}
		prev = k
	}

	if diff := math.Abs(prev - limit); diff > 1e-9 {
		t.Errorf("K(60) = %g, want within 1e-9 of %g", prev, limit)
	}
}

// TestAngleTable checks the table is strictly decreasing toward zero,
// starting at atan(1) = π/4, and capped.
func TestAngleTable(t *testing.T) {
	tab := buildTables(40)

	if got, want := tab.angles[0], math.Pi/4; got != want {
		t.Errorf("angles[0] = %g, want %g", got, want)
	}
	for i := 0; i+1 < len(tab.angles); i++ {
		if tab.angles[i+1] >= tab.angles[i] {
			t.Errorf("angles[%d] = %g not below angles[%d] = %g",
				i+1, tab.angles[i+1], i, tab.angles[i])
		}
		if tab.angles[i+1] < 0 {
			t.Errorf("angles[%d] = %g is negative", i+1, tab.angles[i+1])
		}
	}
	if last := tab.angles[len(tab.angles)-1]; last > 1e-11 {
		t.Errorf("last angle %g has not decayed toward zero", last)
	}

	if got := len(buildTables(500).angles); got != tableCap {
		t.Errorf("table for 500 iterations has %d entries, want cap %d", got, tableCap)
	}
	if got := len(tab.angles); got != 41 {
		t.Errorf("table for 40 iterations has %d entries, want 41", got)
	}
}

// TestZeroAngle verifies cordic(0, N) approaches (1, 0) as N grows.
func TestZeroAngle(t *testing.T) {
	tests := []struct {
		iters     int
		tolerance float64
	}{
		{10, 0.01},
		{20, 1e-4},
		{1000, 1e-6},
	}

	for _, tt := range tests {
		c, s, err := SinCos(0, tt.iters)
		if err != nil {
			t.Fatalf("SinCos(0, %d): %v", tt.iters, err)
		}
		if diff := math.Abs(c - 1); diff > tt.tolerance {
			t.Errorf("N=%d: cos(0) = %g, want 1 ± %g", tt.iters, c, tt.tolerance)
		}
		if diff := math.Abs(s); diff > tt.tolerance {
			t.Errorf("N=%d: sin(0) = %g, want 0 ± %g", tt.iters, s, tt.tolerance)
		}
	}
}

// TestPeriodicity verifies theta and theta+2π reduce to the same result.
func TestPeriodicity(t *testing.T) {
	const iters = 40
	const tolerance = 1e-9

	for _, theta := range []float64{0.5, 1.0, 2.5, -1.3} {
		c1, s1, err := SinCos(theta, iters)
		if err != nil {
			t.Fatalf("SinCos(%g): %v", theta, err)
		}
		c2, s2, err := SinCos(theta+2*math.Pi, iters)
		if err != nil {
			t.Fatalf("SinCos(%g): %v", theta+2*math.Pi, err)
		}

		if diff := math.Abs(c1 - c2); diff > tolerance {
			t.Errorf("cos(%g) vs cos(+2π): diff %g", theta, diff)
		}
		if diff := math.Abs(s1 - s2); diff > tolerance {
			t.Errorf("sin(%g) vs sin(+2π): diff %g", theta, diff)
		}
	}
}

// TestMagnitudeNearUnity verifies the gain correction restores the result
// vector to (near) unit length.
func TestMagnitudeNearUnity(t *testing.T) {
	tests := []struct {
		iters     int
		tolerance float64
	}{
		{10, 1e-4},
		{30, 1e-8},
	}

	for _, tt := range tests {
		for _, theta := range []float64{0.1, 0.9, 1.5, 2.8, -2.2} {
			c, s, err := SinCos(theta, tt.iters)
			if err != nil {
				t.Fatalf("SinCos(%g, %d): %v", theta, tt.iters, err)
			}
			mag := c*c + s*s
			if diff := math.Abs(mag - 1); diff > tt.tolerance {
				t.Errorf("N=%d theta=%g: |v|² = %g, want 1 ± %g", tt.iters, theta, mag, tt.tolerance)
			}
		}
	}
}

// TestScenarios pins the end-to-end reference points.
func TestScenarios(t *testing.T) {
	tests := []struct {
		name      string
		theta     float64
		iters     int
		wantCos   float64
		wantSin   float64
		tolerance float64
	}{
		{"zero", 0.0, 1000, 1.0, 0.0, 0.001},
		{"half pi", 1.5707963, 1000, 0.0, 1.0, 0.01},
		{"pi", 3.14159265, 1000, -1.0, 0.0, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s, err := SinCos(tt.theta, tt.iters)
			if err != nil {
				t.Fatalf("SinCos(%g, %d): %v", tt.theta, tt.iters, err)
			}
			if diff := math.Abs(c - tt.wantCos); diff > tt.tolerance {
				t.Errorf("cos = %g, want %g ± %g", c, tt.wantCos, tt.tolerance)
			}
			if diff := math.Abs(s - tt.wantSin); diff > tt.tolerance {
				t.Errorf("sin = %g, want %g ± %g", s, tt.wantSin, tt.tolerance)
			}
		})
	}
}

// TestSingleIteration pins the deliberately coarse one-rotation result:
// one positive rotation of the (1, 0) start by factor 1 gives (1, 1), and
// the gain for a single iteration is the empty product 1.
func TestSingleIteration(t *testing.T) {
	c, s, err := SinCos(0.5, 1)
	if err != nil {
		t.Fatalf("SinCos(0.5, 1): %v", err)
	}
	if math.Abs(c-1) > 1e-12 || math.Abs(s-1) > 1e-12 {
		t.Errorf("SinCos(0.5, 1) = (%g, %g), want (1, 1)", c, s)
	}
}

// TestTableFallback verifies iteration counts past the table cap still
// converge via the step-halving continuation.
func TestTableFallback(t *testing.T) {
	const iters = tableCap + 16

	c, s, err := SinCos(1.0, iters)
	if err != nil {
		t.Fatalf("SinCos(1.0, %d): %v", iters, err)
	}
	if diff := math.Abs(c - math.Cos(1.0)); diff > 1e-6 {
		t.Errorf("cos(1.0) with fallback: diff %g", diff)
	}
	if diff := math.Abs(s - math.Sin(1.0)); diff > 1e-6 {
		t.Errorf("sin(1.0) with fallback: diff %g", diff)
	}
}

// TestInvalidInputs verifies the precondition errors.
func TestInvalidInputs(t *testing.T) {
	for _, iters := range []int{0, -1, -100} {
		if _, _, err := SinCos(1.0, iters); !errors.Is(err, ErrInvalidIterations) {
			t.Errorf("SinCos(1.0, %d): got %v, want ErrInvalidIterations", iters, err)
		}
	}

	for _, theta := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, _, err := SinCos(theta, 10); !errors.Is(err, ErrNonFiniteAngle) {
			t.Errorf("SinCos(%g, 10): got %v, want ErrNonFiniteAngle", theta, err)
		}
	}

	// Same checks through the generic entry point on the fixed backend
	if _, _, err := Rotate(fixed.Q(1.0), 0); !errors.Is(err, ErrInvalidIterations) {
		t.Errorf("Rotate(Q32, 0): got %v, want ErrInvalidIterations", err)
	}
}

// TestTableCacheReuse verifies the same table set is shared across calls,
// including concurrent first access.
func TestTableCacheReuse(t *testing.T) {
	a := tablesFor(77)
	b := tablesFor(77)
	if a != b {
		t.Error("Expected cached table set to be reused for the same count")
	}

	var wg sync.WaitGroup
	results := make([]*tables, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = tablesFor(78)
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Error("Expected concurrent callers to share one table set")
			break
		}
	}
}
