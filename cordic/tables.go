package cordic

import (
	"math"
	"sync"
)

// tableCap bounds the precomputed angle table. Past index 63, atan(2^-i) is
// below Q32.32 resolution and indistinguishable from 2^-i in float64, so the
// rotation loop continues by halving the previous step instead.
const tableCap = 64

// tables holds the constants derived from an iteration count: the
// atan(2^-i) angle table and the cumulative gain correction. Immutable after
// build.
type tables struct {
	angles []float64 // atan(2^-i), i = 0..len-1
	gain   float64   // Π 1/sqrt(1+2^-2y), y = 0..iters-2
}

// Process-wide cache keyed by iteration count. Read-only after first build,
// so concurrent Rotate calls with the same count share one table set.
var (
	tableMu    sync.RWMutex
	tableCache = map[int]*tables{}
)

// tablesFor returns the cached table set for an iteration count, building it
// on first use.
func tablesFor(iters int) *tables {
	tableMu.RLock()
	if t, ok := tableCache[iters]; ok {
		tableMu.RUnlock()
		return t
	}
	tableMu.RUnlock()

	tableMu.Lock()
	defer tableMu.Unlock()

	// Double-check after acquiring write lock
	if t, ok := tableCache[iters]; ok {
		return t
	}

	t := buildTables(iters)
	tableCache[iters] = t
	return t
}

func buildTables(iters int) *tables {
	n := iters + 1
	if n > tableCap {
		n = tableCap
	}
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = math.Atan(math.Exp2(float64(-i)))
	}

	gain := 1.0
	for y := 0; y <= iters-2; y++ {
		gain *= 1 / math.Sqrt(1+math.Exp2(float64(-2*y)))
	}

	return &tables{angles: angles, gain: gain}
}
