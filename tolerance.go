package geom

import (
	"math"
	"sync/atomic"
)

// DefaultTolerance is the epsilon used by tolerance comparisons
// until SetTolerance is called.
const DefaultTolerance float32 = 1e-5

// tolerance holds the bits of the process-wide epsilon. It is accessed
// with atomic loads and stores only so writes become visible to other
// goroutines; concurrent writers race and the last one wins.
var tolerance atomic.Uint32

func init() {
	tolerance.Store(math.Float32bits(DefaultTolerance))
}

// Tolerance returns the process-wide epsilon used by Equal, IsUnit,
// IsOrthogonal and the other default-tolerance queries.
func Tolerance() float32 {
	return math.Float32frombits(tolerance.Load())
}

// SetTolerance sets the process-wide epsilon. It is meant to be called once
// at startup. SetTolerance panics if eps is negative or NaN.
func SetTolerance(eps float32) {
	mustTolerance(eps)
	tolerance.Store(math.Float32bits(eps))
}

func mustTolerance(eps float32) {
	if !(eps >= 0) {
		panic("geom: negative or NaN tolerance")
	}
}

// within reports whether |a-b| < eps.
func within(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}
