package geom

import (
	"math"
	"testing"
)

// Test helper functions shared across all test files

func assertPanics(t testing.TB, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

func closeTo(a, b, tol float32) bool {
	return math.Abs(float64(a)-float64(b)) <= math.Abs(float64(tol))
}

// sampleVecs are finite, non-zero vectors of moderate magnitude.
var sampleVecs = []Vec3{
	{1, 0, 0},
	{0.3, -1.2, 2},
	{-4, 2.5, 0.125},
	{10, 10, -10},
	{0.001, 0.5, -0.25},
}

var sampleAxes = []Vec3{
	Vec3Up,
	Vec3Right,
	Vec3Forward,
	{1, 2, 3},
	{-1, 0.5, 2},
}

var sampleAngles = []float32{0.2, -0.7, 1.3, 2.9, -2.2}
