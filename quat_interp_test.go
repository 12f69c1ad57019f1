package geom

import "testing"

func TestSlerp(t *testing.T) {
	axis := Vec3{1, 2, 3}
	a := FromAxialRotation(axis, 0.2)
	b := FromAxialRotation(axis, 1.4)
	for _, test := range []struct {
		t     float32
		angle float32
	}{
		{0, 0.2},
		{0.25, 0.5},
		{0.5, 0.8},
		{1, 1.4},
	} {
		want := FromAxialRotation(axis, test.angle)
		if got := Slerp(a, b, test.t); !got.EqualWithin(want, 1e-5) {
			t.Errorf("Slerp t=%v: got %v. want %v", test.t, got, want)
		}
		// Same rotation with the opposite sign takes the same short path.
		if got := Slerp(a, b.Neg(), test.t); !got.EqualWithin(want, 1e-5) {
			t.Errorf("Slerp to -b t=%v: got %v. want %v", test.t, got, want)
		}
	}
	if got := SlerpPath(a, b.Neg(), 1, false); !got.EqualWithin(b.Neg(), 1e-5) {
		t.Errorf("long path end: got %v. want %v", got, b.Neg())
	}
	mid := SlerpPath(a, b.Neg(), 0.5, false)
	if mid.EqualWithin(FromAxialRotation(axis, 0.8), 1e-3) || mid.EqualWithin(FromAxialRotation(axis, 0.8).Neg(), 1e-3) {
		t.Errorf("long path midpoint coincides with short path: %v", mid)
	}
	if !mid.IsUnit() {
		t.Errorf("long path midpoint not unit: %v", mid)
	}
}

func TestSlerpSameRotation(t *testing.T) {
	q := FromAxialRotation(Vec3{1, 2, 3}, 0.8)
	for _, f := range []float32{0, 0.3, 0.5, 1} {
		if got := Slerp(q, q, f); !got.EqualWithin(q, 1e-5) {
			t.Errorf("Slerp(q, q, %v): got %v. want %v", f, got, q)
		}
		// -q is the same rotation, reached through the shortest path flip.
		if got := Slerp(q, q.Neg(), f); !got.EqualWithin(q, 1e-5) {
			t.Errorf("Slerp(q, -q, %v): got %v. want %v", f, got, q)
		}
	}
	assertPanics(t, "opposite unforced", func() { SlerpPath(QuatIdentity, QuatIdentity.Neg(), 0.5, false) })
}

func TestSlerpNearParallel(t *testing.T) {
	a := FromAxialRotation(Vec3Up, 0.2)
	b := FromAxialRotation(Vec3Up, 0.21)
	for _, f := range []float32{0, 0.3, 0.5, 1} {
		if got, want := Slerp(a, b, f), LerpAndNormalize(a, b, f); got != want {
			t.Errorf("t=%v: got %v. want lerp result %v", f, got, want)
		}
	}
}

func TestLerpAndNormalize(t *testing.T) {
	axis := Vec3{-1, 0.5, 2}
	a := FromAxialRotation(axis, -0.5)
	b := FromAxialRotation(axis, 0.9)
	if got := LerpAndNormalize(a, b, 0); !got.EqualWithin(a, 1e-5) {
		t.Errorf("t=0: got %v. want %v", got, a)
	}
	if got := LerpAndNormalize(a, b, 1); !got.EqualWithin(b, 1e-5) {
		t.Errorf("t=1: got %v. want %v", got, b)
	}
	// Symmetric inputs put the normalized midpoint on the slerp midpoint.
	want := FromAxialRotation(axis, 0.2)
	if got := LerpAndNormalize(a, b, 0.5); !got.EqualWithin(want, 1e-5) {
		t.Errorf("t=0.5: got %v. want %v", got, want)
	}
	if got := LerpAndNormalize(a, b.Neg(), 0.5); !got.EqualWithin(want, 1e-5) {
		t.Errorf("shortest path: got %v. want %v", got, want)
	}
	if got := LerpAndNormalizePath(a, b.Neg(), 1, false); !got.EqualWithin(b.Neg(), 1e-5) {
		t.Errorf("unforced end: got %v. want %v", got, b.Neg())
	}
	for _, f := range []float32{0.1, 0.4, 0.7} {
		if got := LerpAndNormalize(a, b, f); !got.IsUnit() {
			t.Errorf("t=%v: %v not unit", f, got)
		}
	}
	assertPanics(t, "zero start", func() { LerpAndNormalize(QuatZero, b, 0.5) })
	assertPanics(t, "zero end", func() { Slerp(a, QuatZero, 0.5) })
}
