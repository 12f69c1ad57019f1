package geom

import (
	"math"
	"testing"

	"github.com/fogleman/fauxgl"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestVecInterop(t *testing.T) {
	for _, v := range sampleVecs {
		if got := Vec3FromR3(v.R3()); got != v {
			t.Errorf("r3 round trip: got %v. want %v", got, v)
		}
		if got := Vec3FromMS3(v.MS3()); got != v {
			t.Errorf("ms3 round trip: got %v. want %v", got, v)
		}
		if got := Vec3FromFauxgl(v.Fauxgl()); got != v {
			t.Errorf("fauxgl round trip: got %v. want %v", got, v)
		}
		v2 := v.Vec2()
		if got := Vec2FromR2(v2.R2()); got != v2 {
			t.Errorf("r2 round trip: got %v. want %v", got, v2)
		}
		if got := Vec2FromMS2(v2.MS2()); got != v2 {
			t.Errorf("ms2 round trip: got %v. want %v", got, v2)
		}
	}
	a, b := Vec3{1, 2, 3}, Vec3{-4, 0.5, 2}
	if got, want := a.Cross(b), Vec3FromR3(r3.Cross(a.R3(), b.R3())); !got.Equal(want) {
		t.Errorf("cross: got %v. want %v (gonum)", got, want)
	}
	if got, want := a.Cross(b), Vec3FromMS3(ms3.Cross(a.MS3(), b.MS3())); !got.Equal(want) {
		t.Errorf("cross: got %v. want %v (ms3)", got, want)
	}
	if got, want := a.Len(), r3.Norm(a.R3()); !closeTo(got, float32(want), 1e-5) {
		t.Errorf("len: got %v. want %v (gonum)", got, want)
	}
	p, q := Vec2{3, -1}, Vec2{0.5, 2}
	if got, want := p.Cross(q), r2.Cross(p.R2(), q.R2()); !closeTo(got, float32(want), 1e-6) {
		t.Errorf("2D cross: got %v. want %v (gonum)", got, want)
	}
}

func TestQuatInterop(t *testing.T) {
	for _, axis := range sampleAxes {
		for _, angle := range sampleAngles {
			q := FromAxialRotation(axis, angle)
			if got := QuatFromNumber(q.Number()); got != q {
				t.Errorf("quat.Number round trip: got %v. want %v", got, q)
			}
			// gonum rotations are counterclockwise.
			want := QuatFromRotation(r3.NewRotation(float64(-angle), axis.R3()))
			if !q.EqualWithin(want, 1e-5) {
				t.Errorf("axial rotation (%v, %v): got %v. want %v (gonum)", axis, angle, q, want)
			}
			for _, v := range sampleVecs {
				got := q.Rotate(v)
				want := Vec3FromR3(q.Rotation().Rotate(v.R3()))
				if !got.EqualWithin(want, 1e-4*(1+v.Len())) {
					t.Errorf("rotate %v by %v: got %v. want %v (gonum)", v, q, got, want)
				}
			}
		}
	}
}

func TestMat4Fauxgl(t *testing.T) {
	for _, m := range sampleMats {
		if got := Mat4FromFauxgl(m.Fauxgl()); got != m {
			t.Errorf("fauxgl round trip: got %v. want %v", got, m)
		}
		f := m.Fauxgl()
		if got, want := m.Det(), f.Determinant(); math.Abs(float64(got)-want) > 1e-3*math.Abs(want) {
			t.Errorf("determinant: got %v. want %v (fauxgl)", got, want)
		}
		if got, want := m.Inverse(), Mat4FromFauxgl(f.Inverse()); !got.EqualWithin(want, 1e-4) {
			t.Errorf("inverse: got %v. want %v (fauxgl)", got, want)
		}
		for _, v := range sampleVecs {
			got := m.TransformVec3(v)
			want := Vec3FromFauxgl(f.MulPosition(v.Fauxgl()))
			if !got.EqualWithin(want, 1e-4*(1+v.Len())) {
				t.Errorf("transform %v: got %v. want %v (fauxgl)", v, got, want)
			}
		}
	}
	if got, want := FromTranslation(1, -2, 3), Mat4FromFauxgl(fauxgl.Translate(fauxgl.V(1, -2, 3))); got != want {
		t.Errorf("translation: got %v. want %v (fauxgl)", got, want)
	}
	if got, want := FromScale(2, 3, 4), Mat4FromFauxgl(fauxgl.Scale(fauxgl.V(2, 3, 4))); got != want {
		t.Errorf("scale: got %v. want %v (fauxgl)", got, want)
	}
	// Row vectors compose left to right, fauxgl column vectors right to left.
	a, b := FromScale(2, 3, 4), FromTranslation(1, -2, 3)
	want := Mat4FromFauxgl(b.Fauxgl().Mul(a.Fauxgl()))
	if got := a.Mul(b); !got.Equal(want) {
		t.Errorf("compose: got %v. want %v (fauxgl)", got, want)
	}
}

func TestMat4Dense(t *testing.T) {
	for _, m := range sampleMats {
		if got := Mat4FromDense(m.Dense()); got != m {
			t.Errorf("dense round trip: got %v. want %v", got, m)
		}
		if got, want := m.Dense().At(3, 0), float64(m.RowD.X); got != want {
			t.Errorf("dense layout: got %v. want %v", got, want)
		}
	}
}
