package geom

import "github.com/chewxy/math32"

// Vec4 is a 4D vector, 16 bytes in memory. It doubles as the row
// type of Mat4.
type Vec4 struct {
	X, Y, Z, W float32
}

var (
	Vec4Zero  = Vec4{}
	Vec4One   = Vec4{1, 1, 1, 1}
	Vec4UnitX = Vec4{X: 1}
	Vec4UnitY = Vec4{Y: 1}
	Vec4UnitZ = Vec4{Z: 1}
	Vec4UnitW = Vec4{W: 1}
)

func (v Vec4) Add(b Vec4) Vec4 { return Vec4{v.X + b.X, v.Y + b.Y, v.Z + b.Z, v.W + b.W} }

func (v Vec4) Sub(b Vec4) Vec4 { return Vec4{v.X - b.X, v.Y - b.Y, v.Z - b.Z, v.W - b.W} }

func (v Vec4) Scale(s float32) Vec4 { return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

func (v Vec4) Div(s float32) Vec4 { return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s} }

// ScalarDiv returns the vector with components s/v.X, s/v.Y, s/v.Z, s/v.W.
func (v Vec4) ScalarDiv(s float32) Vec4 { return Vec4{s / v.X, s / v.Y, s / v.Z, s / v.W} }

func (v Vec4) Neg() Vec4 { return Vec4{-v.X, -v.Y, -v.Z, -v.W} }

func (v Vec4) Reciprocal() Vec4 { return v.ScalarDiv(1) }

func (v Vec4) MulElem(b Vec4) Vec4 { return Vec4{v.X * b.X, v.Y * b.Y, v.Z * b.Z, v.W * b.W} }

func (v Vec4) DivElem(b Vec4) Vec4 { return Vec4{v.X / b.X, v.Y / b.Y, v.Z / b.Z, v.W / b.W} }

func (v Vec4) Dot(b Vec4) float32 { return v.X*b.X + v.Y*b.Y + v.Z*b.Z + v.W*b.W }

// Cross returns the 3D cross product of the XYZ parts of v and b.
// W is ignored and the result's W is zero.
func (v Vec4) Cross(b Vec4) Vec4 {
	return v.Vec3().Cross(b.Vec3()).Vec4(0)
}

func (v Vec4) LenSq() float32 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W }

// Len returns the euclidean length of v, exactly 1 for unit vectors.
func (v Vec4) Len() float32 {
	if v.IsUnit() {
		return 1
	}
	return math32.Sqrt(v.LenSq())
}

func (v Vec4) IsUnit() bool { return v.IsUnitWithin(Tolerance()) }

func (v Vec4) IsUnitWithin(eps float32) bool {
	mustTolerance(eps)
	return within(v.LenSq(), 1, eps)
}

// Unit returns v scaled to unit length. Unit panics if v is the zero vector.
func (v Vec4) Unit() Vec4 {
	if v == (Vec4{}) {
		panic("geom: Unit of zero Vec4")
	}
	if v.IsUnit() {
		return v
	}
	return v.Div(v.Len())
}

func (v Vec4) WithLen(l float32) Vec4 { return v.Unit().Scale(l) }

// ClampLen returns v with its length clamped to max.
func (v Vec4) ClampLen(max float32) Vec4 {
	if v.LenSq() <= max*max {
		return v
	}
	return v.WithLen(max)
}

// AngleTo returns the angle between v and b in radians. It panics if
// either vector is zero.
func (v Vec4) AngleTo(b Vec4) float32 {
	if v == (Vec4{}) || b == (Vec4{}) {
		panic("geom: angle with zero Vec4")
	}
	return math32.Acos(Clamp(v.Unit().Dot(b.Unit()), -1, 1))
}

// ProjectedOnto returns the projection of v onto axis. It panics if
// axis is the zero vector.
func (v Vec4) ProjectedOnto(axis Vec4) Vec4 {
	if axis == (Vec4{}) {
		panic("geom: projection onto zero Vec4")
	}
	n := axis.Unit()
	return n.Scale(v.Dot(n))
}

func (v Vec4) DistanceTo(b Vec4) float32 { return b.Sub(v).Len() }

func (v Vec4) DistanceSqTo(b Vec4) float32 { return b.Sub(v).LenSq() }

func (v Vec4) Lerp(b Vec4, t float32) Vec4 {
	return Vec4{Lerp(v.X, b.X, t), Lerp(v.Y, b.Y, t), Lerp(v.Z, b.Z, t), Lerp(v.W, b.W, t)}
}

func (v Vec4) Abs() Vec4 {
	return Vec4{math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z), math32.Abs(v.W)}
}

// Min returns the component-wise minimum of v and b.
func (v Vec4) Min(b Vec4) Vec4 {
	return Vec4{math32.Min(v.X, b.X), math32.Min(v.Y, b.Y), math32.Min(v.Z, b.Z), math32.Min(v.W, b.W)}
}

// Max returns the component-wise maximum of v and b.
func (v Vec4) Max(b Vec4) Vec4 {
	return Vec4{math32.Max(v.X, b.X), math32.Max(v.Y, b.Y), math32.Max(v.Z, b.Z), math32.Max(v.W, b.W)}
}

// Clamp clamps each component of v between lo and hi, assume lo <= hi.
func (v Vec4) Clamp(lo, hi Vec4) Vec4 {
	return Vec4{
		Clamp(v.X, lo.X, hi.X), Clamp(v.Y, lo.Y, hi.Y),
		Clamp(v.Z, lo.Z, hi.Z), Clamp(v.W, lo.W, hi.W),
	}
}

func (v Vec4) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsNaN(v.Z) || math32.IsNaN(v.W)
}

// IsInf returns true if any component is infinite.
func (v Vec4) IsInf() bool {
	return math32.IsInf(v.X, 0) || math32.IsInf(v.Y, 0) || math32.IsInf(v.Z, 0) || math32.IsInf(v.W, 0)
}

// Elem returns the component at index i (0=X, 1=Y, 2=Z, 3=W).
func (v Vec4) Elem(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("geom: Vec4 index out of range")
}

func (v Vec4) Swizzle2(i, j int) Vec2 { return Vec2{v.Elem(i), v.Elem(j)} }

func (v Vec4) Swizzle3(i, j, k int) Vec3 { return Vec3{v.Elem(i), v.Elem(j), v.Elem(k)} }

func (v Vec4) Swizzle4(i, j, k, l int) Vec4 {
	return Vec4{v.Elem(i), v.Elem(j), v.Elem(k), v.Elem(l)}
}

func (v Vec4) WithX(x float32) Vec4 {
	v.X = x
	return v
}

func (v Vec4) WithY(y float32) Vec4 {
	v.Y = y
	return v
}

func (v Vec4) WithZ(z float32) Vec4 {
	v.Z = z
	return v
}

func (v Vec4) WithW(w float32) Vec4 {
	v.W = w
	return v
}

func (v Vec4) Vec2() Vec2 { return Vec2{v.X, v.Y} }

func (v Vec4) Vec3() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// EqualExact compares components with ==, so -0 equals 0 and NaN never
// equals itself.
func (v Vec4) EqualExact(b Vec4) bool { return v == b }

// EqualWithin reports whether every component of v differs from b by less
// than eps. It panics if eps is negative.
func (v Vec4) EqualWithin(b Vec4, eps float32) bool {
	mustTolerance(eps)
	return within(v.X, b.X, eps) && within(v.Y, b.Y, eps) &&
		within(v.Z, b.Z, eps) && within(v.W, b.W, eps)
}

func (v Vec4) Equal(b Vec4) bool { return v.EqualWithin(b, Tolerance()) }

func (v Vec4) Less(b Vec4) bool { return v.LenSq() < b.LenSq() }

func (v Vec4) Greater(b Vec4) bool { return v.LenSq() > b.LenSq() }

func (v Vec4) LessEqual(b Vec4) bool { return v.LenSq() <= b.LenSq() || v.Equal(b) }

func (v Vec4) GreaterEqual(b Vec4) bool { return v.LenSq() >= b.LenSq() || v.Equal(b) }
