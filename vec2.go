package geom

import "github.com/chewxy/math32"

// Vec2 is a 2D vector. Its memory layout is 8 bytes with X and Y at
// offsets 0 and 4.
type Vec2 struct {
	X, Y float32
}

var (
	Vec2Zero  = Vec2{}
	Vec2One   = Vec2{1, 1}
	Vec2Up    = Vec2{Y: 1}
	Vec2Down  = Vec2{Y: -1}
	Vec2Left  = Vec2{X: -1}
	Vec2Right = Vec2{X: 1}
)

func (v Vec2) Add(b Vec2) Vec2 { return Vec2{v.X + b.X, v.Y + b.Y} }

func (v Vec2) Sub(b Vec2) Vec2 { return Vec2{v.X - b.X, v.Y - b.Y} }

func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Div(s float32) Vec2 { return Vec2{v.X / s, v.Y / s} }

// ScalarDiv returns the vector with components s/v.X, s/v.Y.
func (v Vec2) ScalarDiv(s float32) Vec2 { return Vec2{s / v.X, s / v.Y} }

func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

func (v Vec2) Reciprocal() Vec2 { return v.ScalarDiv(1) }

func (v Vec2) MulElem(b Vec2) Vec2 { return Vec2{v.X * b.X, v.Y * b.Y} }

func (v Vec2) DivElem(b Vec2) Vec2 { return Vec2{v.X / b.X, v.Y / b.Y} }

func (v Vec2) Dot(b Vec2) float32 { return v.X*b.X + v.Y*b.Y }

// Cross returns the signed area of the parallelogram spanned by v and b.
// Unlike the 3D and 4D cross products the result is a scalar.
func (v Vec2) Cross(b Vec2) float32 { return v.X*b.Y - v.Y*b.X }

func (v Vec2) LenSq() float32 { return v.X*v.X + v.Y*v.Y }

// Len returns the euclidean length of v, exactly 1 for unit vectors.
func (v Vec2) Len() float32 {
	if v.IsUnit() {
		return 1
	}
	return math32.Sqrt(v.LenSq())
}

func (v Vec2) IsUnit() bool { return v.IsUnitWithin(Tolerance()) }

func (v Vec2) IsUnitWithin(eps float32) bool {
	mustTolerance(eps)
	return within(v.LenSq(), 1, eps)
}

// Unit returns v scaled to unit length. Unit panics if v is the zero vector.
func (v Vec2) Unit() Vec2 {
	if v == (Vec2{}) {
		panic("geom: Unit of zero Vec2")
	}
	if v.IsUnit() {
		return v
	}
	return v.Div(v.Len())
}

func (v Vec2) WithLen(l float32) Vec2 { return v.Unit().Scale(l) }

func (v Vec2) ClampLen(max float32) Vec2 {
	if v.LenSq() <= max*max {
		return v
	}
	return v.WithLen(max)
}

// AngleTo returns the unsigned angle between v and b in radians.
// It panics if either vector is zero.
func (v Vec2) AngleTo(b Vec2) float32 {
	if v == (Vec2{}) || b == (Vec2{}) {
		panic("geom: angle with zero Vec2")
	}
	return math32.Acos(Clamp(v.Unit().Dot(b.Unit()), -1, 1))
}

// ProjectedOnto returns the projection of v onto axis. It panics if
// axis is the zero vector.
func (v Vec2) ProjectedOnto(axis Vec2) Vec2 {
	if axis == (Vec2{}) {
		panic("geom: projection onto zero Vec2")
	}
	n := axis.Unit()
	return n.Scale(v.Dot(n))
}

func (v Vec2) Reflect(normal Vec2) Vec2 {
	n := normal.Unit()
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

func (v Vec2) DistanceTo(b Vec2) float32 { return b.Sub(v).Len() }

func (v Vec2) DistanceSqTo(b Vec2) float32 { return b.Sub(v).LenSq() }

func (v Vec2) Lerp(b Vec2, t float32) Vec2 {
	return Vec2{Lerp(v.X, b.X, t), Lerp(v.Y, b.Y, t)}
}

func (v Vec2) Abs() Vec2 { return Vec2{math32.Abs(v.X), math32.Abs(v.Y)} }

func (v Vec2) Min(b Vec2) Vec2 { return Vec2{math32.Min(v.X, b.X), math32.Min(v.Y, b.Y)} }

func (v Vec2) Max(b Vec2) Vec2 { return Vec2{math32.Max(v.X, b.X), math32.Max(v.Y, b.Y)} }

func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{Clamp(v.X, lo.X, hi.X), Clamp(v.Y, lo.Y, hi.Y)}
}

func (v Vec2) IsNaN() bool { return math32.IsNaN(v.X) || math32.IsNaN(v.Y) }

func (v Vec2) IsInf() bool { return math32.IsInf(v.X, 0) || math32.IsInf(v.Y, 0) }

// Elem returns the component at index i (0=X, 1=Y).
func (v Vec2) Elem(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("geom: Vec2 index out of range")
}

func (v Vec2) Swizzle2(i, j int) Vec2 { return Vec2{v.Elem(i), v.Elem(j)} }

func (v Vec2) Swizzle3(i, j, k int) Vec3 { return Vec3{v.Elem(i), v.Elem(j), v.Elem(k)} }

func (v Vec2) Swizzle4(i, j, k, l int) Vec4 {
	return Vec4{v.Elem(i), v.Elem(j), v.Elem(k), v.Elem(l)}
}

func (v Vec2) WithX(x float32) Vec2 {
	v.X = x
	return v
}

func (v Vec2) WithY(y float32) Vec2 {
	v.Y = y
	return v
}

func (v Vec2) Vec3(z float32) Vec3 { return Vec3{v.X, v.Y, z} }

func (v Vec2) Vec4(z, w float32) Vec4 { return Vec4{v.X, v.Y, z, w} }

// EqualExact compares components with ==, so -0 equals 0 and NaN never
// equals itself. It is not a bitwise comparison.
func (v Vec2) EqualExact(b Vec2) bool { return v == b }

// EqualWithin reports whether every component of v differs from b by less
// than eps. It panics if eps is negative.
func (v Vec2) EqualWithin(b Vec2, eps float32) bool {
	mustTolerance(eps)
	return within(v.X, b.X, eps) && within(v.Y, b.Y, eps)
}

func (v Vec2) Equal(b Vec2) bool { return v.EqualWithin(b, Tolerance()) }

func (v Vec2) Less(b Vec2) bool { return v.LenSq() < b.LenSq() }

func (v Vec2) Greater(b Vec2) bool { return v.LenSq() > b.LenSq() }

func (v Vec2) LessEqual(b Vec2) bool { return v.LenSq() <= b.LenSq() || v.Equal(b) }

func (v Vec2) GreaterEqual(b Vec2) bool { return v.LenSq() >= b.LenSq() || v.Equal(b) }
