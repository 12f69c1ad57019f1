package geom

import "github.com/chewxy/math32"

// Vec3 is a 3D vector. Its memory layout is 12 bytes with X, Y and Z
// at offsets 0, 4 and 8.
type Vec3 struct {
	X, Y, Z float32
}

// Canonical 3D vectors. Up, Right and Forward are the world axes used by
// the rotation builders.
var (
	Vec3Zero     = Vec3{}
	Vec3One      = Vec3{1, 1, 1}
	Vec3Up       = Vec3{Y: 1}
	Vec3Down     = Vec3{Y: -1}
	Vec3Left     = Vec3{X: -1}
	Vec3Right    = Vec3{X: 1}
	Vec3Forward  = Vec3{Z: 1}
	Vec3Backward = Vec3{Z: -1}
)

func (v Vec3) Add(b Vec3) Vec3 { return Vec3{v.X + b.X, v.Y + b.Y, v.Z + b.Z} }

func (v Vec3) Sub(b Vec3) Vec3 { return Vec3{v.X - b.X, v.Y - b.Y, v.Z - b.Z} }

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Div returns v divided by s.
func (v Vec3) Div(s float32) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }

// ScalarDiv returns the vector with components s/v.X, s/v.Y, s/v.Z.
func (v Vec3) ScalarDiv(s float32) Vec3 { return Vec3{s / v.X, s / v.Y, s / v.Z} }

func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Reciprocal returns the component-wise reciprocal of v.
func (v Vec3) Reciprocal() Vec3 { return v.ScalarDiv(1) }

func (v Vec3) MulElem(b Vec3) Vec3 { return Vec3{v.X * b.X, v.Y * b.Y, v.Z * b.Z} }

func (v Vec3) DivElem(b Vec3) Vec3 { return Vec3{v.X / b.X, v.Y / b.Y, v.Z / b.Z} }

func (v Vec3) Dot(b Vec3) float32 { return v.X*b.X + v.Y*b.Y + v.Z*b.Z }

func (v Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		X: v.Y*b.Z - v.Z*b.Y,
		Y: v.Z*b.X - v.X*b.Z,
		Z: v.X*b.Y - v.Y*b.X,
	}
}

func (v Vec3) LenSq() float32 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Len returns the euclidean length of v. Unit vectors report
// exactly 1 without taking a square root.
func (v Vec3) Len() float32 {
	if v.IsUnit() {
		return 1
	}
	return math32.Sqrt(v.LenSq())
}

// IsUnit reports whether v has unit length within the process tolerance.
func (v Vec3) IsUnit() bool { return v.IsUnitWithin(Tolerance()) }

func (v Vec3) IsUnitWithin(eps float32) bool {
	mustTolerance(eps)
	return within(v.LenSq(), 1, eps)
}

// Unit returns v scaled to unit length. Unit panics if v is the zero vector.
func (v Vec3) Unit() Vec3 {
	if v == (Vec3{}) {
		panic("geom: Unit of zero Vec3")
	}
	if v.IsUnit() {
		return v
	}
	return v.Div(v.Len())
}

// WithLen returns a vector pointing along v with length l. A negative
// l reverses the direction.
func (v Vec3) WithLen(l float32) Vec3 { return v.Unit().Scale(l) }

// ClampLen returns v with its length clamped to max.
func (v Vec3) ClampLen(max float32) Vec3 {
	if v.LenSq() <= max*max {
		return v
	}
	return v.WithLen(max)
}

// AngleTo returns the angle between v and b in radians, in [0, π].
// It panics if either vector is zero.
func (v Vec3) AngleTo(b Vec3) float32 {
	if v == (Vec3{}) || b == (Vec3{}) {
		panic("geom: angle with zero Vec3")
	}
	return math32.Acos(Clamp(v.Unit().Dot(b.Unit()), -1, 1))
}

// ProjectedOnto returns the projection of v onto axis. It panics if
// axis is the zero vector.
func (v Vec3) ProjectedOnto(axis Vec3) Vec3 {
	if axis == (Vec3{}) {
		panic("geom: projection onto zero Vec3")
	}
	n := axis.Unit()
	return n.Scale(v.Dot(n))
}

// Reflect returns v reflected about the plane with the given normal.
func (v Vec3) Reflect(normal Vec3) Vec3 {
	n := normal.Unit()
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

func (v Vec3) DistanceTo(b Vec3) float32 { return b.Sub(v).Len() }

func (v Vec3) DistanceSqTo(b Vec3) float32 { return b.Sub(v).LenSq() }

// Lerp linearly interpolates from v to b.
func (v Vec3) Lerp(b Vec3, t float32) Vec3 {
	return Vec3{Lerp(v.X, b.X, t), Lerp(v.Y, b.Y, t), Lerp(v.Z, b.Z, t)}
}

func (v Vec3) Abs() Vec3 {
	return Vec3{math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)}
}

// Min returns the component-wise minimum of v and b.
func (v Vec3) Min(b Vec3) Vec3 {
	return Vec3{math32.Min(v.X, b.X), math32.Min(v.Y, b.Y), math32.Min(v.Z, b.Z)}
}

// Max returns the component-wise maximum of v and b.
func (v Vec3) Max(b Vec3) Vec3 {
	return Vec3{math32.Max(v.X, b.X), math32.Max(v.Y, b.Y), math32.Max(v.Z, b.Z)}
}

// Clamp clamps each component of v between lo and hi, assume lo <= hi.
func (v Vec3) Clamp(lo, hi Vec3) Vec3 {
	return Vec3{Clamp(v.X, lo.X, hi.X), Clamp(v.Y, lo.Y, hi.Y), Clamp(v.Z, lo.Z, hi.Z)}
}

// IsNaN returns true if any component is NaN.
func (v Vec3) IsNaN() bool { return math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsNaN(v.Z) }

// IsInf returns true if any component is infinite.
func (v Vec3) IsInf() bool {
	return math32.IsInf(v.X, 0) || math32.IsInf(v.Y, 0) || math32.IsInf(v.Z, 0)
}

// Orthonormalize makes v1, v2 and v3 mutually orthogonal unit vectors
// using Gram-Schmidt in argument order: v1 keeps its direction, v2 loses
// its v1 component and v3 loses its v1 and v2 components.
// It panics if any of the vectors degenerates to zero.
func Orthonormalize(v1, v2, v3 *Vec3) {
	a := v1.Unit()
	b := v2.Sub(v2.ProjectedOnto(a)).Unit()
	c := v3.Sub(v3.ProjectedOnto(a))
	c = c.Sub(c.ProjectedOnto(b)).Unit()
	*v1, *v2, *v3 = a, b, c
}

// Elem returns the component at index i (0=X, 1=Y, 2=Z).
func (v Vec3) Elem(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("geom: Vec3 index out of range")
}

func (v Vec3) Swizzle2(i, j int) Vec2 { return Vec2{v.Elem(i), v.Elem(j)} }

func (v Vec3) Swizzle3(i, j, k int) Vec3 { return Vec3{v.Elem(i), v.Elem(j), v.Elem(k)} }

func (v Vec3) Swizzle4(i, j, k, l int) Vec4 {
	return Vec4{v.Elem(i), v.Elem(j), v.Elem(k), v.Elem(l)}
}

func (v Vec3) WithX(x float32) Vec3 {
	v.X = x
	return v
}

func (v Vec3) WithY(y float32) Vec3 {
	v.Y = y
	return v
}

func (v Vec3) WithZ(z float32) Vec3 {
	v.Z = z
	return v
}

// Vec2 drops the Z component.
func (v Vec3) Vec2() Vec2 { return Vec2{v.X, v.Y} }

// Vec4 extends v with the given W component.
func (v Vec3) Vec4(w float32) Vec4 { return Vec4{v.X, v.Y, v.Z, w} }

// EqualExact reports whether all components compare equal with ==.
// -0 equals 0 and NaN never equals itself.
func (v Vec3) EqualExact(b Vec3) bool { return v == b }

// EqualWithin reports whether every component of v differs from b by less
// than eps. It panics if eps is negative.
func (v Vec3) EqualWithin(b Vec3, eps float32) bool {
	mustTolerance(eps)
	return within(v.X, b.X, eps) && within(v.Y, b.Y, eps) && within(v.Z, b.Z, eps)
}

// Equal is EqualWithin using the process tolerance.
func (v Vec3) Equal(b Vec3) bool { return v.EqualWithin(b, Tolerance()) }

// Less compares vectors by squared length.
func (v Vec3) Less(b Vec3) bool { return v.LenSq() < b.LenSq() }

// Greater compares vectors by squared length.
func (v Vec3) Greater(b Vec3) bool { return v.LenSq() > b.LenSq() }

// LessEqual compares by squared length; tolerance-equal vectors always satisfy it.
func (v Vec3) LessEqual(b Vec3) bool { return v.LenSq() <= b.LenSq() || v.Equal(b) }

// GreaterEqual compares by squared length; tolerance-equal vectors always satisfy it.
func (v Vec3) GreaterEqual(b Vec3) bool { return v.LenSq() >= b.LenSq() || v.Equal(b) }
