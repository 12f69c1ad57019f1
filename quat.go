package geom

import "github.com/chewxy/math32"

// Quat is a rotation quaternion with imaginary part (X, Y, Z) and real
// part W, 16 bytes in memory.
type Quat struct {
	X, Y, Z, W float32
}

var (
	QuatIdentity = Quat{W: 1}
	// QuatZero has neither an inverse nor a unit form.
	QuatZero = Quat{}
)

// Vector-transition regime bounds on the dot product of the unit inputs.
const (
	transitionParallel     = 0.999999
	transitionAntiparallel = -0.999999
)

// FromAxialRotation returns the rotation of angle radians about axis.
// Positive angles rotate clockwise when looking along axis towards the
// origin. It panics if axis is the zero vector.
func FromAxialRotation(axis Vec3, angle float32) Quat {
	v := axis.Unit().Scale(math32.Sin(-angle / 2))
	return Quat{v.X, v.Y, v.Z, math32.Cos(angle / 2)}
}

// FromEulerRotations returns the rotation that yaws about Vec3Up, then
// pitches about Vec3Right, then rolls about Vec3Forward.
func FromEulerRotations(pitch, yaw, roll float32) Quat {
	return FromAxialRotation(Vec3Up, yaw).
		Mul(FromAxialRotation(Vec3Right, pitch)).
		Mul(FromAxialRotation(Vec3Forward, roll))
}

// FromVectorTransition returns the smallest rotation that turns the
// direction start onto end. Opposite directions give a half turn about an
// arbitrary perpendicular axis. It panics if either vector is zero.
func FromVectorTransition(start, end Vec3) Quat {
	s, e := start.Unit(), end.Unit()
	d := s.Dot(e)
	switch {
	case d > transitionParallel:
		return QuatIdentity
	case d < transitionAntiparallel:
		axis := s.Cross(Vec3Right)
		if axis == (Vec3{}) {
			axis = s.Cross(Vec3Up)
		}
		return FromAxialRotation(axis, Pi)
	}
	c := s.Cross(e)
	return Quat{c.X, c.Y, c.Z, 1 + d}.Unit()
}

func (q Quat) Vec3() Vec3 { return Vec3{q.X, q.Y, q.Z} }

func (q Quat) Vec4() Vec4 { return Vec4{q.X, q.Y, q.Z, q.W} }

// Conjugate negates the imaginary part of q.
func (q Quat) Conjugate() Quat { return Quat{-q.X, -q.Y, -q.Z, q.W} }

func (q Quat) NormSq() float32 { return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W }

func (q Quat) Norm() float32 { return math32.Sqrt(q.NormSq()) }

// IsUnit reports whether |Norm-1| is below the process tolerance.
func (q Quat) IsUnit() bool { return q.IsUnitWithin(Tolerance()) }

func (q Quat) IsUnitWithin(eps float32) bool {
	mustTolerance(eps)
	return within(q.Norm(), 1, eps)
}

// Unit returns q scaled to unit norm. It panics on the zero quaternion.
func (q Quat) Unit() Quat {
	if q == (Quat{}) {
		panic("geom: Unit of zero Quat")
	}
	if q.IsUnit() {
		return q
	}
	return q.Div(q.Norm())
}

// Inverse returns Conjugate/NormSq. It panics on the zero quaternion.
func (q Quat) Inverse() Quat {
	if q == (Quat{}) {
		panic("geom: inverse of zero Quat")
	}
	return q.Conjugate().Div(q.NormSq())
}

func (q Quat) Add(b Quat) Quat { return Quat{q.X + b.X, q.Y + b.Y, q.Z + b.Z, q.W + b.W} }

func (q Quat) Sub(b Quat) Quat { return Quat{q.X - b.X, q.Y - b.Y, q.Z - b.Z, q.W - b.W} }

func (q Quat) Scale(s float32) Quat { return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s} }

func (q Quat) Div(s float32) Quat { return Quat{q.X / s, q.Y / s, q.Z / s, q.W / s} }

// Neg negates every component. The result represents the same rotation as q.
func (q Quat) Neg() Quat { return Quat{-q.X, -q.Y, -q.Z, -q.W} }

func (q Quat) Dot(b Quat) float32 { return q.X*b.X + q.Y*b.Y + q.Z*b.Z + q.W*b.W }

// Mul returns the rotation that applies q first and b second.
// In Hamilton notation this is the product b⊗q.
func (q Quat) Mul(b Quat) Quat {
	return Quat{
		X: b.W*q.X + q.W*b.X + b.Y*q.Z - b.Z*q.Y,
		Y: b.W*q.Y + q.W*b.Y + b.Z*q.X - b.X*q.Z,
		Z: b.W*q.Z + q.W*b.Z + b.X*q.Y - b.Y*q.X,
		W: b.W*q.W - (b.X*q.X + b.Y*q.Y + b.Z*q.Z),
	}
}

// CombineRotations folds the rotations left to right, first being applied first.
func CombineRotations(first Quat, rest ...Quat) Quat {
	for _, q := range rest {
		first = first.Mul(q)
	}
	return first
}

// CombineRotationSlice is CombineRotations over a slice. It panics if qs is empty.
func CombineRotationSlice(qs []Quat) Quat {
	if len(qs) == 0 {
		panic("geom: combine of no rotations")
	}
	return CombineRotations(qs[0], qs[1:]...)
}

// Exp returns the quaternion exponential of q.
func (q Quat) Exp() Quat {
	ew := math32.Exp(q.W)
	v := q.Vec3()
	theta := math32.Sqrt(v.LenSq())
	if theta == 0 {
		return Quat{W: ew}
	}
	s := ew * math32.Sin(theta) / theta
	return Quat{v.X * s, v.Y * s, v.Z * s, ew * math32.Cos(theta)}
}

// Log returns the natural logarithm of q. It panics on the zero quaternion.
func (q Quat) Log() Quat {
	if q == (Quat{}) {
		panic("geom: log of zero Quat")
	}
	n := q.Norm()
	v := q.Vec3()
	vl := math32.Sqrt(v.LenSq())
	lnN := math32.Log(n)
	if vl == 0 {
		return Quat{W: lnN}
	}
	v = v.Scale(math32.Acos(Clamp(q.W/n, -1, 1)) / vl)
	return Quat{v.X, v.Y, v.Z, lnN}
}

// Subrotation returns fraction of the rotation q: 0 is the identity, 1 is q,
// 2 rotates twice as far and negative values rotate the other way.
// It panics on the zero quaternion.
func (q Quat) Subrotation(fraction float32) Quat {
	if within(fraction, 0, Tolerance()) || q.Equal(QuatIdentity) {
		return QuatIdentity
	}
	l := q.Unit().Log()
	return Quat{l.X * fraction, l.Y * fraction, l.Z * fraction, 0}.Exp()
}

// AxisAngle returns the axis and angle such that
// FromAxialRotation(axis, angle) equals the unit form of q. The identity
// returns Vec3Up and zero.
func (q Quat) AxisAngle() (axis Vec3, angle float32) {
	u := q.Unit()
	angle = 2 * math32.Acos(Clamp(u.W, -1, 1))
	s := math32.Sin(angle / 2)
	if within(s, 0, Tolerance()) {
		return Vec3Up, 0
	}
	return u.Vec3().Scale(-1 / s).Unit(), angle
}

// RotMatrix returns the rotation matrix of q.
func (q Quat) RotMatrix() Mat4 { return FromRotationQuat(q) }

// Rotate returns v rotated by q.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := q.Vec3()
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// RotateVector returns v rotated by q.
func RotateVector(v Vec3, q Quat) Vec3 { return q.Rotate(v) }

// RotAroundX approximates the rotation of q about the X axis by measuring
// how far Vec3Up turns within the YZ plane. It is not an Euler decomposition
// and disagrees with one for compound rotations. The result is in [0, π].
func (q Quat) RotAroundX() float32 {
	return axisDeflection(Vec3Up, q.Rotate(Vec3Up).WithX(0))
}

// RotAroundY approximates the rotation of q about the Y axis by measuring
// how far Vec3Forward turns within the XZ plane.
func (q Quat) RotAroundY() float32 {
	return axisDeflection(Vec3Forward, q.Rotate(Vec3Forward).WithY(0))
}

// RotAroundZ approximates the rotation of q about the Z axis by measuring
// how far Vec3Right turns within the XY plane.
func (q Quat) RotAroundZ() float32 {
	return axisDeflection(Vec3Right, q.Rotate(Vec3Right).WithZ(0))
}

// axisDeflection returns zero when the rotated axis leaves the plane entirely.
func axisDeflection(axis, projected Vec3) float32 {
	if projected == (Vec3{}) {
		return 0
	}
	return axis.AngleTo(projected)
}

// RotationBetween returns the rotation that takes orientation start to end,
// so that start.Mul(RotationBetween(start, end)) equals end.
func RotationBetween(start, end Quat) Quat {
	return start.Inverse().Mul(end)
}

// DistanceBetween returns the angle of the rotation between start and end.
func DistanceBetween(start, end Quat) float32 {
	d, _ := DistanceAndRotationBetween(start, end)
	return d
}

// DistanceAndRotationBetween is DistanceBetween that also returns the
// RotationBetween result it is computed from.
func DistanceAndRotationBetween(start, end Quat) (float32, Quat) {
	rb := RotationBetween(start, end)
	// The vector-part length, not Norm(rb), which is 1 for any unit rotation.
	v := rb.Vec3()
	return math32.Abs(2 * math32.Atan2(math32.Sqrt(v.LenSq()), rb.W)), rb
}

// EqualExact compares components with ==. Unlike a bitwise comparison,
// -0 equals 0 and NaN never equals itself.
func (q Quat) EqualExact(b Quat) bool { return q == b }

// EqualWithin reports whether every component of q differs from b by less
// than eps. It panics if eps is negative.
func (q Quat) EqualWithin(b Quat, eps float32) bool {
	mustTolerance(eps)
	return within(q.X, b.X, eps) && within(q.Y, b.Y, eps) &&
		within(q.Z, b.Z, eps) && within(q.W, b.W, eps)
}

func (q Quat) Equal(b Quat) bool { return q.EqualWithin(b, Tolerance()) }
