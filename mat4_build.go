package geom

import "github.com/chewxy/math32"

// Transform builders. Rotation angles are clockwise-positive when looking
// along the rotation axis towards the origin, matching FromAxialRotation.

// FromScale returns a matrix scaling by x, y and z.
func FromScale(x, y, z float32) Mat4 {
	return Mat4{
		RowA: Vec4{X: x},
		RowB: Vec4{Y: y},
		RowC: Vec4{Z: z},
		RowD: Vec4{W: 1},
	}
}

func FromScaleVec(s Vec3) Mat4 { return FromScale(s.X, s.Y, s.Z) }

// FromTranslation returns a matrix translating by x, y and z. The
// translation is stored in RowD.
func FromTranslation(x, y, z float32) Mat4 {
	return Mat4{
		RowA: Vec4{X: 1},
		RowB: Vec4{Y: 1},
		RowC: Vec4{Z: 1},
		RowD: Vec4{x, y, z, 1},
	}
}

func FromTranslationVec(t Vec3) Mat4 { return FromTranslation(t.X, t.Y, t.Z) }

// FromRotation returns the rotation about X by rotX, about Y by rotY and
// about Z by rotZ composed as yaw(Y) * pitch(X) * roll(Z).
func FromRotation(rotX, rotY, rotZ float32) Mat4 {
	pitch := NormalizeRadians(-rotX, SignedFullRange)
	yaw := NormalizeRadians(-rotY, SignedFullRange)
	roll := NormalizeRadians(-rotZ, SignedFullRange)
	return rotationY(yaw).Mul(rotationX(pitch)).Mul(rotationZ(roll))
}

func rotationX(a float32) Mat4 {
	s, c := math32.Sin(a), math32.Cos(a)
	return Mat4{
		RowA: Vec4{X: 1},
		RowB: Vec4{0, c, s, 0},
		RowC: Vec4{0, -s, c, 0},
		RowD: Vec4{W: 1},
	}
}

func rotationY(a float32) Mat4 {
	s, c := math32.Sin(a), math32.Cos(a)
	return Mat4{
		RowA: Vec4{c, 0, -s, 0},
		RowB: Vec4{Y: 1},
		RowC: Vec4{s, 0, c, 0},
		RowD: Vec4{W: 1},
	}
}

func rotationZ(a float32) Mat4 {
	s, c := math32.Sin(a), math32.Cos(a)
	return Mat4{
		RowA: Vec4{c, s, 0, 0},
		RowB: Vec4{-s, c, 0, 0},
		RowC: Vec4{Z: 1},
		RowD: Vec4{W: 1},
	}
}

// FromRotationQuat returns the rotation matrix of q. q is normalized
// first and therefore must not be zero.
func FromRotationQuat(q Quat) Mat4 {
	var r [3]Vec3
	rotationRows(q.Unit(), &r)
	return Mat4{
		RowA: r[0].Vec4(0),
		RowB: r[1].Vec4(0),
		RowC: r[2].Vec4(0),
		RowD: Vec4{W: 1},
	}
}

// rotationRows writes the upper 3x3 block of the row-vector rotation
// matrix of unit quaternion q.
func rotationRows(q Quat, r *[3]Vec3) {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z
	xx := q.X * x2
	yy := q.Y * y2
	zz := q.Z * z2
	xy := q.X * y2
	xz := q.X * z2
	yz := q.Y * z2
	wx := q.W * x2
	wy := q.W * y2
	wz := q.W * z2
	r[0] = Vec3{1 - (yy + zz), xy + wz, xz - wy}
	r[1] = Vec3{xy - wz, 1 - (xx + zz), yz + wx}
	r[2] = Vec3{xz + wy, yz - wx, 1 - (xx + yy)}
}

// FromSRT creates a transform that scales, then rotates, then translates.
// It equals FromScaleVec(scale).Mul(FromRotationQuat(rotation)).Mul(FromTranslationVec(translation))
// but is built directly.
func FromSRT(scale Vec3, rotation Quat, translation Vec3) Mat4 {
	var r [3]Vec3
	rotationRows(rotation.Unit(), &r)
	return Mat4{
		RowA: r[0].Scale(scale.X).Vec4(0),
		RowB: r[1].Scale(scale.Y).Vec4(0),
		RowC: r[2].Scale(scale.Z).Vec4(0),
		RowD: translation.Vec4(1),
	}
}

// FromSRTTransposed returns FromSRT(scale, rotation, translation).Transpose(),
// the column-major layout expected by shader uniform uploads, built directly.
func FromSRTTransposed(scale Vec3, rotation Quat, translation Vec3) Mat4 {
	var r [3]Vec3
	rotationRows(rotation.Unit(), &r)
	return Mat4{
		RowA: Vec4{r[0].X * scale.X, r[1].X * scale.Y, r[2].X * scale.Z, translation.X},
		RowB: Vec4{r[0].Y * scale.X, r[1].Y * scale.Y, r[2].Y * scale.Z, translation.Y},
		RowC: Vec4{r[0].Z * scale.X, r[1].Z * scale.Y, r[2].Z * scale.Z, translation.Z},
		RowD: Vec4{W: 1},
	}
}
