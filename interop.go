package geom

import (
	"github.com/fogleman/fauxgl"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Conversions between geom types and the float64 gonum types, the float32
// glgl types and the fauxgl rasterizer types.

func (v Vec2) R2() r2.Vec { return r2.Vec{X: float64(v.X), Y: float64(v.Y)} }

func Vec2FromR2(v r2.Vec) Vec2 { return Vec2{float32(v.X), float32(v.Y)} }

func (v Vec3) R3() r3.Vec { return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)} }

func Vec3FromR3(v r3.Vec) Vec3 { return Vec3{float32(v.X), float32(v.Y), float32(v.Z)} }

func (v Vec2) MS2() ms2.Vec { return ms2.Vec{X: v.X, Y: v.Y} }

func Vec2FromMS2(v ms2.Vec) Vec2 { return Vec2{v.X, v.Y} }

func (v Vec3) MS3() ms3.Vec { return ms3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

func Vec3FromMS3(v ms3.Vec) Vec3 { return Vec3{v.X, v.Y, v.Z} }

func (v Vec3) Fauxgl() fauxgl.Vector {
	return fauxgl.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func Vec3FromFauxgl(v fauxgl.Vector) Vec3 { return Vec3{float32(v.X), float32(v.Y), float32(v.Z)} }

// Number returns q as a gonum quaternion with W as the real part.
func (q Quat) Number() quat.Number {
	return quat.Number{Real: float64(q.W), Imag: float64(q.X), Jmag: float64(q.Y), Kmag: float64(q.Z)}
}

func QuatFromNumber(n quat.Number) Quat {
	return Quat{float32(n.Imag), float32(n.Jmag), float32(n.Kmag), float32(n.Real)}
}

// Rotation returns q as a gonum rotation. Both apply the same rotation to a vector.
func (q Quat) Rotation() r3.Rotation { return r3.Rotation(q.Number()) }

func QuatFromRotation(r r3.Rotation) Quat { return QuatFromNumber(quat.Number(r)) }

// Dense returns m as a 4x4 gonum matrix with the same row-major layout.
func (m Mat4) Dense() *mat.Dense {
	data := make([]float64, 16)
	for i, f := range m.Slice() {
		data[i] = float64(f)
	}
	return mat.NewDense(4, 4, data)
}

// Mat4FromDense converts the leading 4x4 block of a gonum matrix.
func Mat4FromDense(d mat.Matrix) Mat4 {
	var a [4][4]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a[i][j] = float32(d.At(i, j))
		}
	}
	return mat4FromArray(a)
}

// Fauxgl returns m as a fauxgl matrix. fauxgl transforms column vectors,
// so the result is the transpose of m and m.Fauxgl().MulPosition(v)
// matches m.TransformVec3(v).
func (m Mat4) Fauxgl() fauxgl.Matrix {
	t := m.Transpose()
	return fauxgl.Matrix{
		X00: float64(t.RowA.X), X01: float64(t.RowA.Y), X02: float64(t.RowA.Z), X03: float64(t.RowA.W),
		X10: float64(t.RowB.X), X11: float64(t.RowB.Y), X12: float64(t.RowB.Z), X13: float64(t.RowB.W),
		X20: float64(t.RowC.X), X21: float64(t.RowC.Y), X22: float64(t.RowC.Z), X23: float64(t.RowC.W),
		X30: float64(t.RowD.X), X31: float64(t.RowD.Y), X32: float64(t.RowD.Z), X33: float64(t.RowD.W),
	}
}

// Mat4FromFauxgl is the inverse of Mat4.Fauxgl.
func Mat4FromFauxgl(f fauxgl.Matrix) Mat4 {
	return Mat4FromValues(
		float32(f.X00), float32(f.X10), float32(f.X20), float32(f.X30),
		float32(f.X01), float32(f.X11), float32(f.X21), float32(f.X31),
		float32(f.X02), float32(f.X12), float32(f.X22), float32(f.X32),
		float32(f.X03), float32(f.X13), float32(f.X23), float32(f.X33),
	)
}
