package geom

// Mat4 is a 4x4 row-major matrix stored as four row vectors, 64 bytes in
// memory. Vectors are treated as rows and transformed as v*M, so a product
// a.Mul(b) applies a first and b second.
type Mat4 struct {
	RowA, RowB, RowC, RowD Vec4
}

var (
	Mat4Identity = Mat4{
		RowA: Vec4{1, 0, 0, 0},
		RowB: Vec4{0, 1, 0, 0},
		RowC: Vec4{0, 0, 1, 0},
		RowD: Vec4{0, 0, 0, 1},
	}
	Mat4Zero = Mat4{}
)

// Mat4FromRows returns the matrix with rows a, b, c and d.
func Mat4FromRows(a, b, c, d Vec4) Mat4 {
	return Mat4{RowA: a, RowB: b, RowC: c, RowD: d}
}

// Mat4FromValues returns a matrix from its elements in row-major order.
func Mat4FromValues(
	r0c0, r0c1, r0c2, r0c3,
	r1c0, r1c1, r1c2, r1c3,
	r2c0, r2c1, r2c2, r2c3,
	r3c0, r3c1, r3c2, r3c3 float32,
) Mat4 {
	return Mat4{
		RowA: Vec4{r0c0, r0c1, r0c2, r0c3},
		RowB: Vec4{r1c0, r1c1, r1c2, r1c3},
		RowC: Vec4{r2c0, r2c1, r2c2, r2c3},
		RowD: Vec4{r3c0, r3c1, r3c2, r3c3},
	}
}

// NewMat4 returns a new Mat4 and populates its elements
// with values passed in row-major form. It panics unless len(a) == 16.
func NewMat4(a []float32) Mat4 {
	if len(a) != 16 {
		panic("geom: Mat4 is initialized with 16 values")
	}
	return Mat4{
		RowA: Vec4{a[0], a[1], a[2], a[3]},
		RowB: Vec4{a[4], a[5], a[6], a[7]},
		RowC: Vec4{a[8], a[9], a[10], a[11]},
		RowD: Vec4{a[12], a[13], a[14], a[15]},
	}
}

// Slice returns a copy of the matrix data in row major storage format.
// It returns 16 elements.
func (m Mat4) Slice() []float32 {
	return []float32{
		m.RowA.X, m.RowA.Y, m.RowA.Z, m.RowA.W,
		m.RowB.X, m.RowB.Y, m.RowB.Z, m.RowB.W,
		m.RowC.X, m.RowC.Y, m.RowC.Z, m.RowC.W,
		m.RowD.X, m.RowD.Y, m.RowD.Z, m.RowD.W,
	}
}

func (m Mat4) array() [4][4]float32 {
	return [4][4]float32{
		{m.RowA.X, m.RowA.Y, m.RowA.Z, m.RowA.W},
		{m.RowB.X, m.RowB.Y, m.RowB.Z, m.RowB.W},
		{m.RowC.X, m.RowC.Y, m.RowC.Z, m.RowC.W},
		{m.RowD.X, m.RowD.Y, m.RowD.Z, m.RowD.W},
	}
}

func mat4FromArray(a [4][4]float32) Mat4 {
	return Mat4{
		RowA: Vec4{a[0][0], a[0][1], a[0][2], a[0][3]},
		RowB: Vec4{a[1][0], a[1][1], a[1][2], a[1][3]},
		RowC: Vec4{a[2][0], a[2][1], a[2][2], a[2][3]},
		RowD: Vec4{a[3][0], a[3][1], a[3][2], a[3][3]},
	}
}

func mustIndex4(i int) {
	if i < 0 || i > 3 {
		panic("geom: Mat4 index out of range")
	}
}

// Row returns row i, 0 being RowA.
func (m Mat4) Row(i int) Vec4 {
	switch i {
	case 0:
		return m.RowA
	case 1:
		return m.RowB
	case 2:
		return m.RowC
	case 3:
		return m.RowD
	}
	panic("geom: Mat4 index out of range")
}

// WithRow returns m with row i replaced by v.
func (m Mat4) WithRow(i int, v Vec4) Mat4 {
	switch i {
	case 0:
		m.RowA = v
	case 1:
		m.RowB = v
	case 2:
		m.RowC = v
	case 3:
		m.RowD = v
	default:
		panic("geom: Mat4 index out of range")
	}
	return m
}

// Col returns column j.
func (m Mat4) Col(j int) Vec4 {
	return Vec4{m.RowA.Elem(j), m.RowB.Elem(j), m.RowC.Elem(j), m.RowD.Elem(j)}
}

// At returns the element at row i, column j.
func (m Mat4) At(i, j int) float32 {
	return m.Row(i).Elem(j)
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		RowA: Vec4{m.RowA.X, m.RowB.X, m.RowC.X, m.RowD.X},
		RowB: Vec4{m.RowA.Y, m.RowB.Y, m.RowC.Y, m.RowD.Y},
		RowC: Vec4{m.RowA.Z, m.RowB.Z, m.RowC.Z, m.RowD.Z},
		RowD: Vec4{m.RowA.W, m.RowB.W, m.RowC.W, m.RowD.W},
	}
}

// Det returns the determinant of the full matrix.
func (m Mat4) Det() float32 { return m.Determinant(4) }

// Determinant returns the determinant of the leading dim x dim block of m.
// It panics if dim is not in 1..4.
func (m Mat4) Determinant(dim int) float32 {
	a, b, c := m.RowA, m.RowB, m.RowC
	switch dim {
	case 1:
		return a.X
	case 2:
		return a.X*b.Y - a.Y*b.X
	case 3:
		return a.X*(b.Y*c.Z-b.Z*c.Y) -
			a.Y*(b.X*c.Z-b.Z*c.X) +
			a.Z*(b.X*c.Y-b.Y*c.X)
	case 4:
		// Laplace expansion along RowA.
		return a.X*m.Minor(0, 0).Determinant(3) -
			a.Y*m.Minor(0, 1).Determinant(3) +
			a.Z*m.Minor(0, 2).Determinant(3) -
			a.W*m.Minor(0, 3).Determinant(3)
	}
	panic("geom: determinant dimension out of range")
}

// Minor returns m with the given row and column removed. The remaining
// 3x3 block is moved to the top left and the last row and column are zero.
func (m Mat4) Minor(row, col int) Mat4 {
	mustIndex4(row)
	mustIndex4(col)
	src := m.array()
	var dst [4][4]float32
	di := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		dj := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			dst[di][dj] = src[i][j]
			dj++
		}
		di++
	}
	return mat4FromArray(dst)
}

// Cofactor returns the matrix of signed minor determinants, positive at [0,0].
func (m Mat4) Cofactor() Mat4 {
	var dst [4][4]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			d := m.Minor(i, j).Determinant(3)
			if (i+j)%2 == 1 {
				d = -d
			}
			dst[i][j] = d
		}
	}
	return mat4FromArray(dst)
}

// Adjoint returns the transposed cofactor matrix.
func (m Mat4) Adjoint() Mat4 { return m.Cofactor().Transpose() }

// HasInverse reports whether the determinant is non-zero. The comparison is exact.
func (m Mat4) HasInverse() bool { return m.Det() != 0 }

// IsOrthogonal reports whether every row has unit length and the rows are
// mutually perpendicular within the process tolerance.
func (m Mat4) IsOrthogonal() bool { return m.IsOrthogonalWithin(Tolerance()) }

func (m Mat4) IsOrthogonalWithin(eps float32) bool {
	mustTolerance(eps)
	rows := [4]Vec4{m.RowA, m.RowB, m.RowC, m.RowD}
	for i := range rows {
		if !rows[i].IsUnitWithin(eps) {
			return false
		}
		for j := i + 1; j < len(rows); j++ {
			if !within(rows[i].Dot(rows[j]), 0, eps) {
				return false
			}
		}
	}
	return true
}

// Inverse returns the inverse of m such that m.Mul(m.Inverse()) is the
// identity. Orthogonal matrices return their transpose. Inverse panics if
// m is singular.
func (m Mat4) Inverse() Mat4 {
	det := m.Det()
	if det == 0 {
		panic("geom: inverse of singular Mat4")
	}
	if m.IsOrthogonal() {
		return m.Transpose()
	}
	return m.Adjoint().Div(det)
}

func (m Mat4) Add(b Mat4) Mat4 {
	return Mat4{m.RowA.Add(b.RowA), m.RowB.Add(b.RowB), m.RowC.Add(b.RowC), m.RowD.Add(b.RowD)}
}

func (m Mat4) Sub(b Mat4) Mat4 {
	return Mat4{m.RowA.Sub(b.RowA), m.RowB.Sub(b.RowB), m.RowC.Sub(b.RowC), m.RowD.Sub(b.RowD)}
}

func (m Mat4) Scale(s float32) Mat4 {
	return Mat4{m.RowA.Scale(s), m.RowB.Scale(s), m.RowC.Scale(s), m.RowD.Scale(s)}
}

func (m Mat4) Div(s float32) Mat4 {
	return Mat4{m.RowA.Div(s), m.RowB.Div(s), m.RowC.Div(s), m.RowD.Div(s)}
}

// Mul multiplies the matrices m and b and returns the result.
func (m Mat4) Mul(b Mat4) Mat4 {
	return Mat4{
		RowA: b.TransformVec4(m.RowA),
		RowB: b.TransformVec4(m.RowB),
		RowC: b.TransformVec4(m.RowC),
		RowD: b.TransformVec4(m.RowD),
	}
}

// MulDim computes only the leading dim x dim block of m*b, leaving every
// other element zero. dim 4 is the full product. It panics if dim is not in 1..4.
func (m Mat4) MulDim(b Mat4, dim int) Mat4 {
	if dim < 1 || dim > 4 {
		panic("geom: MulDim dimension out of range")
	}
	if dim == 4 {
		return m.Mul(b)
	}
	x, y := m.array(), b.array()
	var dst [4][4]float32
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			dst[i][j] = x[i][0]*y[0][j] + x[i][1]*y[1][j] + x[i][2]*y[2][j] + x[i][3]*y[3][j]
		}
	}
	return mat4FromArray(dst)
}

// DivMat returns m multiplied by the inverse of b.
func (m Mat4) DivMat(b Mat4) Mat4 { return m.Mul(b.Inverse()) }

// TransformVec4 returns the row vector v multiplied by m.
func (m Mat4) TransformVec4(v Vec4) Vec4 {
	return Vec4{
		X: v.X*m.RowA.X + v.Y*m.RowB.X + v.Z*m.RowC.X + v.W*m.RowD.X,
		Y: v.X*m.RowA.Y + v.Y*m.RowB.Y + v.Z*m.RowC.Y + v.W*m.RowD.Y,
		Z: v.X*m.RowA.Z + v.Y*m.RowB.Z + v.Z*m.RowC.Z + v.W*m.RowD.Z,
		W: v.X*m.RowA.W + v.Y*m.RowB.W + v.Z*m.RowC.W + v.W*m.RowD.W,
	}
}

// TransformVec3 transforms the point v as (v.X, v.Y, v.Z, 1) and drops W.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	return m.TransformVec4(v.Vec4(1)).Vec3()
}

// TransformVec2 transforms the point v as (v.X, v.Y, 0, 1) and returns XY.
func (m Mat4) TransformVec2(v Vec2) Vec2 {
	return m.TransformVec4(v.Vec4(0, 1)).Vec2()
}

// EqualExact compares elements with ==, so -0 equals 0 and NaN never
// equals itself.
func (m Mat4) EqualExact(b Mat4) bool { return m == b }

// EqualWithin tests the equality of the matrices to within a tolerance.
// It panics if eps is negative.
func (m Mat4) EqualWithin(b Mat4, eps float32) bool {
	return m.RowA.EqualWithin(b.RowA, eps) &&
		m.RowB.EqualWithin(b.RowB, eps) &&
		m.RowC.EqualWithin(b.RowC, eps) &&
		m.RowD.EqualWithin(b.RowD, eps)
}

func (m Mat4) Equal(b Mat4) bool { return m.EqualWithin(b, Tolerance()) }
