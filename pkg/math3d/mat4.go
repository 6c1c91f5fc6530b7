package math3d

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix stored as four row vectors.
//
// Layout:
// | m[0].X m[0].Y m[0].Z m[0].W |
// | m[1].X m[1].Y m[1].Z m[1].W |
// | m[2].X m[2].Y m[2].Z m[2].W |
// | m[3].X m[3].Y m[3].Z m[3].W |
//
// Vectors are columns: a transform maps v to m·v, so translation lives in
// the W lane of the first three rows.
type Mat4 [4]Vec4

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4FromRows builds a matrix from row-major values.
func Mat4FromRows(rows [4][4]float32) Mat4 {
	var m Mat4
	for i, r := range rows {
		m[i] = Vec4{r[0], r[1], r[2], r[3]}
	}
	return m
}

// Mat4FromColumnMajor builds a matrix from 16 column-major values, the
// layout used by OpenGL and glTF.
func Mat4FromColumnMajor(v [16]float32) Mat4 {
	var m Mat4
	for r := range 4 {
		m[r] = Vec4{v[r], v[4+r], v[8+r], v[12+r]}
	}
	return m
}

// Translation creates a translation matrix.
func Translation(v Vec3) Mat4 {
	return Mat4{
		{1, 0, 0, v.X},
		{0, 1, 0, v.Y},
		{0, 0, 1, v.Z},
		{0, 0, 0, 1},
	}
}

// Scaling creates a scaling matrix.
func Scaling(v Vec3) Mat4 {
	return Mat4{
		{v.X, 0, 0, 0},
		{0, v.Y, 0, 0},
		{0, 0, v.Z, 0},
		{0, 0, 0, 1},
	}
}

// Perspective creates a right-handed perspective projection matrix with
// NDC depth in [-1, 1]. fovy is the vertical field of view in radians.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	yy := 1 / math32.Tan(fovy/2)
	zm := far - near
	zp := far + near
	return Mat4{
		{yy / aspect, 0, 0, 0},
		{0, yy, 0, 0},
		{0, 0, -zp / zm, -2 * far * near / zm},
		{0, 0, -1, 0},
	}
}

// Row returns row i.
func (m Mat4) Row(i int) Vec4 {
	return m[i]
}

// Col returns column j.
func (m Mat4) Col(j int) Vec4 {
	return Vec4{m[0].Lane(j), m[1].Lane(j), m[2].Lane(j), m[3].Lane(j)}
}

// At returns the element at (row, col).
func (m Mat4) At(row, col int) float32 {
	return m[row].Lane(col)
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{m.Col(0), m.Col(1), m.Col(2), m.Col(3)}
}

// Add returns the element-wise sum.
func (a Mat4) Add(b Mat4) Mat4 {
	return Mat4{a[0].Add(b[0]), a[1].Add(b[1]), a[2].Add(b[2]), a[3].Add(b[3])}
}

// Sub returns the element-wise difference.
func (a Mat4) Sub(b Mat4) Mat4 {
	return Mat4{a[0].Sub(b[0]), a[1].Sub(b[1]), a[2].Sub(b[2]), a[3].Sub(b[3])}
}

// Scale multiplies every element by s.
func (m Mat4) Scale(s float32) Mat4 {
	return Mat4{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s), m[3].Scale(s)}
}

// Div divides every element by s.
func (m Mat4) Div(s float32) Mat4 {
	return Mat4{m[0].Div(s), m[1].Div(s), m[2].Div(s), m[3].Div(s)}
}

// Mul returns the matrix product a × b. Each element is the dot product of
// a row of a with a row of bᵀ.
func (a Mat4) Mul(b Mat4) Mat4 {
	bt := b.Transpose()
	var out Mat4
	for i := range 4 {
		out[i] = Vec4{
			a[i].Dot(bt[0]),
			a[i].Dot(bt[1]),
			a[i].Dot(bt[2]),
			a[i].Dot(bt[3]),
		}
	}
	return out
}

// MulVec4 transforms v by m.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v), m[3].Dot(v)}
}

// MulPoint transforms a point (w=1) and drops the resulting W lane. Use
// MulVec4 and PerspectiveDivide for projective transforms.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	return m.MulVec4(p.Vec4(1)).Vec3()
}

// MulDir transforms a direction (w=0), ignoring translation.
func (m Mat4) MulDir(d Vec3) Vec3 {
	return m.MulVec4(d.Vec4(0)).Vec3()
}

// Translation returns the translation component.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[0].W, m[1].W, m[2].W}
}
