// Package math3d provides the float32 vector, matrix and quaternion kernel
// used by the lumen ray tracer.
package math3d

import "github.com/chewxy/math32"

// Epsilon is the float32 machine epsilon, the tolerance used by the checked
// unit-length conversions.
const Epsilon float32 = 0x1p-23

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// V3 creates a new Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Splat3 returns a Vec3 with every lane set to s.
func Splat3(s float32) Vec3 {
	return Vec3{s, s, s}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Vec4 widens a into a Vec4 with the given W lane.
func (a Vec3) Vec4(w float32) Vec4 {
	return Vec4{a.X, a.Y, a.Z, w}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// WideMul returns the per-lane product of a and b.
func (a Vec3) WideMul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// WideDiv returns the per-lane quotient of a and b.
func (a Vec3) WideDiv(b Vec3) Vec3 {
	return Vec3{a.X / b.X, a.Y / b.Y, a.Z / b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s.
func (a Vec3) Div(s float32) Vec3 {
	return Vec3{a.X / s, a.Y / s, a.Z / s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// ZXY returns the lanes rotated as (z, x, y).
func (a Vec3) ZXY() Vec3 {
	return Vec3{a.Z, a.X, a.Y}
}

// Cross returns the right-handed cross product a × b, computed with the
// swizzle identity (a.zxy*b - a*b.zxy).zxy.
func (a Vec3) Cross(b Vec3) Vec3 {
	return a.ZXY().WideMul(b).Sub(a.WideMul(b.ZXY())).ZXY()
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float32 {
	return math32.Sqrt(a.LenSq())
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3) LenSq() float32 {
	return a.Dot(a)
}

// Normalize returns a divided by its length. The zero vector yields NaN
// lanes; callers guard against it.
func (a Vec3) Normalize() Vec3 {
	return a.Div(a.Len())
}

// Unit normalizes a into a Unit3.
func (a Vec3) Unit() Unit3 {
	return Unit3{a.Normalize()}
}

// Neg returns the negated vector.
func (a Vec3) Neg() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Distance returns the distance between two points.
func (a Vec3) Distance(b Vec3) float32 {
	return a.Sub(b).Len()
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{
		math32.Min(a.X, b.X),
		math32.Min(a.Y, b.Y),
		math32.Min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{
		math32.Max(a.X, b.X),
		math32.Max(a.Y, b.Y),
		math32.Max(a.Z, b.Z),
	}
}

// MaxLane returns the largest lane.
func (a Vec3) MaxLane() float32 {
	return math32.Max(a.X, math32.Max(a.Y, a.Z))
}

// Clamp limits each lane to [lo, hi]. NaN lanes become lo.
func (a Vec3) Clamp(lo, hi float32) Vec3 {
	return Vec3{clamp(a.X, lo, hi), clamp(a.Y, lo, hi), clamp(a.Z, lo, hi)}
}

// IsFinite reports whether every lane is neither NaN nor infinite.
func (a Vec3) IsFinite() bool {
	return finite(a.X) && finite(a.Y) && finite(a.Z)
}

func clamp(v, lo, hi float32) float32 {
	if !(v > lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
