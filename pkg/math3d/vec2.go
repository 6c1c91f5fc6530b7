package math3d

import "github.com/chewxy/math32"

// Vec2 represents a 2D vector, typically a pixel position or NDC point.
type Vec2 struct {
	X, Y float32
}

// V2 creates a new Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Add returns the vector sum.
//
//nolint:st1016
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference.
//
//nolint:st1016
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// WideMul returns the per-lane product.
//
//nolint:st1016
func (a Vec2) WideMul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// WideDiv returns the per-lane quotient.
//
//nolint:st1016
func (a Vec2) WideDiv(b Vec2) Vec2 {
	return Vec2{a.X / b.X, a.Y / b.Y}
}

// Scale returns the scalar product.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product.
//
//nolint:st1016
func (a Vec2) Dot(b Vec2) float32 {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the length.
func (v Vec2) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v divided by its length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the distance between two points.
//
//nolint:st1016
func (a Vec2) Distance(b Vec2) float32 {
	return a.Sub(b).Len()
}
