package math3d

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Unit3 is a Vec3 whose squared length is 1 within Epsilon. The zero value
// is not a valid unit vector; obtain one through AsUnit, UnitUnchecked or
// Vec3.Unit.
type Unit3 struct {
	v Vec3
}

// Unit axes.
var (
	UnitX = Unit3{Vec3{1, 0, 0}}
	UnitY = Unit3{Vec3{0, 1, 0}}
	UnitZ = Unit3{Vec3{0, 0, 1}}
)

// IsUnit reports whether |v|² deviates from 1 by at most Epsilon.
func IsUnit(v Vec3) bool {
	return math32.Abs(v.LenSq()-1) <= Epsilon
}

// AsUnit converts v to a Unit3, reporting false when v is not unit length.
func AsUnit(v Vec3) (Unit3, bool) {
	if !IsUnit(v) {
		return Unit3{}, false
	}
	return Unit3{v}, true
}

// UnitUnchecked wraps v without validation. The caller guarantees v is unit
// length; builds with the debug tag panic otherwise.
func UnitUnchecked(v Vec3) Unit3 {
	if debug && !IsUnit(v) {
		panic(fmt.Sprintf("math3d: UnitUnchecked(%v) has squared length %v", v, v.LenSq()))
	}
	return Unit3{v}
}

// Vec returns the underlying vector.
func (u Unit3) Vec() Vec3 { return u.v }

// Neg returns the opposite direction.
func (u Unit3) Neg() Unit3 { return Unit3{u.v.Neg()} }

// Dot returns u · v.
func (u Unit3) Dot(v Vec3) float32 { return u.v.Dot(v) }

// Scale returns the vector u * s.
func (u Unit3) Scale(s float32) Vec3 { return u.v.Scale(s) }

// Reflect mirrors u about the surface normal n: u - 2(u·n)n, renormalized.
func (u Unit3) Reflect(n Unit3) Unit3 {
	return u.v.Sub(n.v.Scale(2 * u.v.Dot(n.v))).Unit()
}
