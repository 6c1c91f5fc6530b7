package math3d

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Versor is a unit quaternion representing a rotation. It is the only type
// that rotates vectors. The zero Versor is the identity rotation.
type Versor struct {
	q Quat
}

// quat returns the stored quaternion, mapping the zero value to identity.
func (v Versor) quat() Quat {
	if v.q == (Quat{}) {
		return QuatIdent()
	}
	return v.q
}

// IsIdentity reports whether v leaves vectors unchanged exactly.
func (v Versor) IsIdentity() bool {
	return v.quat() == QuatIdent()
}

// Euler holds rotation angles in radians about X (roll), Y (pitch) and
// Z (yaw), applied in Z-Y-X order.
type Euler struct {
	Roll, Pitch, Yaw float32
}

// EulerDegrees converts angles given in degrees.
func EulerDegrees(roll, pitch, yaw float32) Euler {
	const rad = math32.Pi / 180
	return Euler{roll * rad, pitch * rad, yaw * rad}
}

// IdentityVersor returns the rotation that leaves vectors unchanged.
func IdentityVersor() Versor {
	return Versor{QuatIdent()}
}

// AsVersor accepts q when its squared norm is 1 within Epsilon.
func AsVersor(q Quat) (Versor, bool) {
	if math32.Abs(q.LenSq()-1) > Epsilon {
		return Versor{}, false
	}
	return Versor{q}, true
}

// VersorFromQuat normalizes q into a Versor.
func VersorFromQuat(q Quat) Versor {
	return Versor{q.Normalize()}
}

// VersorFromAxisAngle returns the rotation by angle radians about axis.
func VersorFromAxisAngle(axis Unit3, angle float32) Versor {
	s, c := math32.Sincos(angle / 2)
	a := axis.Scale(s)
	return Versor{Quat{c, a.X, a.Y, a.Z}}
}

// VersorFromEuler builds the rotation from half-angle sine/cosine products.
func VersorFromEuler(e Euler) Versor {
	sr, cr := math32.Sincos(e.Roll / 2)
	sp, cp := math32.Sincos(e.Pitch / 2)
	sy, cy := math32.Sincos(e.Yaw / 2)

	alpha := Quat{cr * cp * cy, sr * cp * cy, cr * sp * cy, cr * cp * sy}
	beta := Quat{sr * sp * sy, -cr * sp * sy, sr * cp * sy, -sr * sp * cy}
	return Versor{alpha.Add(beta)}
}

// Quat returns the underlying quaternion.
func (v Versor) Quat() Quat { return v.quat() }

// Mul composes rotations: the result applies b first, then a.
func (a Versor) Mul(b Versor) Versor {
	return Versor{a.quat().Mul(b.quat())}
}

// Inverse returns the opposite rotation.
func (v Versor) Inverse() Versor {
	return Versor{v.quat().Conjugate()}
}

// Apply rotates p by the sandwich product q·p·q⁻¹.
func (v Versor) Apply(p Vec3) Vec3 {
	q := v.quat()
	res := q.Mul(PureQuat(p)).Mul(q.Conjugate())
	if debug && math32.Abs(res.R) > 1e-4*(1+p.LenSq()) {
		panic(fmt.Sprintf("math3d: rotation of %v left scalar part %v", p, res.R))
	}
	return res.Imag()
}

// ApplyUnit rotates a direction, renormalizing to absorb rounding.
func (v Versor) ApplyUnit(u Unit3) Unit3 {
	return v.Apply(u.Vec()).Unit()
}

// Mat4 returns the equivalent rotation matrix.
func (v Versor) Mat4() Mat4 {
	q := v.quat()
	r, i, j, k := q.R, q.I, q.J, q.K
	return Mat4{
		{1 - 2*(j*j+k*k), 2 * (i*j - k*r), 2 * (i*k + j*r), 0},
		{2 * (i*j + k*r), 1 - 2*(i*i+k*k), 2 * (j*k - i*r), 0},
		{2 * (i*k - j*r), 2 * (j*k + i*r), 1 - 2*(i*i+j*j), 0},
		{0, 0, 0, 1},
	}
}
