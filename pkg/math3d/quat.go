package math3d

import "github.com/chewxy/math32"

// Quat is an unconstrained quaternion r + i·𝐢 + j·𝐣 + k·𝐤.
type Quat struct {
	R, I, J, K float32
}

// Q creates a new Quat.
func Q(r, i, j, k float32) Quat {
	return Quat{r, i, j, k}
}

// QuatIdent returns the multiplicative identity (1, 0, 0, 0).
func QuatIdent() Quat {
	return Quat{R: 1}
}

// PureQuat embeds v as a quaternion with zero real part.
func PureQuat(v Vec3) Quat {
	return Quat{0, v.X, v.Y, v.Z}
}

// Imag returns the imaginary part as a vector.
func (q Quat) Imag() Vec3 {
	return Vec3{q.I, q.J, q.K}
}

// Add returns the component-wise sum.
func (a Quat) Add(b Quat) Quat {
	return Quat{a.R + b.R, a.I + b.I, a.J + b.J, a.K + b.K}
}

// Sub returns the component-wise difference.
func (a Quat) Sub(b Quat) Quat {
	return Quat{a.R - b.R, a.I - b.I, a.J - b.J, a.K - b.K}
}

// Scale multiplies every component by s.
func (q Quat) Scale(s float32) Quat {
	return Quat{q.R * s, q.I * s, q.J * s, q.K * s}
}

// Div divides every component by s.
func (q Quat) Div(s float32) Quat {
	return Quat{q.R / s, q.I / s, q.J / s, q.K / s}
}

// Mul returns the Hamilton product a·b, with 𝐢𝐣 = 𝐤 and 𝐣𝐢 = -𝐤.
func (a Quat) Mul(b Quat) Quat {
	return Quat{
		R: a.R*b.R - a.I*b.I - a.J*b.J - a.K*b.K,
		I: a.R*b.I + a.I*b.R + a.J*b.K - a.K*b.J,
		J: a.R*b.J - a.I*b.K + a.J*b.R + a.K*b.I,
		K: a.R*b.K + a.I*b.J - a.J*b.I + a.K*b.R,
	}
}

// Conjugate returns (r, -i, -j, -k).
func (q Quat) Conjugate() Quat {
	return Quat{q.R, -q.I, -q.J, -q.K}
}

// LenSq returns the squared norm.
func (q Quat) LenSq() float32 {
	return q.R*q.R + q.I*q.I + q.J*q.J + q.K*q.K
}

// Len returns the norm.
func (q Quat) Len() float32 {
	return math32.Sqrt(q.LenSq())
}

// Inverse returns the multiplicative inverse, conj(q)/|q|². The zero
// quaternion yields NaN components.
func (q Quat) Inverse() Quat {
	return q.Conjugate().Div(q.LenSq())
}

// Normalize returns q scaled to unit norm.
func (q Quat) Normalize() Quat {
	return q.Div(q.Len())
}
