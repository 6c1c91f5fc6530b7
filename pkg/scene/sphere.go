package scene

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/lumen/pkg/math3d"
)

// Sphere is a solid ball.
type Sphere struct {
	Center math3d.Vec3
	Radius float32
}

// NewSphere creates a sphere.
func NewSphere(center math3d.Vec3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Hit solves the line-sphere intersection and keeps the nearest root at or
// after tMin. When the near root is too close, as for a ray leaving the
// inside wall, the far root is used.
func (s Sphere) Hit(r Ray, tMin float32) (HitInfo, bool) {
	d := r.Origin.Sub(s.Center)
	alpha := r.Direction.Dot(d)
	delta := alpha*alpha - (d.Dot(d) - s.Radius*s.Radius)

	// Misses, plus NaN from degenerate input.
	if !(delta >= 0) || math32.IsInf(delta, 1) {
		return HitInfo{}, false
	}

	sq := math32.Sqrt(delta)
	t := -alpha - sq
	if !(t >= tMin) {
		t = -alpha + sq
		if !(t >= tMin) {
			return HitInfo{}, false
		}
	}
	return r.hitAt(t), true
}

// Normal returns unit(p - center).
func (s Sphere) Normal(p math3d.Vec3) math3d.Unit3 {
	return p.Sub(s.Center).Unit()
}
