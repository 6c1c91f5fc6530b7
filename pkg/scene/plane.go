package scene

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/lumen/pkg/math3d"
)

// Plane is the infinite surface n·p + d = 0.
type Plane struct {
	normal math3d.Unit3
	d      float32
}

// NewPlane creates the plane n·p + d = 0.
func NewPlane(n math3d.Unit3, d float32) Plane {
	return Plane{normal: n, d: d}
}

// PlaneThrough creates the plane containing point with the given normal.
func PlaneThrough(point math3d.Vec3, n math3d.Unit3) Plane {
	return Plane{normal: n, d: -n.Dot(point)}
}

// SignedDistance returns the signed distance from the plane to p.
// Positive = in front (same side as normal), negative = behind.
func (p Plane) SignedDistance(point math3d.Vec3) float32 {
	return p.normal.Dot(point) + p.d
}

// Hit intersects r with the plane at or after tMin. Rays parallel to the
// plane never hit.
func (p Plane) Hit(r Ray, tMin float32) (HitInfo, bool) {
	denom := p.normal.Dot(r.Direction.Vec())
	if denom == 0 {
		return HitInfo{}, false
	}
	t := -p.SignedDistance(r.Origin) / denom
	if !(t >= tMin) || math32.IsInf(t, 1) {
		return HitInfo{}, false
	}
	return r.hitAt(t), true
}

// Normal returns the plane normal; it is the same everywhere.
func (p Plane) Normal(math3d.Vec3) math3d.Unit3 {
	return p.normal
}
