package scene

import "github.com/taigrr/lumen/pkg/math3d"

// Object is anything a ray can hit.
type Object interface {
	// Hit returns the nearest intersection of r with the object whose time
	// is at least tMin, if any. tMin is never negative.
	Hit(r Ray, tMin float32) (HitInfo, bool)
	// Normal returns the outward surface normal at p, a point on the
	// surface.
	Normal(p math3d.Vec3) math3d.Unit3
}
