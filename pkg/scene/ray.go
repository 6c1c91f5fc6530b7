// Package scene holds the geometry, materials and lights that rays are
// traced against.
package scene

import "github.com/taigrr/lumen/pkg/math3d"

// Ray is a half-line with a unit-length direction.
type Ray struct {
	Origin    math3d.Vec3
	Direction math3d.Unit3
}

// NewRay creates a ray, normalizing dir.
func NewRay(origin, dir math3d.Vec3) Ray {
	return Ray{Origin: origin, Direction: dir.Unit()}
}

// At returns the point origin + t·direction.
func (r Ray) At(t float32) math3d.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// HitInfo describes where a ray first touches a surface.
type HitInfo struct {
	Time     float32     // ray parameter, never negative
	Position math3d.Vec3 // Origin + Time·Direction
}

func (r Ray) hitAt(t float32) HitInfo {
	return HitInfo{Time: t, Position: r.At(t)}
}
