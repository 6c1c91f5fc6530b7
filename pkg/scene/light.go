package scene

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/lumen/pkg/math3d"
)

// Light contributes color at points in the scene.
type Light interface {
	// Hits returns the RGB contribution at p, or false when the light
	// adds nothing there.
	Hits(p math3d.Vec3) (math3d.Vec3, bool)
}

// Ambient is uniform fill light.
type Ambient struct {
	Color math3d.Vec3
}

// NewAmbient creates an ambient light.
func NewAmbient(color math3d.Vec3) Ambient {
	return Ambient{Color: color}
}

// Hits always returns the ambient color.
func (a Ambient) Hits(math3d.Vec3) (math3d.Vec3, bool) {
	return a.Color, true
}

// Point is an omnidirectional light with inverse-square falloff.
type Point struct {
	Position  math3d.Vec3
	Color     math3d.Vec3
	Intensity float32
}

// NewPoint creates a point light.
func NewPoint(position, color math3d.Vec3, intensity float32) Point {
	return Point{Position: position, Color: color, Intensity: intensity}
}

// Hits returns Color·Intensity/dist². Contributions at or below
// math3d.Epsilon, and the infinite one at the light's own position, count
// as nothing.
func (l Point) Hits(p math3d.Vec3) (math3d.Vec3, bool) {
	intensity := l.Intensity / p.Sub(l.Position).LenSq()
	if !(intensity > math3d.Epsilon) || math32.IsInf(intensity, 1) {
		return math3d.Vec3{}, false
	}
	return l.Color.Scale(intensity), true
}
