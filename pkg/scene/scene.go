package scene

import "github.com/taigrr/lumen/pkg/math3d"

// MinHitTime is the smallest hit time Nearest accepts. Reflected rays start
// on the surface they left; this keeps them from hitting it again.
const MinHitTime float32 = 1e-4

// Scene is the set of elements and lights a render traces against. It must
// not be modified while a render is running.
type Scene struct {
	Elements []Element
	Lights   []Light

	// Background is the color of primary rays that hit nothing.
	Background math3d.Vec3

	// Eye and Orientation place the viewer. Rays start at Eye and are
	// rotated by Orientation.
	Eye         math3d.Vec3
	Orientation math3d.Versor
}

// New creates an empty scene viewed from the origin down -Z.
func New() *Scene {
	return &Scene{Orientation: math3d.IdentityVersor()}
}

// Add appends an element and returns its index.
func (s *Scene) Add(o Object, m Material) int {
	s.Elements = append(s.Elements, Element{Object: o, Material: m})
	return len(s.Elements) - 1
}

// AddLight appends a light and returns its index.
func (s *Scene) AddLight(l Light) int {
	s.Lights = append(s.Lights, l)
	return len(s.Lights) - 1
}

// Nearest scans the elements in insertion order and returns the one with
// the smallest hit time. On ties the earlier element wins.
func (s *Scene) Nearest(r Ray) (*Element, HitInfo, bool) {
	var (
		best  *Element
		bestH HitInfo
	)
	for i := range s.Elements {
		e := &s.Elements[i]
		h, ok := e.Object.Hit(r, MinHitTime)
		if !ok {
			continue
		}
		if best == nil || h.Time < bestH.Time {
			best, bestH = e, h
		}
	}
	return best, bestH, best != nil
}

// Irradiance sums every light's contribution at p.
func (s *Scene) Irradiance(p math3d.Vec3) math3d.Vec3 {
	var sum math3d.Vec3
	for _, l := range s.Lights {
		if c, ok := l.Hits(p); ok {
			sum = sum.Add(c)
		}
	}
	return sum
}
