package render

import (
	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/scene"
)

// DefaultMaxDepth is the bounce limit used when none is given.
const DefaultMaxDepth = 4

// Renderer traces a scene through a camera into framebuffers of pixel
// type P.
type Renderer[P any] struct {
	Scene  *scene.Scene
	Camera Camera
	Format Format[P]

	// MaxDepth bounds the number of surfaces a path may shade. 1 disables
	// reflections.
	MaxDepth int

	// PixelAspect is the width/height ratio of one pixel. Terminal cells
	// are about twice as tall as they are wide, so glyph output uses 0.5.
	PixelAspect float32
}

// NewRenderer creates a renderer with the default depth and square pixels.
func NewRenderer[P any](sc *scene.Scene, cam Camera, format Format[P]) *Renderer[P] {
	return &Renderer[P]{
		Scene:       sc,
		Camera:      cam,
		Format:      format,
		MaxDepth:    DefaultMaxDepth,
		PixelAspect: 1,
	}
}

// NewFramebuffer creates a framebuffer filled with the format's background.
func (r *Renderer[P]) NewFramebuffer(width, height int) *Framebuffer[P] {
	return NewFramebuffer(width, height, r.Format.Background())
}

// Aspect returns the projection aspect ratio for a width×height buffer.
func (r *Renderer[P]) Aspect(width, height int) float32 {
	pa := r.PixelAspect
	if pa <= 0 {
		pa = 1
	}
	return float32(width) / float32(height) * pa
}

// Render traces one primary ray per pixel of fb. Every pixel is written.
func (r *Renderer[P]) Render(fb *Framebuffer[P]) {
	w, h := fb.Width(), fb.Height()
	if w == 0 || h == 0 {
		return
	}
	m := r.Camera.Transform(r.Aspect(w, h))
	eye := r.Scene.Eye
	rot := r.Scene.Orientation
	rotate := !rot.IsIdentity()

	fb.Update(All(), All(), func(row, col int) (P, bool) {
		dir := Unproject(m, NDC(col, row, w, h))
		if rotate {
			dir = rot.ApplyUnit(dir)
		}
		return r.Format.Encode(r.Trace(scene.Ray{Origin: eye, Direction: dir})), true
	})
}

// Trace follows ray through up to MaxDepth surfaces and returns the
// accumulated color. Each hit adds its lit color weighted by the product of
// the reflectiveness of the surfaces before it. A primary ray that misses
// everything returns the scene background; a bounce that escapes ends the
// path.
func (r *Renderer[P]) Trace(ray scene.Ray) math3d.Vec3 {
	var color math3d.Vec3
	throughput := math3d.Splat3(1)
	for i := range r.MaxDepth {
		e, hit, ok := r.Scene.Nearest(ray)
		if !ok {
			if i == 0 {
				return r.Scene.Background
			}
			break
		}

		lit := r.Scene.Irradiance(hit.Position).WideMul(e.Material.Color)
		color = color.Add(throughput.WideMul(lit))
		throughput = throughput.WideMul(e.Material.Reflectiveness)
		if throughput == (math3d.Vec3{}) || i == r.MaxDepth-1 {
			break
		}

		n := e.Object.Normal(hit.Position)
		ray = scene.Ray{Origin: hit.Position, Direction: ray.Direction.Reflect(n)}
	}
	return color
}

// ProjectWorld maps a world-space point to pixel coordinates of a
// width×height buffer as seen from the scene's eye.
func (r *Renderer[P]) ProjectWorld(p math3d.Vec3, width, height int) (math3d.Vec2, bool) {
	v := r.Scene.Orientation.Inverse().Apply(p.Sub(r.Scene.Eye))
	return r.Camera.Project(v, width, height, r.Aspect(width, height))
}
