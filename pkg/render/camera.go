package render

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/taigrr/lumen/pkg/math3d"
)

// ErrClipPlanes is returned for a camera whose near plane is not in front
// of its far plane.
var ErrClipPlanes = errors.New("near plane must be closer than far plane")

// Camera is a perspective projection looking down -Z from the origin.
// Placement in the world belongs to the scene.
type Camera struct {
	fov  float32 // vertical field of view in radians
	near float32
	far  float32
}

// NewCamera creates a camera. fov is the vertical field of view in radians
// and must lie in (0, π); near must be less than far.
func NewCamera(fov, near, far float32) (Camera, error) {
	if !(near < far) || math32.IsInf(far, 0) || math32.IsInf(near, 0) {
		return Camera{}, fmt.Errorf("camera near=%v far=%v: %w", near, far, ErrClipPlanes)
	}
	if !(fov > 0 && fov < math32.Pi) {
		return Camera{}, fmt.Errorf("camera fov %v outside (0, π)", fov)
	}
	return Camera{fov: fov, near: near, far: far}, nil
}

// MustCamera is like NewCamera but panics on invalid parameters.
func MustCamera(fov, near, far float32) Camera {
	c, err := NewCamera(fov, near, far)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCamera returns a 60° camera with clip planes at 0.1 and 100.
func DefaultCamera() Camera {
	return Camera{fov: math32.Pi / 3, near: 0.1, far: 100}
}

// FOV returns the vertical field of view in radians.
func (c Camera) FOV() float32 { return c.fov }

// Near returns the near clip distance.
func (c Camera) Near() float32 { return c.near }

// Far returns the far clip distance.
func (c Camera) Far() float32 { return c.far }

// Transform returns the perspective projection matrix for the given
// width/height aspect ratio.
func (c Camera) Transform(aspect float32) math3d.Mat4 {
	return math3d.Perspective(c.fov, aspect, c.near, c.far)
}

// RayDirection returns the view-space direction through pixel (col, row)
// of a width×height buffer.
func (c Camera) RayDirection(col, row, width, height int, aspect float32) math3d.Unit3 {
	return Unproject(c.Transform(aspect), NDC(col, row, width, height))
}

// NDC maps a pixel to normalized device coordinates 2·(col, row)/(w, h) - 1.
func NDC(col, row, width, height int) math3d.Vec2 {
	p := math3d.V2(float32(col), float32(row))
	return p.Scale(2).WideDiv(math3d.V2(float32(width), float32(height))).Sub(math3d.V2(1, 1))
}

// Unproject inverts the x/y scaling of projection m for an NDC point and
// returns the direction toward it. NDC y grows downward with the pixel
// rows, so it is flipped to keep +Y up in view space.
func Unproject(m math3d.Mat4, ndc math3d.Vec2) math3d.Unit3 {
	return math3d.V3(ndc.X/m.At(0, 0), -ndc.Y/m.At(1, 1), -1).Unit()
}

// Project maps a view-space point to pixel coordinates of a width×height
// buffer. It reports false for points behind the camera.
func (c Camera) Project(p math3d.Vec3, width, height int, aspect float32) (math3d.Vec2, bool) {
	clip := c.Transform(aspect).MulVec4(p.Vec4(1))
	if !(clip.W > 0) {
		return math3d.Vec2{}, false
	}
	ndc := clip.PerspectiveDivide()
	// Undo the y flip of Unproject.
	return math3d.V2(
		(ndc.X+1)*float32(width)/2,
		(1-ndc.Y)*float32(height)/2,
	), true
}
