// Package scenefile reads JSON scene descriptions and builds the scene and
// camera they describe.
package scenefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/models"
	"github.com/taigrr/lumen/pkg/render"
	"github.com/taigrr/lumen/pkg/scene"
)

// ErrInvalid marks a scene entry that cannot be built.
var ErrInvalid = errors.New("invalid scene entry")

// Vec3 is written as a JSON array [x, y, z].
type Vec3 [3]float32

func (v Vec3) vec() math3d.Vec3 { return math3d.V3(v[0], v[1], v[2]) }

// RotDeg is a roll/pitch/yaw rotation in degrees.
type RotDeg struct {
	Roll  float32 `json:"roll"`
	Pitch float32 `json:"pitch"`
	Yaw   float32 `json:"yaw"`
}

// Versor converts the rotation to a unit quaternion.
func (r RotDeg) Versor() math3d.Versor {
	return math3d.VersorFromEuler(math3d.EulerDegrees(r.Roll, r.Pitch, r.Yaw))
}

// CameraCfg holds the projection. Zero fields take the defaults below.
type CameraCfg struct {
	FOVDeg float32 `json:"fovDeg,omitempty"`
	Near   float32 `json:"near,omitempty"`
	Far    float32 `json:"far,omitempty"`
}

// MaterialCfg is a linear RGB color and per-channel reflectiveness.
type MaterialCfg struct {
	Color   Vec3 `json:"color"`
	Reflect Vec3 `json:"reflect,omitempty"`
}

// SphereCfg describes a sphere element.
type SphereCfg struct {
	Center   Vec3        `json:"center"`
	Radius   float32     `json:"radius"`
	Material MaterialCfg `json:"material"`
}

// PlaneCfg describes an infinite plane through Point facing Normal.
type PlaneCfg struct {
	Point    Vec3        `json:"point"`
	Normal   Vec3        `json:"normal"`
	Material MaterialCfg `json:"material"`
}

// LightCfg describes an "ambient" or "point" light. Position and
// Intensity apply to point lights only.
type LightCfg struct {
	Kind      string  `json:"kind"`
	Color     Vec3    `json:"color"`
	Position  Vec3    `json:"position,omitempty"`
	Intensity float32 `json:"intensity,omitempty"`
}

// ModelCfg places a glTF/GLB file in the scene. Relative paths resolve
// against the scene file's directory.
type ModelCfg struct {
	Path     string       `json:"path"`
	Position Vec3         `json:"position,omitempty"`
	Scale    float32      `json:"scale,omitempty"` // defaults 1
	RotDeg   RotDeg       `json:"rotDeg"`
	Merge    bool         `json:"merge,omitempty"`
	Material *MaterialCfg `json:"material,omitempty"` // overrides the file's materials
}

// File is a decoded scene description.
type File struct {
	Camera      CameraCfg   `json:"camera"`
	Eye         Vec3        `json:"eye"`
	Orientation RotDeg      `json:"orientation"`
	Background  Vec3        `json:"background"`
	MaxDepth    int         `json:"maxDepth,omitempty"`
	Spheres     []SphereCfg `json:"spheres,omitempty"`
	Planes      []PlaneCfg  `json:"planes,omitempty"`
	Lights      []LightCfg  `json:"lights"`
	Models      []ModelCfg  `json:"models,omitempty"`

	dir string
}

// Defaults for fields left zero.
const (
	DefaultFOVDeg = 60
	DefaultNear   = 0.1
	DefaultFar    = 100
)

// Load reads a scene file.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sf, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	sf.dir = filepath.Dir(path)
	return sf, nil
}

// Parse decodes a scene description. Unknown keys are rejected so typos
// do not silently fall back to defaults.
func Parse(r io.Reader) (*File, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var sf File
	if err := dec.Decode(&sf); err != nil {
		return nil, err
	}
	sf.applyDefaults()
	return &sf, nil
}

func (f *File) applyDefaults() {
	if f.Camera.FOVDeg == 0 {
		f.Camera.FOVDeg = DefaultFOVDeg
	}
	if f.Camera.Near == 0 {
		f.Camera.Near = DefaultNear
	}
	if f.Camera.Far == 0 {
		f.Camera.Far = DefaultFar
	}
	if f.MaxDepth <= 0 {
		f.MaxDepth = render.DefaultMaxDepth
	}
	for i := range f.Models {
		if f.Models[i].Scale == 0 {
			f.Models[i].Scale = 1
		}
	}
}

// BuildCamera builds the camera, converting the field of view to radians.
func (f *File) BuildCamera() (render.Camera, error) {
	const rad = math32.Pi / 180
	c := f.Camera
	cam, err := render.NewCamera(c.FOVDeg*rad, c.Near, c.Far)
	if err != nil {
		return render.Camera{}, fmt.Errorf("camera: %w", err)
	}
	return cam, nil
}

// Build constructs the scene. loader imports model references and may be
// nil when the file has none.
func (f *File) Build(loader *models.GLTFLoader) (*scene.Scene, error) {
	sc := scene.New()
	sc.Eye = f.Eye.vec()
	sc.Orientation = f.Orientation.Versor()
	sc.Background = f.Background.vec()

	for i, s := range f.Spheres {
		sp, err := s.Build()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		m, err := s.Material.Build()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		sc.Add(sp, m)
	}
	for i, p := range f.Planes {
		pl, err := p.Build()
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		m, err := p.Material.Build()
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		sc.Add(pl, m)
	}
	for i, l := range f.Lights {
		light, err := l.Build()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		sc.AddLight(light)
	}
	for i, mc := range f.Models {
		if loader == nil {
			loader = models.NewGLTFLoader()
		}
		elems, err := mc.Build(loader, f.dir)
		if err != nil {
			return nil, fmt.Errorf("model %d (%s): %w", i, mc.Path, err)
		}
		sc.Elements = append(sc.Elements, elems...)
	}
	return sc, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func finiteVec(v Vec3) bool {
	return v.vec().IsFinite()
}

// Build validates the material. Channels must be finite and
// reflectiveness must lie in [0, 1].
func (m MaterialCfg) Build() (scene.Material, error) {
	if !finiteVec(m.Color) || !finiteVec(m.Reflect) {
		return scene.Material{}, invalid("material is not finite")
	}
	for _, r := range m.Reflect {
		if r < 0 || r > 1 {
			return scene.Material{}, invalid("reflect %v outside [0, 1]", m.Reflect)
		}
	}
	return scene.NewMaterial(m.Color.vec(), m.Reflect.vec()), nil
}

// Build validates the sphere. The radius must be positive and finite.
func (s SphereCfg) Build() (scene.Sphere, error) {
	if !finiteVec(s.Center) {
		return scene.Sphere{}, invalid("center %v is not finite", s.Center)
	}
	if !(s.Radius > 0) || math32.IsInf(s.Radius, 1) {
		return scene.Sphere{}, invalid("radius must be > 0, got %v", s.Radius)
	}
	return scene.NewSphere(s.Center.vec(), s.Radius), nil
}

// Build validates the plane. The normal must be non-zero and is
// normalized.
func (p PlaneCfg) Build() (scene.Plane, error) {
	if !finiteVec(p.Point) || !finiteVec(p.Normal) {
		return scene.Plane{}, invalid("plane is not finite")
	}
	n := p.Normal.vec()
	if n.LenSq() == 0 {
		return scene.Plane{}, invalid("normal must be non-zero")
	}
	return scene.PlaneThrough(p.Point.vec(), n.Unit()), nil
}

// Build validates the light and returns the matching scene light.
func (l LightCfg) Build() (scene.Light, error) {
	if !finiteVec(l.Color) {
		return nil, invalid("color %v is not finite", l.Color)
	}
	switch l.Kind {
	case "ambient":
		return scene.NewAmbient(l.Color.vec()), nil
	case "point":
		if !finiteVec(l.Position) {
			return nil, invalid("position %v is not finite", l.Position)
		}
		if !(l.Intensity >= 0) || math32.IsInf(l.Intensity, 1) {
			return nil, invalid("intensity must be >= 0, got %v", l.Intensity)
		}
		return scene.NewPoint(l.Position.vec(), l.Color.vec(), l.Intensity), nil
	default:
		return nil, invalid("unknown light kind %q", l.Kind)
	}
}

// Transform returns the model placement.
func (mc ModelCfg) Transform() math3d.Transform {
	return math3d.Transform{
		Position: mc.Position.vec(),
		Scale:    math3d.Splat3(mc.Scale),
		Rotation: mc.RotDeg.Versor(),
	}
}

// Build loads the model and returns its bounding-sphere elements.
func (mc ModelCfg) Build(loader *models.GLTFLoader, dir string) ([]scene.Element, error) {
	if mc.Path == "" {
		return nil, invalid("path is empty")
	}
	if !(mc.Scale > 0) {
		return nil, invalid("scale must be > 0, got %v", mc.Scale)
	}
	path := mc.Path
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}

	model, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	model.Transform(mc.Transform().Mat4())

	elems := model.Elements(mc.Merge)
	if mc.Material != nil {
		m, err := mc.Material.Build()
		if err != nil {
			return nil, err
		}
		for i := range elems {
			elems[i].Material = m
		}
	}
	return elems, nil
}
