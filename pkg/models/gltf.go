package models

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/qmuntal/gltf"
	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/scene"
)

// ErrEmptyScene is returned when a file holds no positioned geometry.
var ErrEmptyScene = errors.New("no mesh geometry")

// GLTFLoader loads GLTF/GLB files into bounding-sphere meshes.
type GLTFLoader struct {
	// Material is used for primitives without a glTF material.
	Material scene.Material

	// Logger receives notes about skipped primitives. Nil uses the
	// default logger.
	Logger *log.Logger
}

// NewGLTFLoader creates a new GLTF loader with a light gray default
// material.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		Material: scene.Matte(math3d.Splat3(0.8)),
	}
}

// LoadGLB loads a GLTF or GLB file with the default loader.
func LoadGLB(path string) (*Model, error) {
	return NewGLTFLoader().Load(path)
}

// Load opens a GLTF or GLB file and returns its mesh instances in world
// space.
func (l *GLTFLoader) Load(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.LoadDocument(doc, filepath.Base(path))
}

// LoadDocument converts an already decoded document.
func (l *GLTFLoader) LoadDocument(doc *gltf.Document, name string) (*Model, error) {
	model := &Model{Name: name}

	roots, ok := sceneRoots(doc)
	if !ok {
		// No scene graph: meshes sit at the origin untransformed.
		for i, m := range doc.Meshes {
			if err := l.processMesh(doc, m, meshName(m, i), math3d.Identity(), model); err != nil {
				return nil, err
			}
		}
	}
	for _, n := range roots {
		if err := l.walk(doc, n, math3d.Identity(), model, 0); err != nil {
			return nil, err
		}
	}

	if len(model.Meshes) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyScene)
	}
	return model, nil
}

func (l *GLTFLoader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}

// sceneRoots returns the root nodes of the default scene, falling back to
// the first scene.
func sceneRoots(doc *gltf.Document) ([]int, bool) {
	if len(doc.Scenes) == 0 {
		return nil, false
	}
	idx := 0
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		idx = *doc.Scene
	}
	return doc.Scenes[idx].Nodes, true
}

// maxDepth bounds node recursion so cyclic files cannot hang the loader.
const maxDepth = 64

func (l *GLTFLoader) walk(doc *gltf.Document, idx int, parent math3d.Mat4, model *Model, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("node %d: hierarchy deeper than %d", idx, maxDepth)
	}
	if idx < 0 || idx >= len(doc.Nodes) {
		return fmt.Errorf("node %d out of range", idx)
	}
	node := doc.Nodes[idx]
	world := parent.Mul(localMatrix(node))

	if node.Mesh != nil {
		mi := *node.Mesh
		if mi < 0 || mi >= len(doc.Meshes) {
			return fmt.Errorf("node %d: mesh %d out of range", idx, mi)
		}
		name := node.Name
		if name == "" {
			name = meshName(doc.Meshes[mi], mi)
		}
		if err := l.processMesh(doc, doc.Meshes[mi], name, world, model); err != nil {
			return err
		}
	}
	for _, c := range node.Children {
		if err := l.walk(doc, c, world, model, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func meshName(m *gltf.Mesh, i int) string {
	if m.Name != "" {
		return m.Name
	}
	return fmt.Sprintf("mesh%d", i)
}

// localMatrix returns a node's transform from its matrix, or from its
// translation, rotation and scale when no matrix is set.
func localMatrix(n *gltf.Node) math3d.Mat4 {
	if n.Matrix != ([16]float64{}) && n.Matrix != identity16 {
		var v [16]float32
		for i, f := range n.Matrix {
			v[i] = float32(f)
		}
		return math3d.Mat4FromColumnMajor(v)
	}

	t := math3d.IdentityTransform()
	t.Position = math3d.V3(float32(n.Translation[0]), float32(n.Translation[1]), float32(n.Translation[2]))
	if n.Scale != ([3]float64{}) {
		t.Scale = math3d.V3(float32(n.Scale[0]), float32(n.Scale[1]), float32(n.Scale[2]))
	}
	if n.Rotation != ([4]float64{}) {
		// glTF stores quaternions as x, y, z, w.
		r := n.Rotation
		t.Rotation = math3d.VersorFromQuat(math3d.Q(float32(r[3]), float32(r[0]), float32(r[1]), float32(r[2])))
	}
	return t.Mat4()
}

var identity16 = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// processMesh adds one world-space Mesh per primitive.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, name string, world math3d.Mat4, model *Model) error {
	for i, prim := range m.Primitives {
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			l.logger().Debug("skipping primitive without positions", "mesh", name, "primitive", i)
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("mesh %q primitive %d: read positions: %w", name, i, err)
		}
		if len(positions) == 0 {
			l.logger().Debug("skipping empty primitive", "mesh", name, "primitive", i)
			continue
		}

		primName := name
		if len(m.Primitives) > 1 {
			primName = fmt.Sprintf("%s.%d", name, i)
		}
		mesh := NewMesh(primName, l.material(doc, prim))
		mesh.Positions = positions
		mesh.Transform(world)
		model.Meshes = append(model.Meshes, mesh)
	}
	return nil
}

// material maps a glTF PBR material onto the tracer's model. Smooth metals
// reflect, tinted by their base color.
func (l *GLTFLoader) material(doc *gltf.Document, prim *gltf.Primitive) scene.Material {
	if prim.Material == nil || *prim.Material >= len(doc.Materials) {
		return l.Material
	}
	pbr := doc.Materials[*prim.Material].PBRMetallicRoughness
	if pbr == nil {
		return l.Material
	}

	color := math3d.Splat3(1)
	if c := pbr.BaseColorFactor; c != nil {
		color = math3d.V3(float32(c[0]), float32(c[1]), float32(c[2]))
	}
	metallic, roughness := float32(1), float32(1)
	if pbr.MetallicFactor != nil {
		metallic = float32(*pbr.MetallicFactor)
	}
	if pbr.RoughnessFactor != nil {
		roughness = float32(*pbr.RoughnessFactor)
	}
	return scene.NewMaterial(color, color.Scale(metallic*(1-roughness)).Clamp(0, 1))
}

// readVec3Accessor reads Vec3 data from a GLTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float components, got %v", accessor.ComponentType)
	}
	if accessor.BufferView == nil {
		// Sparse-only or zero-filled accessor.
		return make([]math3d.Vec3, accessor.Count), nil
	}

	viewIdx := *accessor.BufferView
	if viewIdx < 0 || viewIdx >= len(doc.BufferViews) {
		return nil, fmt.Errorf("buffer view %d out of range", viewIdx)
	}
	bufferView := doc.BufferViews[viewIdx]
	if bufferView.Buffer < 0 || bufferView.Buffer >= len(doc.Buffers) {
		return nil, fmt.Errorf("buffer %d out of range", bufferView.Buffer)
	}
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.Data == nil {
		return nil, errors.New("buffer has no data")
	}
	data := buffer.Data

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = 12 // 3 floats * 4 bytes
	}
	count := accessor.Count
	if count > 0 && start+(count-1)*stride+12 > len(data) {
		return nil, fmt.Errorf("accessor %d overruns its buffer", accessorIdx)
	}

	result := make([]math3d.Vec3, count)
	for i := range count {
		offset := start + i*stride
		result[i] = math3d.V3(
			readFloat32(data[offset:]),
			readFloat32(data[offset+4:]),
			readFloat32(data[offset+8:]),
		)
	}
	return result, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
