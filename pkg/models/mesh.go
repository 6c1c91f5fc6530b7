// Package models imports glTF geometry as scene elements. The tracer only
// intersects spheres, so each mesh is reduced to its bounding sphere.
package models

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/scene"
)

// Mesh is the world-space point cloud of one glTF mesh instance.
type Mesh struct {
	Name      string
	Positions []math3d.Vec3
	Material  scene.Material

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string, mat scene.Material) *Mesh {
	return &Mesh{Name: name, Material: mat}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Positions) == 0 {
		return
	}

	m.BoundsMin = m.Positions[0]
	m.BoundsMax = m.Positions[0]

	for _, p := range m.Positions[1:] {
		m.BoundsMin = m.BoundsMin.Min(p)
		m.BoundsMax = m.BoundsMax.Max(p)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i, p := range m.Positions {
		m.Positions[i] = mat.MulPoint(p)
	}
	m.CalculateBounds()
}

// BoundingSphere returns the sphere centered on the bounding box that
// contains every vertex.
func (m *Mesh) BoundingSphere() scene.Sphere {
	return boundingSphere(m.Center(), m.Positions)
}

// Element pairs the bounding sphere with the mesh material.
func (m *Mesh) Element() scene.Element {
	return scene.Element{Object: m.BoundingSphere(), Material: m.Material}
}

func boundingSphere(center math3d.Vec3, points []math3d.Vec3) scene.Sphere {
	var r2 float32
	for _, p := range points {
		r2 = math32.Max(r2, p.Sub(center).LenSq())
	}
	return scene.NewSphere(center, math32.Sqrt(r2))
}

// Model is every mesh instance found in one file.
type Model struct {
	Name   string
	Meshes []*Mesh
}

// VertexCount returns the number of vertices across all meshes.
func (m *Model) VertexCount() int {
	n := 0
	for _, mesh := range m.Meshes {
		n += mesh.VertexCount()
	}
	return n
}

// Bounds returns the bounding box of all meshes.
func (m *Model) Bounds() (lo, hi math3d.Vec3) {
	for i, mesh := range m.Meshes {
		if i == 0 {
			lo, hi = mesh.BoundsMin, mesh.BoundsMax
			continue
		}
		lo = lo.Min(mesh.BoundsMin)
		hi = hi.Max(mesh.BoundsMax)
	}
	return lo, hi
}

// Transform applies mat to every mesh.
func (m *Model) Transform(mat math3d.Mat4) {
	for _, mesh := range m.Meshes {
		mesh.Transform(mat)
	}
}

// Elements returns one bounding sphere per mesh. With merge set, the whole
// model becomes a single sphere carrying the first mesh's material.
func (m *Model) Elements(merge bool) []scene.Element {
	if len(m.Meshes) == 0 {
		return nil
	}
	if !merge {
		out := make([]scene.Element, len(m.Meshes))
		for i, mesh := range m.Meshes {
			out[i] = mesh.Element()
		}
		return out
	}

	lo, hi := m.Bounds()
	center := lo.Add(hi).Scale(0.5)
	var points []math3d.Vec3
	for _, mesh := range m.Meshes {
		points = append(points, mesh.Positions...)
	}
	return []scene.Element{{
		Object:   boundingSphere(center, points),
		Material: m.Meshes[0].Material,
	}}
}
