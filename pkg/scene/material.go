package scene

import "github.com/taigrr/lumen/pkg/math3d"

// Material describes how a surface colors light.
type Material struct {
	// Color is linear RGB in [0, 1].
	Color math3d.Vec3
	// Reflectiveness is the per-channel share of the next bounce's light
	// the surface keeps, allowing tinted mirrors.
	Reflectiveness math3d.Vec3
}

// NewMaterial creates a material.
func NewMaterial(color, reflectiveness math3d.Vec3) Material {
	return Material{Color: color, Reflectiveness: reflectiveness}
}

// Matte creates a material that does not reflect.
func Matte(color math3d.Vec3) Material {
	return Material{Color: color}
}

// Element pairs geometry with its material.
type Element struct {
	Object   Object
	Material Material
}
