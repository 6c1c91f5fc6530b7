package scenefile

// Default returns the demo scene: a red ball one unit in front of a
// slightly reflective floor, lit by a white point light and dim fill.
func Default() *File {
	f := &File{
		Background: Vec3{0.02, 0.02, 0.05},
		Spheres: []SphereCfg{{
			Center:   Vec3{0, 0, -2},
			Radius:   1,
			Material: MaterialCfg{Color: Vec3{1, 0, 0}},
		}},
		Planes: []PlaneCfg{{
			Point:    Vec3{0, -1, 0},
			Normal:   Vec3{0, 1, 0},
			Material: MaterialCfg{Color: Vec3{0.6, 0.6, 0.6}, Reflect: Vec3{0.3, 0.3, 0.3}},
		}},
		Lights: []LightCfg{
			{Kind: "ambient", Color: Vec3{0.1, 0.1, 0.1}},
			{Kind: "point", Color: Vec3{1, 1, 1}, Position: Vec3{2, 2, 0}, Intensity: 6},
		},
	}
	f.applyDefaults()
	return f
}

// PointLights returns the indices of the point lights in Lights order, the
// same indices Build gives them in the scene.
func (f *File) PointLights() []int {
	var out []int
	for i, l := range f.Lights {
		if l.Kind == "point" {
			out = append(out, i)
		}
	}
	return out
}
