package math3d

// Transform places an object in the world: scale, then rotate, then
// translate.
type Transform struct {
	Position Vec3
	Scale    Vec3
	Rotation Versor
}

// IdentityTransform returns a transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{Scale: Splat3(1), Rotation: IdentityVersor()}
}

// Apply transforms point p.
func (t Transform) Apply(p Vec3) Vec3 {
	return t.Rotation.Apply(p.WideMul(t.Scale)).Add(t.Position)
}

// Mat4 returns the transform as T·R·S.
func (t Transform) Mat4() Mat4 {
	return Translation(t.Position).Mul(t.Rotation.Mat4()).Mul(Scaling(t.Scale))
}
