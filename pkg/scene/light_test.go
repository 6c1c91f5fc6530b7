package scene

import (
	"testing"

	"github.com/taigrr/lumen/pkg/math3d"
)

func TestPointLightFalloff(t *testing.T) {
	white := math3d.Splat3(1)
	light := NewPoint(math3d.Zero3(), white, 1)

	tests := []struct {
		name string
		at   math3d.Vec3
		ok   bool
		want math3d.Vec3
	}{
		{"distance 1", math3d.V3(0, 1, 0), true, white},
		{"distance 2", math3d.V3(0, 0, 2), true, math3d.Splat3(0.25)},
		{"distance 4", math3d.V3(-4, 0, 0), true, math3d.Splat3(0.0625)},
		{"below epsilon", math3d.V3(1e4, 0, 0), false, math3d.Vec3{}},
		{"coincident", math3d.Zero3(), false, math3d.Vec3{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := light.Hits(tc.at)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Errorf("contribution = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPointLightColorAndIntensity(t *testing.T) {
	light := NewPoint(math3d.V3(0, 2, 0), math3d.V3(1, 0.5, 0), 8)
	got, ok := light.Hits(math3d.V3(0, 0, 0))
	if !ok || got != math3d.V3(2, 1, 0) {
		t.Errorf("Hits = %v, %v; want (2, 1, 0)", got, ok)
	}

	dark := NewPoint(math3d.Zero3(), math3d.Splat3(1), 0)
	if _, ok := dark.Hits(math3d.V3(1, 0, 0)); ok {
		t.Error("zero-intensity light contributed")
	}
}

func TestAmbientIsConstant(t *testing.T) {
	a := NewAmbient(math3d.V3(0.1, 0.2, 0.3))
	for _, p := range []math3d.Vec3{math3d.Zero3(), math3d.V3(1e6, -3, 2), math3d.V3(0, 0, -1)} {
		c, ok := a.Hits(p)
		if !ok || c != a.Color {
			t.Errorf("Hits(%v) = %v, %v", p, c, ok)
		}
	}
}
