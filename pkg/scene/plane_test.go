package scene

import (
	"testing"

	"github.com/taigrr/lumen/pkg/math3d"
)

func TestPlaneSignedDistance(t *testing.T) {
	// Plane at Z=0, normal pointing +Z
	plane := NewPlane(math3d.UnitZ, 0)

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected float32
	}{
		{"origin", math3d.V3(0, 0, 0), 0},
		{"in front", math3d.V3(0, 0, 5), 5},
		{"behind", math3d.V3(0, 0, -3), -3},
		{"offset XY", math3d.V3(10, -5, 2), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := plane.SignedDistance(tc.point); got != tc.expected {
				t.Errorf("got %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestPlaneHit(t *testing.T) {
	floor := PlaneThrough(math3d.V3(0, -1, 0), math3d.UnitY)

	tests := []struct {
		name string
		ray  Ray
		hit  bool
		time float32
	}{
		{"straight down", NewRay(math3d.Zero3(), math3d.V3(0, -1, 0)), true, 1},
		{"parallel", NewRay(math3d.Zero3(), math3d.V3(1, 0, 0)), false, 0},
		{"away", NewRay(math3d.Zero3(), math3d.V3(0, 1, 0)), false, 0},
		{"from below", NewRay(math3d.V3(0, -3, 0), math3d.V3(0, 1, 0)), true, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, ok := floor.Hit(tc.ray, 0)
			if ok != tc.hit {
				t.Fatalf("hit = %v, want %v", ok, tc.hit)
			}
			if ok && h.Time != tc.time {
				t.Errorf("time = %v, want %v", h.Time, tc.time)
			}
		})
	}

	if floor.Normal(math3d.V3(4, -1, 7)) != math3d.UnitY {
		t.Error("plane normal should be constant")
	}
}
