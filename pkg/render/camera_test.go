package render

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/taigrr/lumen/pkg/math3d"
)

func TestNewCamera(t *testing.T) {
	tests := []struct {
		name           string
		fov, near, far float32
		wantErr        bool
		wantClipPlanes bool
	}{
		{"default", math32.Pi / 3, 0.1, 100, false, false},
		{"near equals far", 1, 5, 5, true, true},
		{"near beyond far", 1, 10, 1, true, true},
		{"NaN near", 1, math32.NaN(), 1, true, true},
		{"infinite far", 1, 0.1, math32.Inf(1), true, true},
		{"zero fov", 0, 0.1, 100, true, false},
		{"fov of pi", math32.Pi, 0.1, 100, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCamera(tt.fov, tt.near, tt.far)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewCamera() error = %v, wantErr %v", err, tt.wantErr)
			}
			if errors.Is(err, ErrClipPlanes) != tt.wantClipPlanes {
				t.Errorf("error %v: ErrClipPlanes match = %v, want %v", err, !tt.wantClipPlanes, tt.wantClipPlanes)
			}
			if err == nil && (c.FOV() != tt.fov || c.Near() != tt.near || c.Far() != tt.far) {
				t.Errorf("camera = %+v", c)
			}
		})
	}
}

func TestMustCameraPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCamera did not panic")
		}
	}()
	MustCamera(1, 2, 1)
}

func TestCameraTransform(t *testing.T) {
	c := DefaultCamera()
	got := c.Transform(2)
	want := math3d.Perspective(math32.Pi/3, 2, 0.1, 100)
	if got != want {
		t.Errorf("Transform(2) = %v, want %v", got, want)
	}
}

func TestNDC(t *testing.T) {
	tests := []struct {
		col, row, w, h int
		want           math3d.Vec2
	}{
		{0, 0, 4, 4, math3d.V2(-1, -1)},
		{2, 2, 4, 4, math3d.V2(0, 0)},
		{3, 1, 4, 2, math3d.V2(0.5, 0)},
	}
	for _, tt := range tests {
		if got := NDC(tt.col, tt.row, tt.w, tt.h); got != tt.want {
			t.Errorf("NDC(%d, %d, %d, %d) = %v, want %v", tt.col, tt.row, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRayDirection(t *testing.T) {
	c := DefaultCamera()

	center := c.RayDirection(8, 8, 16, 16, 1).Vec()
	if center != math3d.V3(0, 0, -1) {
		t.Errorf("center direction = %v, want (0, 0, -1)", center)
	}

	// Row 0 is the top of the image, so it looks up.
	top := c.RayDirection(8, 0, 16, 16, 1).Vec()
	if !(top.Y > 0) {
		t.Errorf("top row direction %v does not point up", top)
	}
	left := c.RayDirection(0, 8, 16, 16, 1).Vec()
	if !(left.X < 0) {
		t.Errorf("left column direction %v does not point left", left)
	}

	// The top edge sits at half the vertical field of view.
	angle := math32.Atan2(top.Y, -top.Z)
	if math32.Abs(angle-c.FOV()/2) > 1e-5 {
		t.Errorf("top edge angle = %v, want %v", angle, c.FOV()/2)
	}
}

func TestUnprojectRoundTrip(t *testing.T) {
	m := math3d.Perspective(1.1, 1.5, 0.1, 100)
	ndc := math3d.V2(0.3, -0.7)
	dir := Unproject(m, ndc).Vec()

	clip := m.MulVec4(dir.Scale(10).Vec4(1)).PerspectiveDivide()
	if math32.Abs(clip.X-ndc.X) > 1e-5 || math32.Abs(clip.Y+ndc.Y) > 1e-5 {
		t.Errorf("reprojected %v, want (%v, %v)", clip, ndc.X, -ndc.Y)
	}
}

func TestProjectInvertsRayDirection(t *testing.T) {
	c := DefaultCamera()
	const w, h = 40, 30
	aspect := float32(w) / h
	for _, px := range [][2]int{{0, 0}, {20, 15}, {33, 4}, {7, 29}} {
		dir := c.RayDirection(px[0], px[1], w, h, aspect)
		got, ok := c.Project(dir.Scale(5), w, h, aspect)
		if !ok {
			t.Fatalf("Project(%v) behind camera", dir)
		}
		if math32.Abs(got.X-float32(px[0])) > 1e-3 || math32.Abs(got.Y-float32(px[1])) > 1e-3 {
			t.Errorf("Project(RayDirection(%d, %d)) = %v", px[0], px[1], got)
		}
	}
	if _, ok := c.Project(math3d.V3(0, 0, 1), w, h, aspect); ok {
		t.Error("point behind the camera projected")
	}
}
