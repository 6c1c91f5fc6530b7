package render

import (
	"sync/atomic"
	"testing"

	"github.com/taigrr/lumen/pkg/math3d"
)

func TestNewFramebuffer(t *testing.T) {
	fb := NewFramebuffer(4, 3, 7)
	if fb.Width() != 4 || fb.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", fb.Width(), fb.Height())
	}
	for i, p := range fb.Pixels() {
		if p != 7 {
			t.Fatalf("pixel %d = %d, want background 7", i, p)
		}
	}
}

func TestFramebufferZeroWidth(t *testing.T) {
	fb := NewFramebuffer(0, 5, 0)
	if fb.Height() != 0 {
		t.Errorf("Height() = %d, want 0", fb.Height())
	}
	fb.Update(All(), All(), func(row, col int) (int, bool) {
		t.Error("f called on empty framebuffer")
		return 0, true
	})
}

func TestSetPixelBounds(t *testing.T) {
	fb := NewFramebuffer(3, 3, 0)
	fb.SetPixel(1, 2, 5)
	fb.SetPixel(-1, 0, 9)
	fb.SetPixel(3, 0, 9)
	fb.SetPixel(0, 3, 9)

	if got := fb.Pixel(1, 2); got != 5 {
		t.Errorf("Pixel(1, 2) = %d, want 5", got)
	}
	if got := fb.Row(2)[1]; got != 5 {
		t.Errorf("Row(2)[1] = %d, want 5", got)
	}
	for _, p := range fb.Pixels() {
		if p == 9 {
			t.Fatal("out of bounds write landed in the buffer")
		}
	}
	if got := fb.Pixel(10, 10); got != 0 {
		t.Errorf("Pixel out of bounds = %d, want background", got)
	}
}

func TestUpdateRegion(t *testing.T) {
	fb := NewFramebuffer(5, 4, -1)
	fb.Update(Range(1, 3), From(2), func(row, col int) (int, bool) {
		return row*10 + col, true
	})

	for row := range 4 {
		for col := range 5 {
			want := -1
			if row >= 1 && row < 3 && col >= 2 {
				want = row*10 + col
			}
			if got := fb.Pixel(col, row); got != want {
				t.Errorf("Pixel(%d, %d) = %d, want %d", col, row, got, want)
			}
		}
	}
}

func TestUpdateSparse(t *testing.T) {
	fb := NewFramebuffer(6, 2, 0)
	fb.Update(All(), All(), func(row, col int) (int, bool) {
		return 1, col%2 == 0
	})
	for i, p := range fb.Pixels() {
		want := 0
		if (i%6)%2 == 0 {
			want = 1
		}
		if p != want {
			t.Errorf("pixel %d = %d, want %d", i, p, want)
		}
	}
}

func TestUpdateVisitsEachPixelOnce(t *testing.T) {
	const w, h = 97, 61
	fb := NewFramebuffer(w, h, 0)
	var calls atomic.Int64
	fb.Update(All(), All(), func(row, col int) (int, bool) {
		calls.Add(1)
		return row*w + col + 1, true
	})

	if got := calls.Load(); got != w*h {
		t.Errorf("f called %d times, want %d", got, w*h)
	}
	for i, p := range fb.Pixels() {
		if p != i+1 {
			t.Fatalf("pixel %d = %d, want %d", i, p, i+1)
		}
	}
}

func TestUpdateOutOfRange(t *testing.T) {
	fb := NewFramebuffer(3, 3, 0)
	fb.Update(From(5), All(), func(row, col int) (int, bool) {
		t.Errorf("f called for (%d, %d)", row, col)
		return 1, true
	})
}

func TestClearIdempotent(t *testing.T) {
	fb := NewFramebuffer(4, 4, 'x')
	fb.Update(All(), All(), func(row, col int) (rune, bool) { return 'o', true })
	fb.Clear()
	first := append([]rune(nil), fb.Pixels()...)
	fb.Clear()
	for i, p := range fb.Pixels() {
		if p != 'x' || p != first[i] {
			t.Fatalf("pixel %d = %q after second Clear", i, p)
		}
	}
}

func TestDrawCircle(t *testing.T) {
	fb := NewFramebuffer(9, 9, '.')
	fb.DrawCircle(math3d.V2(4, 4), 2, '#')

	n := 0
	for _, p := range fb.Pixels() {
		if p == '#' {
			n++
		}
	}
	if n != 13 {
		t.Errorf("circle covers %d pixels, want 13", n)
	}
	for _, p := range [][2]int{{4, 4}, {2, 4}, {6, 4}, {4, 2}, {4, 6}, {5, 5}} {
		if fb.Pixel(p[0], p[1]) != '#' {
			t.Errorf("Pixel(%d, %d) not inside circle", p[0], p[1])
		}
	}
	for _, p := range [][2]int{{2, 2}, {6, 6}, {0, 0}} {
		if fb.Pixel(p[0], p[1]) != '.' {
			t.Errorf("Pixel(%d, %d) inside circle", p[0], p[1])
		}
	}
}

func TestDrawCircleClipped(t *testing.T) {
	fb := NewFramebuffer(4, 4, 0)
	fb.DrawCircle(math3d.V2(0, 0), 3, 1)
	if fb.Pixel(0, 0) != 1 || fb.Pixel(3, 3) != 0 {
		t.Errorf("clipped circle = %v", fb.Pixels())
	}
}

func BenchmarkUpdate(b *testing.B) {
	fb := NewFramebuffer(320, 240, math3d.Vec3{})
	for b.Loop() {
		fb.Update(All(), All(), func(row, col int) (math3d.Vec3, bool) {
			return math3d.V3(float32(col), float32(row), 0), true
		})
	}
}
