// Package render turns a scene into pixels: it casts one primary ray per
// pixel, shades the hits, and writes the encoded result into a Framebuffer.
package render

import (
	"runtime"

	"github.com/chewxy/math32"
	"github.com/taigrr/lumen/pkg/math3d"
	"golang.org/x/sync/errgroup"
)

// Framebuffer is a row-major grid of pixels of any type P.
type Framebuffer[P any] struct {
	pixels     []P
	width      int
	background P
}

// NewFramebuffer creates a width×height framebuffer filled with background.
func NewFramebuffer[P any](width, height int, background P) *Framebuffer[P] {
	fb := &Framebuffer[P]{
		pixels:     make([]P, width*height),
		width:      width,
		background: background,
	}
	fb.Clear()
	return fb
}

// Width returns the number of columns.
func (fb *Framebuffer[P]) Width() int { return fb.width }

// Height returns the number of rows.
func (fb *Framebuffer[P]) Height() int {
	if fb.width == 0 {
		return 0
	}
	return len(fb.pixels) / fb.width
}

// Background returns the value Clear fills with.
func (fb *Framebuffer[P]) Background() P { return fb.background }

// Pixels returns the backing row-major store.
func (fb *Framebuffer[P]) Pixels() []P { return fb.pixels }

// Row returns row y as a slice into the store.
func (fb *Framebuffer[P]) Row(y int) []P {
	return fb.pixels[y*fb.width : (y+1)*fb.width]
}

// Pixel returns the value at (col, row), or the background if out of bounds.
func (fb *Framebuffer[P]) Pixel(col, row int) P {
	if col < 0 || col >= fb.width || row < 0 || row >= fb.Height() {
		return fb.background
	}
	return fb.pixels[row*fb.width+col]
}

// SetPixel sets the value at (col, row). Out of bounds writes are dropped.
func (fb *Framebuffer[P]) SetPixel(col, row int, p P) {
	if col < 0 || col >= fb.width || row < 0 || row >= fb.Height() {
		return
	}
	fb.pixels[row*fb.width+col] = p
}

// Clear fills every pixel with the background.
func (fb *Framebuffer[P]) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = fb.background
	}
}

// Update calls f for every pixel in the rows×cols region, clamped to the
// buffer, and stores the result where f reports true. Rows are processed
// concurrently, so f must be safe to call from several goroutines; each
// pixel is visited exactly once.
func (fb *Framebuffer[P]) Update(rows, cols Span, f func(row, col int) (P, bool)) {
	r0, r1 := rows.Clamp(fb.Height())
	c0, c1 := cols.Clamp(fb.width)
	if r0 == r1 || c0 == c1 {
		return
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y := r0; y < r1; y++ {
		line := fb.Row(y)[c0:c1]
		g.Go(func() error {
			for i := range line {
				if p, ok := f(y, c0+i); ok {
					line[i] = p
				}
			}
			return nil
		})
	}
	_ = g.Wait()
}

// DrawCircle sets every pixel within radius of center to p. center.X is
// the column and center.Y the row.
func (fb *Framebuffer[P]) DrawCircle(center math3d.Vec2, radius float32, p P) {
	rows := Through(int(math32.Round(center.Y-radius)), int(math32.Round(center.Y+radius)))
	cols := Through(int(math32.Round(center.X-radius)), int(math32.Round(center.X+radius)))
	r2 := radius * radius
	fb.Update(rows, cols, func(row, col int) (P, bool) {
		d := math3d.V2(float32(col), float32(row)).Sub(center)
		return p, d.Dot(d) <= r2
	})
}
