package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/taigrr/lumen/pkg/math3d"
)

// Ramp orders glyphs from darkest to brightest. Ramp[0] is the background.
const Ramp = "`^\",:;Il!i~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"

// Format encodes shaded linear RGB into a pixel type.
type Format[P any] interface {
	// Background is the value a fresh framebuffer is filled with.
	Background() P
	// Encode converts a shaded color.
	Encode(c math3d.Vec3) P
}

// ASCII encodes a color as one glyph of Ramp chosen by its HSV value.
type ASCII struct{}

func (ASCII) Background() byte { return Ramp[0] }

func (ASCII) Encode(c math3d.Vec3) byte { return Glyph(c) }

// Glyph returns the Ramp glyph for the brightness of c.
func Glyph(c math3d.Vec3) byte {
	c = c.Clamp(0, 1)
	_, _, v := colorful.Color{R: float64(c.X), G: float64(c.Y), B: float64(c.Z)}.Hsv()
	return Ramp[int(v*float64(len(Ramp)-1))]
}

// RGB8 encodes a color as opaque 8-bit RGBA.
type RGB8 struct{}

func (RGB8) Background() color.RGBA { return color.RGBA{A: 255} }

func (RGB8) Encode(c math3d.Vec3) color.RGBA { return Quantize(c) }

// Quantize clamps c to [0, 1] and truncates each channel to 8 bits.
func Quantize(c math3d.Vec3) color.RGBA {
	c = c.Clamp(0, 1).Scale(255)
	return color.RGBA{R: uint8(c.X), G: uint8(c.Y), B: uint8(c.Z), A: 255}
}

// RGBF keeps the shaded color unchanged.
type RGBF struct{}

func (RGBF) Background() math3d.Vec3 { return math3d.Vec3{} }

func (RGBF) Encode(c math3d.Vec3) math3d.Vec3 { return c }
