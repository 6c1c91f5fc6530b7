package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/taigrr/lumen/pkg/math3d"
)

// ToImage copies an 8-bit framebuffer into an image.
func ToImage(fb *Framebuffer[color.RGBA]) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	for y := range fb.Height() {
		for x, p := range fb.Row(y) {
			img.SetRGBA(x, y, p)
		}
	}
	return img
}

// ToImage16 converts a float framebuffer into a 16-bit image, clamping
// each channel to [0, 1].
func ToImage16(fb *Framebuffer[math3d.Vec3]) *image.RGBA64 {
	img := image.NewRGBA64(image.Rect(0, 0, fb.Width(), fb.Height()))
	for y := range fb.Height() {
		for x, p := range fb.Row(y) {
			c := p.Clamp(0, 1).Scale(0xffff)
			img.SetRGBA64(x, y, color.RGBA64{
				R: uint16(c.X),
				G: uint16(c.Y),
				B: uint16(c.Z),
				A: 0xffff,
			})
		}
	}
	return img
}

// Upscale enlarges img by an integer factor with nearest-neighbor sampling
// so pixels stay sharp. Factors below 2 return img unchanged.
func Upscale(img image.Image, scale int) image.Image {
	if scale < 2 {
		return img
	}
	b := img.Bounds()
	return resize.Resize(uint(b.Dx()*scale), uint(b.Dy()*scale), img, resize.NearestNeighbor)
}

// SaveImage writes img to path, upscaled by scale. The format follows the
// file extension.
func SaveImage(img image.Image, path string, scale int) error {
	if err := imaging.Save(Upscale(img, scale), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes img to w as PNG, upscaled by scale.
func EncodePNG(w io.Writer, img image.Image, scale int) error {
	return imaging.Encode(w, Upscale(img, scale), imaging.PNG)
}
