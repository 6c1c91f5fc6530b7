package render

import (
	"bytes"
	"image/color"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func TestWriteGlyphs(t *testing.T) {
	fb := NewFramebuffer(3, 2, byte('.'))
	fb.SetPixel(1, 0, '#')
	fb.SetPixel(2, 1, '@')

	var buf bytes.Buffer
	if err := WriteGlyphs(&buf, fb); err != nil {
		t.Fatalf("WriteGlyphs() error = %v", err)
	}
	want := "\x1b[2J\x1b[1;1H.#.\n..@\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteGlyphs() = %q, want %q", got, want)
	}
}

func TestDrawGlyphs(t *testing.T) {
	fb := NewFramebuffer(4, 2, byte('.'))
	fb.SetPixel(0, 0, '$')

	scr := uv.NewScreenBuffer(10, 5)
	DrawGlyphs(scr, uv.Rect(2, 1, 8, 4), fb)

	if c := scr.CellAt(2, 1); c == nil || c.Content != "$" {
		t.Errorf("cell (2, 1) = %+v, want $", c)
	}
	if c := scr.CellAt(5, 2); c == nil || c.Content != "." {
		t.Errorf("cell (5, 2) = %+v, want .", c)
	}
	// The framebuffer is narrower than the area.
	if c := scr.CellAt(6, 1); c != nil && c.Content == "." {
		t.Errorf("cell (6, 1) drawn past the framebuffer")
	}
}

func TestDrawHalfBlocks(t *testing.T) {
	top := color.RGBA{255, 0, 0, 255}
	bottom := color.RGBA{0, 0, 255, 255}
	fb := NewFramebuffer(2, 4, color.RGBA{})
	fb.SetPixel(0, 0, top)
	fb.SetPixel(0, 1, bottom)

	scr := uv.NewScreenBuffer(2, 2)
	DrawHalfBlocks(scr, uv.Rect(0, 0, 2, 2), fb)

	c := scr.CellAt(0, 0)
	if c == nil || c.Content != "▀" {
		t.Fatalf("cell (0, 0) = %+v, want half block", c)
	}
	if c.Style.Fg != top || c.Style.Bg != bottom {
		t.Errorf("cell (0, 0) colors = %v/%v, want %v/%v", c.Style.Fg, c.Style.Bg, top, bottom)
	}
	if c := scr.CellAt(1, 1); c == nil || c.Style.Fg != nil || c.Style.Bg != nil {
		t.Errorf("transparent cell (1, 1) = %+v, want no colors", c)
	}
}

func TestWriteHalfBlocks(t *testing.T) {
	fb := NewFramebuffer(1, 3, color.RGBA{A: 255})
	fb.SetPixel(0, 0, color.RGBA{255, 0, 0, 255})
	fb.SetPixel(0, 1, color.RGBA{0, 0, 255, 255})
	fb.SetPixel(0, 2, color.RGBA{0, 255, 0, 255})

	var buf bytes.Buffer
	if err := WriteHalfBlocks(&buf, fb); err != nil {
		t.Fatalf("WriteHalfBlocks() error = %v", err)
	}
	want := "\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m▀\x1b[0m\n" +
		"\x1b[38;2;0;255;0m\x1b[48;2;0;0;0m▀\x1b[0m\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteHalfBlocks() = %q, want %q", got, want)
	}
}
