package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	uv "github.com/charmbracelet/ultraviolet"
)

// clearHome clears the screen and moves the cursor to the top left.
const clearHome = "\x1b[2J\x1b[1;1H"

// WriteGlyphs clears the terminal on w and prints fb one line per row.
func WriteGlyphs(w io.Writer, fb *Framebuffer[byte]) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(clearHome); err != nil {
		return err
	}
	for y := range fb.Height() {
		if _, err := bw.Write(fb.Row(y)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteHalfBlocks prints a color framebuffer to w with 24-bit SGR colors,
// two pixel rows per line using ▀. An odd last row pairs with black.
func WriteHalfBlocks(w io.Writer, fb *Framebuffer[color.RGBA]) error {
	bw := bufio.NewWriter(w)
	black := color.RGBA{A: 255}
	for y := 0; y < fb.Height(); y += 2 {
		for x := range fb.Width() {
			top := fb.Pixel(x, y)
			bot := black
			if y+1 < fb.Height() {
				bot = fb.Pixel(x, y+1)
			}
			fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
		if _, err := bw.WriteString("\x1b[0m\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DrawGlyphs copies a glyph framebuffer onto scr, one cell per pixel,
// anchored at area.Min.
func DrawGlyphs(scr uv.Screen, area uv.Rectangle, fb *Framebuffer[byte]) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		y := row - area.Min.Y
		if y >= fb.Height() {
			break
		}
		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width() {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: string(fb.Pixel(x, y)),
				Width:   1,
			})
		}
	}
}

// DrawHalfBlocks draws a color framebuffer onto scr using ▀ with the top
// pixel as foreground and the bottom pixel as background, so each cell
// shows two rows. fb should be twice as tall as area.
func DrawHalfBlocks(scr uv.Screen, area uv.Rectangle, fb *Framebuffer[color.RGBA]) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		top := (row - area.Min.Y) * 2
		if top >= fb.Height() {
			break
		}
		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width() {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: opaque(fb.Pixel(x, top)),
					Bg: opaque(fb.Pixel(x, top+1)),
				},
			})
		}
	}
}

// opaque returns nil for fully transparent pixels so the terminal's own
// color shows through.
func opaque(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}
