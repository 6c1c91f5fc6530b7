//go:build cgo

// Package window presents rendered frames in a desktop window.
package window

import (
	"context"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/taigrr/lumen/internal/buildinfo"
)

// Next returns the frame to show for the current tick, or nil to keep
// showing the previous one.
type Next func() (*image.RGBA, error)

// Options configure the window.
type Options struct {
	Title string
	Scale int // window pixels per frame pixel, default 4
	FPS   int // ticks per second, default 24
}

// Show opens a window for width×height frames and blocks until it is
// closed, ESC is pressed, ctx ends, or next fails.
func Show(ctx context.Context, width, height int, opts Options, next Next) error {
	if opts.Scale <= 0 {
		opts.Scale = 4
	}
	if opts.FPS <= 0 {
		opts.FPS = 24
	}
	title := opts.Title
	if title == "" {
		title = "lumen"
	}

	g := &frameGame{ctx: ctx, width: width, height: height, next: next}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(width*opts.Scale, height*opts.Scale)
	ebiten.SetTPS(opts.FPS)
	return ebiten.RunGame(g)
}

type frameGame struct {
	ctx           context.Context
	width, height int
	next          Next

	frame *image.RGBA
	img   *ebiten.Image
	dirty bool
}

func (g *frameGame) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	f, err := g.next()
	if err != nil {
		return err
	}
	if f != nil {
		g.frame, g.dirty = f, true
	}
	return nil
}

func (g *frameGame) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}
	if g.img == nil {
		g.img = ebiten.NewImage(g.width, g.height)
	}
	if g.dirty {
		g.img.WritePixels(g.frame.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *frameGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
