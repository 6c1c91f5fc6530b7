package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/log"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/chewxy/math32"
	"github.com/taigrr/lumen/internal/window"
	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/render"
	"github.com/taigrr/lumen/pkg/scene"
	"github.com/taigrr/lumen/pkg/scenefile"
)

// Orbit speeds in radians per second.
const (
	orbitSpeed    = 1.0
	orbitSpeedMax = 4.0
	orbitStep     = 0.5
)

// orbit circles the first point light around the first sphere. Its angular
// speed chases a target through a critically damped spring, so speed
// changes and pauses ease in and out.
type orbit struct {
	sc    *scene.Scene
	light int // index into sc.Lights, -1 when there is no point light

	pivot          math3d.Vec3
	radius, height float32

	angle  float64
	speed  float64
	accel  float64 // spring velocity of speed
	target float64
	paused bool
	dt     float64
	spring harmonica.Spring
}

func newOrbit(sf *scenefile.File, sc *scene.Scene, fps int) *orbit {
	if fps <= 0 {
		fps = 24
	}
	o := &orbit{
		sc:     sc,
		light:  -1,
		pivot:  math3d.V3(0, 0, -3),
		target: orbitSpeed,
		dt:     1 / float64(fps),
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
	for _, e := range sc.Elements {
		if s, ok := e.Object.(scene.Sphere); ok {
			o.pivot = s.Center
			break
		}
	}
	for _, i := range sf.PointLights() {
		if _, ok := sc.Lights[i].(scene.Point); ok {
			o.light = i
			break
		}
	}
	if o.light < 0 {
		return o
	}

	d := sc.Lights[o.light].(scene.Point).Position.Sub(o.pivot)
	o.radius = math32.Sqrt(d.X*d.X + d.Z*d.Z)
	o.height = d.Y
	o.angle = math.Atan2(float64(d.Z), float64(d.X))
	if o.radius < 1e-3 {
		o.radius = 2
	}
	return o
}

// Position returns the light position for the current angle.
func (o *orbit) Position() math3d.Vec3 {
	s, c := math.Sincos(o.angle)
	return o.pivot.Add(math3d.V3(float32(c)*o.radius, o.height, float32(s)*o.radius))
}

// Step advances one frame and moves the light.
func (o *orbit) Step() {
	if o.light < 0 {
		return
	}
	target := o.target
	if o.paused {
		target = 0
	}
	o.speed, o.accel = o.spring.Update(o.speed, o.accel, target)
	o.angle += o.speed * o.dt

	p := o.sc.Lights[o.light].(scene.Point)
	p.Position = o.Position()
	o.sc.Lights[o.light] = p
}

func (o *orbit) Faster() { o.target = min(o.target+orbitStep, orbitSpeedMax) }
func (o *orbit) Slower() { o.target = max(o.target-orbitStep, -orbitSpeedMax) }

func (o *orbit) TogglePause() { o.paused = !o.paused }

// frameRenderer owns the renderer and framebuffer for the current terminal
// size, in glyph or half-block mode.
type frameRenderer struct {
	color  bool
	marker *orbit // draws the light position when set
	area   uv.Rectangle
	ascii  *render.Renderer[byte]
	glyphs *render.Framebuffer[byte]
	rgb    *render.Renderer[color.RGBA]
	blocks *render.Framebuffer[color.RGBA]
}

func newFrameRenderer(sc *scene.Scene, cam render.Camera, depth int, useColor bool) *frameRenderer {
	f := &frameRenderer{color: useColor}
	if useColor {
		f.rgb = render.NewRenderer(sc, cam, render.Format[color.RGBA](render.RGB8{}))
		f.rgb.MaxDepth = depth
	} else {
		f.ascii = render.NewRenderer(sc, cam, render.Format[byte](render.ASCII{}))
		f.ascii.MaxDepth = depth
		f.ascii.PixelAspect = glyphAspect
	}
	return f
}

func (f *frameRenderer) resize(width, height int) {
	f.area = uv.Rect(0, 0, width, height)
	if f.color {
		f.blocks = f.rgb.NewFramebuffer(width, height*2)
	} else {
		f.glyphs = f.ascii.NewFramebuffer(width, height)
	}
}

func (f *frameRenderer) draw(scr uv.Screen) {
	if f.color {
		f.rgb.Render(f.blocks)
		if f.marker != nil && f.marker.light >= 0 {
			if p, ok := f.rgb.ProjectWorld(f.marker.Position(), f.blocks.Width(), f.blocks.Height()); ok {
				f.blocks.DrawCircle(p, 1.5, color.RGBA{255, 255, 160, 255})
			}
		}
		render.DrawHalfBlocks(scr, f.area, f.blocks)
		return
	}
	f.ascii.Render(f.glyphs)
	if f.marker != nil && f.marker.light >= 0 {
		if p, ok := f.ascii.ProjectWorld(f.marker.Position(), f.glyphs.Width(), f.glyphs.Height()); ok {
			f.glyphs.DrawCircle(p, 0.5, '*')
		}
	}
	render.DrawGlyphs(scr, f.area, f.glyphs)
}

// animate runs the full-screen loop until Esc, ctrl+c, a signal, or the
// frame limit.
func animate(ctx context.Context, logger *log.Logger, sc *scene.Scene, cam render.Camera, depth int, opts *options, o *orbit) error {
	t := uv.DefaultTerminal()

	width, height, err := t.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := t.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	t.EnterAltScreen()
	t.HideCursor()
	t.Resize(width, height)
	defer func() {
		t.ExitAltScreen()
		t.ShowCursor()
		if err := t.Shutdown(context.Background()); err != nil {
			logger.Warn("terminal shutdown", "err", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan uv.Event, 16)
	go func() {
		for ev := range t.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	fr := newFrameRenderer(sc, cam, depth, opts.color)
	if opts.showLight {
		fr.marker = o
	}
	fr.resize(width, height)

	fps := max(opts.fps, 1)
	budget := time.Second / time.Duration(fps)
	ticker := time.NewTicker(budget)
	defer ticker.Stop()

	for frame := 0; opts.frames == 0 || frame < opts.frames; {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				t.Erase()
				t.Resize(ev.Width, ev.Height)
				fr.resize(ev.Width, ev.Height)
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c", "q"):
					return nil
				case ev.MatchString("left", "a"):
					o.Slower()
				case ev.MatchString("right", "d"):
					o.Faster()
				case ev.MatchString("space"):
					o.TogglePause()
				}
			}

		case <-ticker.C:
			start := time.Now()
			o.Step()
			fr.draw(t)
			if err := t.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
			if took := time.Since(start); took > budget {
				logger.Debug("frame over budget", "frame", frame, "took", took, "budget", budget)
			}
			frame++
		}
	}
	return nil
}

// showWindow presents frames in a desktop window, orbiting the light when
// animating.
func showWindow(ctx context.Context, sc *scene.Scene, cam render.Camera, depth, w, h int, opts *options, o *orbit) error {
	r := render.NewRenderer(sc, cam, render.Format[color.RGBA](render.RGB8{}))
	r.MaxDepth = depth
	fb := r.NewFramebuffer(w, h)

	frame := 0
	next := func() (*image.RGBA, error) {
		if frame > 0 && (!opts.animate || (opts.frames > 0 && frame >= opts.frames)) {
			return nil, nil
		}
		if opts.animate {
			o.Step()
		}
		r.Render(fb)
		frame++
		return render.ToImage(fb), nil
	}
	return window.Show(ctx, w, h, window.Options{Title: "lumen", Scale: max(opts.scale, 2), FPS: opts.fps}, next)
}
