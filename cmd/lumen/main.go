// lumen - Terminal Ray Tracer
// Trace spheres and planes into ASCII art, color half-blocks, images or a
// desktop window.
//
// Animation controls:
//
//	Left/Right  - Slow down / speed up the light orbit
//	Space       - Pause or resume the orbit
//	Esc, Ctrl+C - Quit
package main

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"
	"github.com/chewxy/math32"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/taigrr/lumen/internal/buildinfo"
	"github.com/taigrr/lumen/internal/publish"
	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/models"
	"github.com/taigrr/lumen/pkg/render"
	"github.com/taigrr/lumen/pkg/scene"
	"github.com/taigrr/lumen/pkg/scenefile"
)

// Sizes used when the console size is unknown, and for image outputs.
const (
	fallbackCols = 80
	fallbackRows = 24
	imageWidth   = 320
	imageHeight  = 240
)

type options struct {
	width, height int
	depth         int
	fov           float32
	output        string
	scale         int
	color         bool
	animate       bool
	fps           int
	frames        int
	window        bool
	upload        bool
	model         string
	merge         bool
	showLight     bool
	logLevel      string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fang.Execute(ctx, newRootCmd(),
		fang.WithVersion(buildinfo.Version),
		fang.WithCommit(buildinfo.Commit),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "lumen [scene.json]",
		Short: "Terminal ray tracer",
		Long: "lumen traces a scene of spheres and planes lit by ambient and point lights.\n" +
			"Without a scene file it renders a red ball above a reflective floor.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.width, "width", "W", 0, "frame width (default: console width)")
	f.IntVarP(&opts.height, "height", "H", 0, "frame height (default: console height)")
	f.IntVarP(&opts.depth, "depth", "d", 0, "maximum bounces per ray (default: scene file or 4)")
	f.Float32Var(&opts.fov, "fov", 0, "vertical field of view in degrees (default: scene file or 60)")
	f.StringVarP(&opts.output, "output", "o", "", "write the frame to an image file (.png, .jpg, .gif, .bmp, .tiff)")
	f.IntVar(&opts.scale, "scale", 1, "integer upscale factor for image output")
	f.BoolVarP(&opts.color, "color", "c", false, "use 24-bit color half-blocks instead of ASCII")
	f.BoolVarP(&opts.animate, "animate", "a", false, "orbit the light in a full-screen loop")
	f.IntVar(&opts.fps, "fps", 24, "target frames per second for animation")
	f.IntVar(&opts.frames, "frames", 0, "stop animating after this many frames (0 = until Esc)")
	f.BoolVar(&opts.window, "window", false, "show the animation in a desktop window")
	f.BoolVar(&opts.upload, "upload", false, "upload the frame as PNG to LUMEN_S3_BUCKET")
	f.StringVarP(&opts.model, "model", "m", "", "add a glTF/GLB model, fitted to a 2-unit box in front of the camera")
	f.BoolVar(&opts.merge, "merge", false, "import the model as one bounding sphere")
	f.BoolVar(&opts.showLight, "show-light", false, "mark the orbiting light while animating")
	f.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	return cmd
}

func newLogger(level string) (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "lumen"})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	logger, err := newLogger(opts.logLevel)
	if err != nil {
		return err
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("could not read .env", "err", err)
	}

	sf := scenefile.Default()
	if len(args) == 1 {
		if sf, err = scenefile.Load(args[0]); err != nil {
			return err
		}
		logger.Info("loaded scene", "path", args[0], "spheres", len(sf.Spheres), "lights", len(sf.Lights))
	}

	loader := models.NewGLTFLoader()
	loader.Logger = logger
	sc, err := sf.Build(loader)
	if err != nil {
		return err
	}
	if opts.model != "" {
		if err := addModel(sc, loader, opts.model, opts.merge); err != nil {
			return err
		}
		logger.Info("loaded model", "path", opts.model, "elements", len(sc.Elements))
	}

	cam, err := sf.BuildCamera()
	if err != nil {
		return err
	}
	if opts.fov > 0 {
		if cam, err = render.NewCamera(opts.fov*math32.Pi/180, cam.Near(), cam.Far()); err != nil {
			return err
		}
	}
	depth := sf.MaxDepth
	if opts.depth > 0 {
		depth = opts.depth
	}

	ctx := cmd.Context()
	lights := newOrbit(sf, sc, opts.fps)

	switch {
	case opts.window:
		w, h := imageSize(cmd, opts)
		return showWindow(ctx, sc, cam, depth, w, h, opts, lights)
	case opts.output != "" || opts.upload:
		w, h := imageSize(cmd, opts)
		return exportImage(ctx, logger, sc, cam, depth, w, h, opts)
	case opts.animate:
		return animate(ctx, logger, sc, cam, depth, opts, lights)
	default:
		return printFrame(sc, cam, depth, opts)
	}
}

// addModel loads a model, centers it, scales its largest side to 2 and
// places it three units in front of the camera.
func addModel(sc *scene.Scene, loader *models.GLTFLoader, path string, merge bool) error {
	model, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	lo, hi := model.Bounds()
	size := hi.Sub(lo)
	maxDim := size.MaxLane()
	fit := math3d.IdentityTransform()
	if maxDim > 0 {
		fit.Scale = math3d.Splat3(2 / maxDim)
	}
	center := lo.Add(hi).Scale(0.5)
	place := math3d.Translation(math3d.V3(0, 0, -3)).Mul(fit.Mat4()).Mul(math3d.Translation(center.Neg()))
	model.Transform(place)

	sc.Elements = append(sc.Elements, model.Elements(merge)...)
	return nil
}

// consoleSize returns the frame size for terminal output: the console size
// minus one row for the prompt, overridden by explicit flags.
func consoleSize(opts *options) (int, int) {
	w, h := fallbackCols, fallbackRows
	if cols, rows, err := term.GetSize(os.Stdout.Fd()); err == nil && cols > 0 && rows > 1 {
		w, h = cols, rows-1
	}
	if opts.width > 0 {
		w = opts.width
	}
	if opts.height > 0 {
		h = opts.height
	}
	return w, h
}

func imageSize(cmd *cobra.Command, opts *options) (int, int) {
	w, h := imageWidth, imageHeight
	if cmd.Flags().Changed("width") && opts.width > 0 {
		w = opts.width
	}
	if cmd.Flags().Changed("height") && opts.height > 0 {
		h = opts.height
	}
	return w, h
}

// printFrame renders once to stdout.
func printFrame(sc *scene.Scene, cam render.Camera, depth int, opts *options) error {
	w, h := consoleSize(opts)
	if opts.color {
		r := render.NewRenderer(sc, cam, render.Format[color.RGBA](render.RGB8{}))
		r.MaxDepth = depth
		fb := r.NewFramebuffer(w, h*2)
		r.Render(fb)
		return render.WriteHalfBlocks(os.Stdout, fb)
	}

	r := render.NewRenderer(sc, cam, render.Format[byte](render.ASCII{}))
	r.MaxDepth = depth
	r.PixelAspect = glyphAspect
	fb := r.NewFramebuffer(w, h)
	r.Render(fb)
	return render.WriteGlyphs(os.Stdout, fb)
}

// glyphAspect is the width/height ratio of a terminal cell.
const glyphAspect = 0.5

// exportImage renders one 8-bit frame and saves and/or uploads it.
func exportImage(ctx context.Context, logger *log.Logger, sc *scene.Scene, cam render.Camera, depth, w, h int, opts *options) error {
	r := render.NewRenderer(sc, cam, render.Format[color.RGBA](render.RGB8{}))
	r.MaxDepth = depth
	fb := r.NewFramebuffer(w, h)

	start := time.Now()
	r.Render(fb)
	logger.Info("rendered", "width", w, "height", h, "depth", depth, "took", time.Since(start))
	img := render.ToImage(fb)

	if opts.output != "" {
		if err := render.SaveImage(img, opts.output, opts.scale); err != nil {
			return err
		}
		logger.Info("saved", "path", opts.output)
	}
	if opts.upload {
		up, err := publish.New(publish.ConfigFromEnv())
		if err != nil {
			return err
		}
		up.Logger = logger
		name := "lumen-" + time.Now().UTC().Format("20060102-150405") + ".png"
		if opts.output != "" {
			name = filepath.Base(opts.output)
			name = name[:len(name)-len(filepath.Ext(name))] + ".png"
		}
		key, err := up.UploadPNG(ctx, name, img, opts.scale)
		if err != nil {
			return err
		}
		fmt.Println(key)
	}
	return nil
}
