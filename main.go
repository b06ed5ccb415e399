package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/echoflaresat/phong/canvas"
	"github.com/echoflaresat/phong/render"
	"github.com/echoflaresat/phong/scene"
	"github.com/echoflaresat/phong/vectors"
	"github.com/echoflaresat/phong/world"
)

type config struct {
	scene         *string
	width, height *int
	fov           *float64
	workers       *int
	out           *string
	verbose       *bool
	showHelp      *bool
}

func defineFlags() config {
	return config{
		scene: flag.String("scene", "", "Scene JSON file; the built-in two-sphere scene is used when empty"),

		width:   flag.Int("width", 400, "Image width in pixels (built-in scene only)"),
		height:  flag.Int("height", 200, "Image height in pixels (built-in scene only)"),
		fov:     flag.Float64("fov", 60.0, "Camera field of view in degrees (built-in scene only)"),
		workers: flag.Int("workers", 0, "Render goroutines; 0 uses GOMAXPROCS"),

		out: flag.String("out", "render.png", "Output image path (.png, .jpg, .bmp, .tif)"),

		verbose:  flag.Bool("v", false, "Log render progress"),
		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `Phong Renderer - Whitted-style ray casting with point lights

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Scene Options", []string{"scene"})
	printGroup("Camera Options", []string{"width", "height", "fov"})
	printGroup("Rendering Options", []string{"workers"})
	printGroup("Output", []string{"out"})
	printGroup("Misc", []string{"v", "h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-8s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}

	if *cfg.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

// run loads, renders and saves one scene. Textures are released before it
// returns, whether or not the render succeeded.
func run(ctx context.Context, cfg config) error {
	sc, err := loadScene(*cfg.scene, *cfg.width, *cfg.height, *cfg.fov)
	if err != nil {
		return err
	}
	defer sc.Close()

	start := time.Now()
	img, err := renderScene(ctx, sc, *cfg.workers)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	slog.Info("rendered", "width", img.Width, "height", img.Height, "elapsed", time.Since(start))

	if err := img.Save(*cfg.out); err != nil {
		return fmt.Errorf("failed to write %s: %w", *cfg.out, err)
	}
	return nil
}

// loadScene reads path, or builds the default world seen from a standard
// viewpoint when path is empty.
func loadScene(path string, width, height int, fovDeg float64) (*scene.Scene, error) {
	if path != "" {
		return scene.Load(path)
	}

	camera, err := render.NewCamera(width, height, fovDeg*math.Pi/180)
	if err != nil {
		return nil, err
	}
	view := vectors.ViewTransform(vectors.New(0, 1.5, -5), vectors.New(0, 0, 0), vectors.New(0, 1, 0))
	if err := camera.SetTransform(view); err != nil {
		return nil, err
	}
	return &scene.Scene{Camera: camera, World: world.Default()}, nil
}

func renderScene(ctx context.Context, sc *scene.Scene, workers int) (*canvas.Canvas, error) {
	return sc.Camera.RenderContext(ctx, sc.World, workers)
}
