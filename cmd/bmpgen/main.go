// Command bmpgen writes 24-bit BMP files.
//
// Render every image in a scene file:
//
//	bmpgen -config scene.yaml -jobs 4
//
// Or write a single solid image:
//
//	bmpgen -width 320 -height 240 -fill "#336699" -layout bottom-up -output out.bmp
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/gogpu/bitmap"
	"github.com/gogpu/bitmap/internal/scene"
)

func main() {
	var (
		config  = flag.String("config", "", "scene YAML file (overrides the single-image flags)")
		jobs    = flag.Int("jobs", runtime.NumCPU(), "images written concurrently")
		verbose = flag.Bool("v", false, "log every written image to stderr")

		width  = flag.Int("width", 64, "image width")
		height = flag.Int("height", 64, "image height")
		fill   = flag.String("fill", "#000000", "fill color (RGB or RRGGBB)")
		layout = flag.String("layout", "packed", "row layout: packed, bottom-up or top-down")
		output = flag.String("output", "out.bmp", "output file")
	)
	flag.Parse()

	configureLogger(*verbose, os.Stderr)

	cfg, err := loadConfig(*config, scene.ImageSpec{
		Path:   *output,
		Width:  *width,
		Height: *height,
		Layout: *layout,
		Fill:   *fill,
	})
	if err != nil {
		log.Fatalf("bmpgen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := scene.WriteAll(ctx, cfg, *jobs); err != nil {
		stop()
		log.Fatalf("bmpgen: %v", err)
	}
}

// configureLogger routes bitmap logs to w when verbose is set.
// Otherwise the library stays silent.
func configureLogger(verbose bool, w io.Writer) {
	if !verbose {
		bitmap.SetLogger(nil)
		return
	}
	bitmap.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

// loadConfig reads the scene file, or wraps the single-image flags in a
// one-image scene when no file is given.
func loadConfig(path string, single scene.ImageSpec) (*scene.Config, error) {
	if path != "" {
		return scene.Load(path)
	}
	cfg := &scene.Config{Images: []scene.ImageSpec{single}}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
