// Package scene describes a batch of bitmaps in YAML and renders them.
//
// A scene file lists images; each image is filled, then has whole rows
// painted, then individual pixels:
//
//	images:
//	  - path: flag.bmp
//	    width: 6
//	    height: 4
//	    layout: bottom-up
//	    fill: "#ffffff"
//	    rows:
//	      - {row: 0, color: "#ff0000"}
//	    pixels:
//	      - {x: 5, y: 3, color: "00f"}
package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/gogpu/bitmap"
)

// ErrInvalidScene is returned when a scene file parses but describes an
// image that cannot be built.
var ErrInvalidScene = errors.New("scene: invalid scene")

// Config is the top-level scene document.
type Config struct {
	Images []ImageSpec `yaml:"images"`
}

// ImageSpec describes one output bitmap.
type ImageSpec struct {
	Path   string      `yaml:"path"`
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Layout string      `yaml:"layout,omitempty"`
	Fill   string      `yaml:"fill,omitempty"`
	Rows   []RowSpec   `yaml:"rows,omitempty"`
	Pixels []PixelSpec `yaml:"pixels,omitempty"`
}

// RowSpec paints an entire row.
type RowSpec struct {
	Row   int    `yaml:"row"`
	Color string `yaml:"color"`
}

// PixelSpec paints a single pixel.
type PixelSpec struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Color string `yaml:"color"`
}

// Parse decodes and validates a scene document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			for _, msg := range typeErr.Errors {
				bitmap.Logger().Debug("scene: yaml error", slog.String("msg", msg))
			}
		}
		return nil, fmt.Errorf("scene: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every image for an output path, a known layout and
// parseable colors. Dimensions and coordinates are checked by Build.
func (c *Config) Validate() error {
	if len(c.Images) == 0 {
		return fmt.Errorf("%w: no images", ErrInvalidScene)
	}
	seen := make(map[string]int, len(c.Images))
	for i := range c.Images {
		img := &c.Images[i]
		if img.Path == "" {
			return fmt.Errorf("%w: image %d: missing path", ErrInvalidScene, i)
		}
		clean := filepath.Clean(img.Path)
		if j, dup := seen[clean]; dup {
			return fmt.Errorf("%w: image %d: path %q already used by image %d", ErrInvalidScene, i, img.Path, j)
		}
		seen[clean] = i
		if _, ok := bitmap.ParseLayout(img.Layout); !ok {
			return fmt.Errorf("%w: image %d: unknown layout %q", ErrInvalidScene, i, img.Layout)
		}
		if img.Fill != "" {
			if _, err := bitmap.Hex(img.Fill); err != nil {
				return fmt.Errorf("%w: image %d: fill: %w", ErrInvalidScene, i, err)
			}
		}
		for _, r := range img.Rows {
			if _, err := bitmap.Hex(r.Color); err != nil {
				return fmt.Errorf("%w: image %d: row %d: %w", ErrInvalidScene, i, r.Row, err)
			}
		}
		for _, p := range img.Pixels {
			if _, err := bitmap.Hex(p.Color); err != nil {
				return fmt.Errorf("%w: image %d: pixel (%d, %d): %w", ErrInvalidScene, i, p.X, p.Y, err)
			}
		}
	}
	return nil
}
