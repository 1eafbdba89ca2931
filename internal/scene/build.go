package scene

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/bitmap"
)

// Build creates the bitmap described by spec: fill first, then rows, then
// pixels. Errors from bitmap (ErrInvalidDimensions, ErrOutOfRange,
// ErrInvalidColor) are wrapped and can be matched with errors.Is.
func Build(spec ImageSpec) (*bitmap.Bitmap, error) {
	layout, ok := bitmap.ParseLayout(spec.Layout)
	if !ok {
		return nil, fmt.Errorf("%w: unknown layout %q", ErrInvalidScene, spec.Layout)
	}

	bm, err := bitmap.New(spec.Width, spec.Height, bitmap.WithLayout(layout))
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", spec.Path, err)
	}

	if spec.Fill != "" {
		p, err := bitmap.Hex(spec.Fill)
		if err != nil {
			return nil, fmt.Errorf("scene: %s: fill: %w", spec.Path, err)
		}
		bm.SetAll(p)
	}

	for _, r := range spec.Rows {
		p, err := bitmap.Hex(r.Color)
		if err != nil {
			return nil, fmt.Errorf("scene: %s: row %d: %w", spec.Path, r.Row, err)
		}
		if err := bm.SetRow(r.Row, p); err != nil {
			return nil, fmt.Errorf("scene: %s: %w", spec.Path, err)
		}
	}

	for _, px := range spec.Pixels {
		p, err := bitmap.Hex(px.Color)
		if err != nil {
			return nil, fmt.Errorf("scene: %s: pixel (%d, %d): %w", spec.Path, px.X, px.Y, err)
		}
		if err := bm.SetPixel(px.X, px.Y, p); err != nil {
			return nil, fmt.Errorf("scene: %s: %w", spec.Path, err)
		}
	}

	return bm, nil
}

// WriteAll validates cfg, then builds and writes every image in it. Up to
// limit images are processed concurrently; limit <= 0 means no limit. Each
// bitmap and each output path is owned by a single goroutine.
//
// The first error cancels scheduling of the remaining images and is
// returned. Images already written stay on disk.
func WriteAll(ctx context.Context, cfg *Config, limit int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	log := bitmap.Logger()
	skipped := false
	for _, spec := range cfg.Images {
		if gctx.Err() != nil {
			skipped = true
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bm, err := Build(spec)
			if err != nil {
				return err
			}
			if err := bm.Write(spec.Path); err != nil {
				return err
			}
			log.Info("scene: wrote image",
				slog.String("path", spec.Path),
				slog.Int64("bytes", bm.FileSize()))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if skipped {
		return ctx.Err()
	}
	return nil
}
