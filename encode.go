package bitmap

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// DataOffset returns the byte offset of the first pixel in the written file.
func (b *Bitmap) DataOffset() int64 {
	return HeaderSize
}

// ImageSize returns the size of the pixel data section in bytes.
func (b *Bitmap) ImageSize() int64 {
	return rowStride(b.width, b.opts.layout) * int64(b.height)
}

// FileSize returns the total size of the written file in bytes.
func (b *Bitmap) FileSize() int64 {
	return b.DataOffset() + b.ImageSize()
}

// Headers returns the file and info headers describing the current state
// of the bitmap.
func (b *Bitmap) Headers() (FileHeader, InfoHeader) {
	height := int32(b.height)
	if b.opts.layout == LayoutTopDown {
		height = -height
	}

	// New guarantees FileSize fits in 32 bits.
	fh := FileHeader{
		Signature:  signature,
		FileSize:   uint32(b.FileSize()),
		DataOffset: uint32(b.DataOffset()),
	}
	ih := InfoHeader{
		Size:          InfoHeaderSize,
		Width:         int32(b.width),
		Height:        height,
		Planes:        planes,
		BitCount:      bitsPerPixel,
		Compression:   compressRGB,
		ImageSize:     uint32(b.ImageSize()),
		XPelsPerMeter: b.opts.xppm,
		YPelsPerMeter: b.opts.yppm,
	}
	return fh, ih
}

// WriteTo writes the complete file image to w: file header, info header,
// then pixel data, with nothing in between.
// It implements io.WriterTo. Errors wrap ErrWriteFailure.
func (b *Bitmap) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	fh, ih := b.Headers()
	if err := writeHeaders(cw, &fh, &ih); err != nil {
		return cw.n, err
	}
	if err := b.writePixels(cw); err != nil {
		return cw.n, fmt.Errorf("%w: pixel data: %w", ErrWriteFailure, err)
	}
	return cw.n, nil
}

// writePixels writes the pixel data section in the configured layout.
func (b *Bitmap) writePixels(w io.Writer) error {
	if b.opts.layout == LayoutPacked {
		_, err := w.Write(b.data)
		return err
	}

	// Padding bytes stay zero; only the pixel prefix is overwritten.
	row := make([]byte, rowStride(b.width, b.opts.layout))
	n := b.width * PixelSize
	for i := range b.height {
		y := i
		if b.opts.layout == LayoutBottomUp {
			y = b.height - 1 - i
		}
		copy(row, b.data[y*n:(y+1)*n])
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// outputFile is the part of *os.File used by Write.
type outputFile interface {
	io.Writer
	Close() error
	Stat() (fs.FileInfo, error)
}

// createFile opens the output of Write. Tests replace it to inject
// write failures into a regular file.
var createFile = func(path string) (outputFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Write creates or truncates the file at path and writes the bitmap to it.
//
// Returns an error wrapping ErrOpenFailure if the file cannot be created,
// or ErrWriteFailure if any part of the file could not be written, flushed
// or closed. On write failure a regular file is removed; anything else at
// path (a device, a named pipe) is left in place.
// The file is always closed before Write returns.
func (b *Bitmap) Write(path string) error {
	path = filepath.Clean(path)
	log := Logger().With(slog.String("path", path))

	f, err := createFile(path)
	if err != nil {
		log.Debug("bitmap: create failed", slog.Any("err", err))
		return fmt.Errorf("%w: %w", ErrOpenFailure, err)
	}

	regular := false
	if info, serr := f.Stat(); serr == nil {
		regular = info.Mode().IsRegular()
	}

	bw := bufio.NewWriter(f)
	n, err := b.WriteTo(bw)
	if err == nil {
		if ferr := bw.Flush(); ferr != nil {
			err = fmt.Errorf("%w: flush: %w", ErrWriteFailure, ferr)
		}
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("%w: close: %w", ErrWriteFailure, cerr)
	}

	if err != nil {
		if regular {
			if rerr := os.Remove(path); rerr != nil {
				log.Warn("bitmap: remove partial file", slog.Any("err", rerr))
			}
		}
		return err
	}

	log.Debug("bitmap: written",
		slog.Int("width", b.width),
		slog.Int("height", b.height),
		slog.String("layout", b.opts.layout.String()),
		slog.Int64("bytes", n))
	return nil
}

// countingWriter counts bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
