package bitmap

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// maxBufferLen is the largest pixel buffer New allocates. It is math.MaxInt
// so width*height*PixelSize cannot overflow int on 32-bit platforms.
var maxBufferLen int64 = math.MaxInt

// Bitmap is a fixed-size 24-bit raster backed by a flat, row-major buffer.
// Pixel (x, y) is stored at linear index y*width + x.
//
// Bitmap is not safe for concurrent use: mutation and serialization assume
// exclusive ownership of the buffer for the duration of the call.
type Bitmap struct {
	width  int
	height int
	data   []uint8 // BGR, PixelSize bytes per pixel, no row padding
	opts   options
}

// New creates a black bitmap with the given dimensions.
// Returns ErrInvalidDimensions if either dimension is non-positive or the
// resulting file would not fit the 32-bit size fields or the buffer would
// not be addressable on this platform.
func New(width, height int, opts ...Option) (*Bitmap, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if width <= 0 || height <= 0 || width > math.MaxInt32 || height > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if int64(HeaderSize)+rowStride(width, o.layout)*int64(height) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %dx%d exceeds 4 GiB", ErrInvalidDimensions, width, height)
	}
	if int64(width)*int64(height)*PixelSize > maxBufferLen {
		return nil, fmt.Errorf("%w: %dx%d buffer exceeds %d bytes", ErrInvalidDimensions, width, height, maxBufferLen)
	}

	return &Bitmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*PixelSize),
		opts:   o,
	}, nil
}

// FromImage creates a bitmap with the same size as img and copies its
// pixels. Translucent pixels are composited onto black.
func FromImage(img image.Image, opts ...Option) (*Bitmap, error) {
	b := img.Bounds()
	bm, err := New(b.Dx(), b.Dy(), opts...)
	if err != nil {
		return nil, err
	}
	draw.Copy(bm, image.Point{}, img, b, draw.Src, nil)
	return bm, nil
}

// Width returns the width of the bitmap.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height of the bitmap.
func (b *Bitmap) Height() int {
	return b.height
}

// Layout returns the row layout used by WriteTo and Write.
func (b *Bitmap) Layout() Layout {
	return b.opts.layout
}

// inBounds reports whether (x, y) addresses a pixel.
func (b *Bitmap) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// offset returns the byte offset of pixel (x, y). The caller must check bounds.
func (b *Bitmap) offset(x, y int) int {
	return (y*b.width + x) * PixelSize
}

// SetPixel sets the pixel at (x, y).
// Returns an error wrapping ErrOutOfRange if (x, y) is outside the bitmap;
// the buffer is left unchanged in that case.
func (b *Bitmap) SetPixel(x, y int, p Pixel) error {
	if !b.inBounds(x, y) {
		return fmt.Errorf("%w: pixel (%d, %d) in %dx%d", ErrOutOfRange, x, y, b.width, b.height)
	}
	i := b.offset(x, y)
	b.data[i+0] = p.B
	b.data[i+1] = p.G
	b.data[i+2] = p.R
	return nil
}

// SetRow sets every pixel in the given row.
func (b *Bitmap) SetRow(row int, p Pixel) error {
	if row < 0 || row >= b.height {
		return fmt.Errorf("%w: row %d in %dx%d", ErrOutOfRange, row, b.width, b.height)
	}
	for x := range b.width {
		if err := b.SetPixel(x, row, p); err != nil {
			return err
		}
	}
	return nil
}

// SetAll fills the entire bitmap with a single pixel value.
func (b *Bitmap) SetAll(p Pixel) {
	for y := range b.height {
		// rows in [0, height) are always in range
		_ = b.SetRow(y, p)
	}
}

// Pixel returns the pixel at (x, y).
func (b *Bitmap) Pixel(x, y int) (Pixel, error) {
	if !b.inBounds(x, y) {
		return Pixel{}, fmt.Errorf("%w: pixel (%d, %d) in %dx%d", ErrOutOfRange, x, y, b.width, b.height)
	}
	i := b.offset(x, y)
	return Pixel{B: b.data[i+0], G: b.data[i+1], R: b.data[i+2]}, nil
}

// At implements the image.Image interface.
// Coordinates outside the bitmap return Black.
func (b *Bitmap) At(x, y int) color.Color {
	p, err := b.Pixel(x, y)
	if err != nil {
		return Black
	}
	return p
}

// Set implements the draw.Image interface.
// Out-of-bounds coordinates are silently ignored.
func (b *Bitmap) Set(x, y int, c color.Color) {
	_ = b.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return PixelModel
}

// rowStride returns the number of bytes one row occupies on disk.
func rowStride(width int, l Layout) int64 {
	n := int64(width) * PixelSize
	if l.Padded() {
		n = (n + 3) &^ 3
	}
	return n
}
