package bitmap

// Layout selects how rows are arranged in the pixel data section of the
// written file. It never changes how pixels are addressed in memory.
type Layout uint8

const (
	// LayoutPacked writes rows in stored order (row 0 first) with no row
	// padding and a positive height. Pixel (x, y) lands at
	// DataOffset + (y*width+x)*PixelSize.
	LayoutPacked Layout = iota

	// LayoutBottomUp is the standard BMP arrangement: the last row is
	// written first and every row is padded to a 4-byte boundary.
	LayoutBottomUp

	// LayoutTopDown writes rows in stored order, padded to a 4-byte
	// boundary, and stores a negative height.
	LayoutTopDown

	// layoutCount is the number of layouts (for internal use).
	layoutCount
)

// IsValid reports whether the layout is known.
func (l Layout) IsValid() bool {
	return l < layoutCount
}

// Padded reports whether rows are padded to a 4-byte boundary.
func (l Layout) Padded() bool {
	return l == LayoutBottomUp || l == LayoutTopDown
}

// String returns the layout name as accepted by ParseLayout.
func (l Layout) String() string {
	switch l {
	case LayoutPacked:
		return "packed"
	case LayoutBottomUp:
		return "bottom-up"
	case LayoutTopDown:
		return "top-down"
	default:
		return "unknown"
	}
}

// ParseLayout returns the layout for a name produced by Layout.String.
// The empty string selects LayoutPacked.
func ParseLayout(name string) (Layout, bool) {
	switch name {
	case "", "packed":
		return LayoutPacked, true
	case "bottom-up":
		return LayoutBottomUp, true
	case "top-down":
		return LayoutTopDown, true
	default:
		return 0, false
	}
}

// DefaultResolution is the default pixel density in pixels per metre (72 DPI).
const DefaultResolution = 2835

// Option configures a Bitmap during creation.
//
// Example:
//
//	// Byte-exact packed layout
//	bm, err := bitmap.New(640, 480)
//
//	// Standard BMP for external viewers
//	bm, err := bitmap.New(640, 480, bitmap.WithLayout(bitmap.LayoutBottomUp))
type Option func(*options)

// options holds optional configuration for Bitmap creation.
type options struct {
	layout Layout
	xppm   int32
	yppm   int32
}

// defaultOptions returns the default bitmap options.
func defaultOptions() options {
	return options{
		layout: LayoutPacked,
		xppm:   DefaultResolution,
		yppm:   DefaultResolution,
	}
}

// WithLayout sets the row layout used when the bitmap is serialized.
// Unknown layouts are ignored.
func WithLayout(l Layout) Option {
	return func(o *options) {
		if l.IsValid() {
			o.layout = l
		}
	}
}

// WithResolution sets the horizontal and vertical resolution stored in the
// info header, in pixels per metre.
func WithResolution(xppm, yppm int32) Option {
	return func(o *options) {
		o.xppm = xppm
		o.yppm = yppm
	}
}
