package bitmap

import (
	"fmt"
	"image/color"
)

// PixelSize is the number of bytes a Pixel occupies on disk.
const PixelSize = 3

// Pixel is a 24-bit color sample. Fields are declared in the order they are
// stored on disk: blue, green, red.
type Pixel struct {
	B, G, R uint8
}

// Common colors.
var (
	Black = Pixel{}
	White = Pixel{B: 255, G: 255, R: 255}
	Red   = Pixel{R: 255}
	Green = Pixel{G: 255}
	Blue  = Pixel{B: 255}
)

// RGB creates a pixel from red, green and blue components.
func RGB(r, g, b uint8) Pixel {
	return Pixel{B: b, G: g, R: r}
}

// Color converts the pixel to an opaque color.NRGBA.
func (p Pixel) Color() color.Color {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// RGBA implements the color.Color interface.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.Color().RGBA()
}

// FromColor converts a standard color.Color to a Pixel.
// Alpha is discarded; the premultiplied channels are kept as is.
func FromColor(c color.Color) Pixel {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	// RGBA() returns 16-bit values, >>8 always fits in uint8
	return Pixel{B: uint8(b >> 8), G: uint8(g >> 8), R: uint8(r >> 8)}
}

// String returns the pixel as "#RRGGBB".
func (p Pixel) String() string {
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}

// PixelModel converts any color to a Pixel.
var PixelModel = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// Hex parses a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with an optional leading '#'.
func Hex(hex string) (Pixel, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	var ok bool
	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	}
	if !ok {
		return Pixel{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	return RGB(uint8(r), uint8(g), uint8(b)), nil
}

// parseHex is a helper for hex parsing. Reports false on a non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
