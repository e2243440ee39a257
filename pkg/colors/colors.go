// Package colors provides hex-based colors with an optional alpha channel.
//
// Colors parse from "#RRGGBB" or "#RRGGBBAA" strings and implement
// image/color.Color, so they can be passed directly to raster drawing
// contexts. The package also exposes a named palette for common colors.
package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/odtools/oddraw/pkg/errors"
)

// Color is an RGB color with an alpha channel in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

// Parse converts a hex color string into a Color.
// Accepted forms are "#RRGGBB" and "#RRGGBBAA" (the leading "#" is optional).
func Parse(s string) (Color, error) {
	digits := strings.TrimPrefix(strings.ToUpper(s), "#")
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid hex color %q: must be 6 or 8 digits", s)
	}

	var ch [4]uint8
	ch[3] = 0xFF
	for i := 0; i < len(digits)/2; i++ {
		v, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid hex color %q", s)
		}
		ch[i] = uint8(v)
	}

	return Color{R: ch[0], G: ch[1], B: ch[2], A: float64(ch[3]) / 255}, nil
}

// MustParse is like Parse but panics on error. It is intended for
// package-level palette definitions with known-good literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#RRGGBB", dropping the alpha channel.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HexAlpha returns the color as "#RRGGBBAA".
func (c Color) HexAlpha() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, uint8(c.A*255+0.5))
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(alpha float64) (Color, error) {
	if alpha < 0 || alpha > 1 {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "alpha must be between 0 and 1, got %v", alpha)
	}
	c.A = alpha
	return c, nil
}

// RGBA implements image/color.Color with alpha-premultiplied channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A*0xFFFF + 0.5)
	r = uint32(c.R) * 0x101 * a / 0xFFFF
	g = uint32(c.G) * 0x101 * a / 0xFFFF
	b = uint32(c.B) * 0x101 * a / 0xFFFF
	return r, g, b, a
}

// String returns the color as "#RRGGBBAA".
func (c Color) String() string {
	return c.HexAlpha()
}
