package iro

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an 8-bit sRGB color.
type Color struct {
	R, G, B uint8
}

// Black and White are the extremes used as contrast fallbacks.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// ParseHex parses a 6-digit hex color with an optional leading '#'.
// Shorthand and alpha forms are rejected.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: want 6 hex digits: %w", s, ErrConfig)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, ErrConfig)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Distance is the Euclidean distance between two colors in 8-bit RGB space.
// The same metric backs diversity selection and accent/secondary separation,
// so a diversity threshold has one meaning everywhere. The maximum is about 441.7.
func Distance(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Luminance returns the WCAG relative luminance in [0, 1].
func (c Color) Luminance() float64 {
	return 0.2126*linear(c.R) + 0.7152*linear(c.G) + 0.0722*linear(c.B)
}

func linear(v uint8) float64 {
	f := float64(v) / 255
	if f <= 0.04045 {
		return f / 12.92
	}
	return math.Pow((f+0.055)/1.055, 2.4)
}

// RawColor is a sampled color with its occurrence weight (pixel count).
type RawColor struct {
	Color  Color
	Weight int
}
