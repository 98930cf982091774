package palette

import (
	"math"

	"github.com/fwojciec/iro"
	"github.com/lucasb-eyer/go-colorful"
)

// hsl is a color in hue (degrees, [0, 360)), saturation and lightness ([0, 1]).
type hsl struct {
	H, S, L float64
}

func toHSL(c iro.Color) hsl {
	h, s, l := toColorful(c).Hsl()
	return hsl{H: normHue(h), S: s, L: l}
}

// color converts back to 8-bit RGB, clamping every component first.
func (h hsl) color() iro.Color {
	return fromColorful(colorful.Hsl(normHue(h.H), clamp01(h.S), clamp01(h.L)))
}

func toColorful(c iro.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) iro.Color {
	r, g, b := c.Clamped().RGB255()
	return iro.Color{R: r, G: g, B: b}
}

// blend mixes a toward b by t in RGB.
func blend(a, b iro.Color, t float64) iro.Color {
	return fromColorful(toColorful(a).BlendRgb(toColorful(b), clamp01(t)))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func normHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// hueDelta returns the signed shortest rotation from a to b, in (-180, 180].
func hueDelta(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// hueDistance returns the circular distance between two hues, in [0, 180].
func hueDistance(a, b float64) float64 {
	return math.Abs(hueDelta(a, b))
}
