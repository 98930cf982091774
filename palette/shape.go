package palette

import (
	"math"

	"github.com/fwojciec/iro"
)

// Hue axes that positive and negative warmth rotate toward.
const (
	warmAxis     = 30.0
	coolAxis     = 210.0
	maxWarmthDeg = 30.0
)

// Shaped is a hue map after style shaping. Source keeps the unshaped map for
// colors that must not depend on style intensity.
type Shaped struct {
	HueMap
	Source HueMap
	Mode   iro.Mode // resolved, never ModeAuto

	// BrightCap is the maximum lightness of the bright variants of slot
	// colors: the preset's cap in light mode, 1 otherwise.
	BrightCap float64
}

// Shape applies a preset to every swatch: warmth shift (slot colors only),
// saturation multiplier, contrast, and in light mode the brightness cap.
// Each step clamps to valid ranges.
func Shape(m HueMap, p iro.StylePreset, mode iro.Mode) Shaped {
	out := Shaped{Source: m, Mode: mode, BrightCap: 1}
	if mode == iro.ModeLight {
		out.BrightCap = p.LightBrightnessCap
	}
	for i, sw := range m.Slots {
		sw.Color = shapeColor(sw.Color, p, mode, true)
		out.Slots[i] = sw
	}
	out.Neutrals = make([]Swatch, len(m.Neutrals))
	for i, sw := range m.Neutrals {
		sw.Color = shapeColor(sw.Color, p, mode, false)
		out.Neutrals[i] = sw
	}
	return out
}

func shapeColor(c iro.Color, p iro.StylePreset, mode iro.Mode, warm bool) iro.Color {
	h := toHSL(c)
	if warm && p.Warmth != 0 {
		h.H = warmShift(h.H, p.Warmth)
	}

	sat := p.DarkSaturation
	if mode == iro.ModeLight {
		sat = p.LightSaturation
	}
	h.S = clamp01(h.S * sat)

	h.L = clamp01(0.5 + (h.L-0.5)*p.Contrast)

	if mode == iro.ModeLight {
		h.L = math.Min(h.L, p.LightBrightnessCap)
	}
	return h.color()
}

// warmShift rotates hue toward the warm axis for positive warmth and toward
// the cool axis for negative warmth, by at most |warmth|*30 degrees and
// never past the axis.
func warmShift(hue, warmth float64) float64 {
	axis := warmAxis
	if warmth < 0 {
		axis = coolAxis
	}
	limit := math.Abs(clamp(warmth, -1, 1)) * maxWarmthDeg
	d := hueDelta(hue, axis)
	if math.Abs(d) <= limit {
		return axis
	}
	return normHue(hue + math.Copysign(limit, d))
}
