package palette

import (
	"cmp"
	"math"
	"slices"

	"github.com/fwojciec/iro"
)

const (
	// minVividSaturation is the shaped saturation a slot color needs to be an
	// accent candidate.
	minVividSaturation = 0.15

	// saturationTie is how close two saturations must be for sample weight to
	// decide between them.
	saturationTie = 0.05

	// MinLuminanceDelta is the minimum relative luminance difference between
	// foreground and background.
	MinLuminanceDelta = 0.4

	// BrightStep is the lightness added to colors 0-7 to derive 8-15. In light
	// mode colors 9-14 stop at the preset brightness cap.
	BrightStep = 0.12
)

// secondaryRotations are tried in order when no slot color is far enough
// from the accent.
var secondaryRotations = []float64{180, 150, 210, 120, 240}

// Assemble derives the final scheme from shaped colors. Inputs are never
// modified.
func Assemble(s Shaped, opts iro.Options) iro.ColorScheme {
	dark := s.Mode != iro.ModeLight
	bg := background(s, opts.BackgroundFor(s.Mode), dark)
	fg := foreground(bg, dark)
	accent := pickAccent(s.Slots)
	secondary := pickSecondary(s.Slots, accent, opts.DiversityThreshold)

	scheme := iro.ColorScheme{
		Background: bg,
		Foreground: fg,
		Accent:     accent.Color,
		Secondary:  secondary,
		Surface:    surface(bg, dark),
		Error:      errorColor(s.Source.Slot(iro.SlotRed).Color, dark),
		Mode:       s.Mode,
		Style:      opts.Style,
	}
	scheme.Terminal[0] = nudge(bg, fg, 0.04)
	for _, sw := range s.Slots {
		scheme.Terminal[sw.Slot.ANSIIndex()] = sw.Color
	}
	scheme.Terminal[7] = nudge(fg, bg, 0.08)
	scheme.Terminal[8] = brighten(scheme.Terminal[0], 1)
	for i := 1; i < 7; i++ {
		scheme.Terminal[i+8] = brighten(scheme.Terminal[i], s.BrightCap)
	}
	scheme.Terminal[15] = brighten(scheme.Terminal[7], 1)
	return scheme
}

func background(s Shaped, bg iro.Background, dark bool) iro.Color {
	switch bg.Policy {
	case iro.BackgroundCustom:
		return bg.Custom
	case iro.BackgroundPure:
		if dark {
			return iro.PureDarkBackground
		}
		return iro.PureLightBackground
	default:
		return extractedBackground(s, dark)
	}
}

// extractedBackground takes the darkest (dark mode) or lightest (light mode)
// neutral, or the least saturated slot color when there are no neutrals, and
// forces it into background range.
func extractedBackground(s Shaped, dark bool) iro.Color {
	var base hsl
	if len(s.Neutrals) > 0 {
		base = toHSL(s.Neutrals[0].Color)
		for _, n := range s.Neutrals[1:] {
			h := toHSL(n.Color)
			if (dark && h.L < base.L) || (!dark && h.L > base.L) {
				base = h
			}
		}
	} else {
		base = toHSL(s.Slots[0].Color)
		for _, sw := range s.Slots[1:] {
			if h := toHSL(sw.Color); h.S < base.S {
				base = h
			}
		}
	}
	if dark {
		base.L = math.Min(base.L, 0.14)
		base.S = math.Min(base.S, 0.15)
	} else {
		base.L = math.Max(base.L, 0.92)
		base.S = math.Min(base.S, 0.12)
	}
	return base.color()
}

// foreground tints a near-white (dark) or near-black (light) text color with
// the background hue, then pushes it toward pure white or black until the
// luminance delta is large enough.
func foreground(bg iro.Color, dark bool) iro.Color {
	b := toHSL(bg)
	l := 0.88
	if !dark {
		l = 0.22
	}
	return ensureContrast(hsl{H: b.H, S: math.Min(b.S, 0.2), L: l}.color(), bg)
}

func ensureContrast(fg, bg iro.Color) iro.Color {
	extreme := iro.White
	if bg.Luminance() >= 0.5 {
		extreme = iro.Black
	}
	for step := 0; step <= 10; step++ {
		c := blend(fg, extreme, float64(step)/10)
		if math.Abs(c.Luminance()-bg.Luminance()) >= MinLuminanceDelta {
			return c
		}
	}
	return extreme
}

// pickAccent prefers the most saturated extracted non-green slot color. If
// every vivid extracted color is green, the one farthest in hue from green
// wins. Without vivid extracted colors, it falls back to all slots.
func pickAccent(slots [6]Swatch) Swatch {
	var vivid, nonGreen []Swatch
	for _, sw := range slots {
		if sw.Synthetic || toHSL(sw.Color).S < minVividSaturation {
			continue
		}
		vivid = append(vivid, sw)
		if sw.Slot != iro.SlotGreen {
			nonGreen = append(nonGreen, sw)
		}
	}
	switch {
	case len(nonGreen) > 0:
		return mostSaturated(nonGreen)
	case len(vivid) > 0:
		best := vivid[0]
		for _, sw := range vivid[1:] {
			if hueDistance(toHSL(sw.Color).H, 120) > hueDistance(toHSL(best.Color).H, 120) {
				best = sw
			}
		}
		return best
	default:
		var all []Swatch
		for _, sw := range slots {
			if sw.Slot != iro.SlotGreen {
				all = append(all, sw)
			}
		}
		return mostSaturated(all)
	}
}

// mostSaturated returns the swatch with the highest saturation. Saturations
// within saturationTie of each other are decided by sample weight, then by
// order.
func mostSaturated(list []Swatch) Swatch {
	best := list[0]
	bestS := toHSL(best.Color).S
	for _, sw := range list[1:] {
		s := toHSL(sw.Color).S
		if s > bestS+saturationTie || (math.Abs(s-bestS) <= saturationTie && sw.Weight > best.Weight) {
			best, bestS = sw, s
		}
	}
	return best
}

// pickSecondary returns the next most saturated slot color at least
// threshold away from the accent, preferring non-green and extracted colors.
// Failing that it tries hue rotations of the accent, then black or white.
func pickSecondary(slots [6]Swatch, accent Swatch, threshold float64) iro.Color {
	candidates := make([]Swatch, 0, len(slots)-1)
	for _, sw := range slots {
		if sw.Slot != accent.Slot {
			candidates = append(candidates, sw)
		}
	}
	slices.SortStableFunc(candidates, func(a, b Swatch) int {
		if c := cmp.Compare(rank(a), rank(b)); c != 0 {
			return c
		}
		return cmp.Compare(toHSL(b.Color).S, toHSL(a.Color).S)
	})
	for _, sw := range candidates {
		if iro.Distance(sw.Color, accent.Color) >= threshold {
			return sw.Color
		}
	}

	a := toHSL(accent.Color)
	for _, rot := range secondaryRotations {
		c := hsl{H: a.H + rot, S: a.S, L: a.L}.color()
		if iro.Distance(c, accent.Color) >= threshold {
			return c
		}
	}
	if iro.Distance(iro.Black, accent.Color) >= iro.Distance(iro.White, accent.Color) {
		return iro.Black
	}
	return iro.White
}

// rank orders secondary candidates: extracted non-green, synthetic non-green,
// extracted green, synthetic green.
func rank(sw Swatch) int {
	r := 0
	if sw.Slot == iro.SlotGreen {
		r += 2
	}
	if sw.Synthetic {
		r++
	}
	return r
}

func surface(bg iro.Color, dark bool) iro.Color {
	h := toHSL(bg)
	if dark {
		h.L += 0.06
	} else {
		h.L -= 0.05
	}
	return h.color()
}

// errorColor keeps errors recognizably red regardless of style: the hue of
// the unshaped red slot is pulled into [345, 15] degrees.
func errorColor(red iro.Color, dark bool) iro.Color {
	h := toHSL(red)
	if d := hueDelta(0, h.H); math.Abs(d) > 15 {
		h.H = normHue(math.Copysign(15, d))
	}
	h.S = math.Max(h.S, 0.65)
	h.L = 0.62
	if !dark {
		h.L = 0.45
	}
	return h.color()
}

// nudge moves c's lightness by step toward toward's lightness.
func nudge(c, toward iro.Color, step float64) iro.Color {
	h := toHSL(c)
	if toHSL(toward).L >= h.L {
		h.L += step
	} else {
		h.L -= step
	}
	return h.color()
}

// brighten raises lightness by BrightStep up to limit. A color already above
// limit is left as is.
func brighten(c iro.Color, limit float64) iro.Color {
	h := toHSL(c)
	if h.L >= limit {
		return c
	}
	h.L = math.Min(h.L+BrightStep, limit)
	return h.color()
}
