package palette

import "github.com/fwojciec/iro"

// Achromatic bounds: colors this gray, dark or light carry no usable hue.
const (
	minChromaSaturation = 0.12
	minChromaLightness  = 0.06
	maxChromaLightness  = 0.94
)

// Bounds for synthesized slot colors.
const (
	minSynthSaturation = 0.3
	maxSynthSaturation = 0.9
	minSynthLightness  = 0.35
	maxSynthLightness  = 0.65
)

// Swatch is a color assigned to a hue slot.
type Swatch struct {
	Slot      iro.HueSlot
	Color     iro.Color
	Weight    int
	Synthetic bool // generated for a slot with no extracted candidate
}

// HueMap holds exactly one swatch per chromatic slot, indexed like
// iro.ChromaticSlots, plus every other color as a neutral.
type HueMap struct {
	Slots    [6]Swatch
	Neutrals []Swatch
}

// Slot returns the swatch for a chromatic slot.
func (m HueMap) Slot(s iro.HueSlot) Swatch {
	return m.Slots[s]
}

// MapHues buckets colors into the nearest canonical hue slot by circular hue
// distance. Each slot keeps its most saturated candidate; the rest, and every
// achromatic color, become neutrals. Slots left empty are synthesized at their
// canonical angle from the mean saturation and lightness of the input.
func MapHues(colors []iro.RawColor) HueMap {
	var m HueMap
	var filled [6]bool
	var sumS, sumL float64
	for _, rc := range colors {
		h := toHSL(rc.Color)
		sumS += h.S
		sumL += h.L
		sw := Swatch{Slot: iro.SlotNeutral, Color: rc.Color, Weight: rc.Weight}
		if achromatic(h) {
			m.Neutrals = append(m.Neutrals, sw)
			continue
		}
		slot := nearestSlot(h.H)
		sw.Slot = slot
		if !filled[slot] {
			m.Slots[slot], filled[slot] = sw, true
			continue
		}
		if h.S > toHSL(m.Slots[slot].Color).S {
			demoted := m.Slots[slot]
			demoted.Slot = iro.SlotNeutral
			m.Neutrals = append(m.Neutrals, demoted)
			m.Slots[slot] = sw
			continue
		}
		sw.Slot = iro.SlotNeutral
		m.Neutrals = append(m.Neutrals, sw)
	}

	meanS, meanL := 0.0, 0.5
	if n := float64(len(colors)); n > 0 {
		meanS, meanL = sumS/n, sumL/n
	}
	synthS := clamp(meanS, minSynthSaturation, maxSynthSaturation)
	synthL := clamp(meanL, minSynthLightness, maxSynthLightness)
	for i, slot := range iro.ChromaticSlots {
		if filled[i] {
			continue
		}
		m.Slots[i] = Swatch{
			Slot:      slot,
			Color:     hsl{H: slot.Angle(), S: synthS, L: synthL}.color(),
			Synthetic: true,
		}
	}
	return m
}

func achromatic(h hsl) bool {
	return h.S < minChromaSaturation || h.L < minChromaLightness || h.L > maxChromaLightness
}

func nearestSlot(hue float64) iro.HueSlot {
	best := iro.SlotRed
	bestDist := 360.0
	for _, slot := range iro.ChromaticSlots {
		if d := hueDistance(hue, slot.Angle()); d < bestDist {
			best, bestDist = slot, d
		}
	}
	return best
}
