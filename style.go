package iro

import (
	"fmt"
	"strings"
)

// Style names a palette shaping preset.
type Style int

const (
	StyleLofi Style = iota
	StyleKawaii
	StylePastel
	StyleVivid
	StyleNord
	StyleWarm
	StyleMuted
)

// Styles lists every preset in display order.
var Styles = []Style{StyleLofi, StyleKawaii, StylePastel, StyleVivid, StyleNord, StyleWarm, StyleMuted}

// StylePreset is the immutable parameter bundle behind a Style.
type StylePreset struct {
	Description string

	// DarkSaturation and LightSaturation scale HSL saturation per theme mode.
	DarkSaturation  float64
	LightSaturation float64

	// Contrast scales lightness distance from 0.5. Values below 1 compress.
	Contrast float64

	// Warmth in [-1, 1] rotates hue toward (positive) or away from (negative)
	// the orange axis by up to 30 degrees.
	Warmth float64

	// LightBrightnessCap is the maximum lightness of shaped colors in light mode.
	LightBrightnessCap float64
}

var presets = map[Style]StylePreset{
	StyleLofi:   {Description: "Calm balanced aesthetic", DarkSaturation: 0.48, LightSaturation: 0.42, Contrast: 0.72, Warmth: 0.08, LightBrightnessCap: 0.56},
	StyleKawaii: {Description: "Cute pink aesthetic", DarkSaturation: 0.55, LightSaturation: 0.50, Contrast: 0.75, Warmth: 0.25, LightBrightnessCap: 0.60},
	StylePastel: {Description: "Soft dreamy pastels", DarkSaturation: 0.45, LightSaturation: 0.40, Contrast: 0.60, Warmth: 0.10, LightBrightnessCap: 0.64},
	StyleVivid:  {Description: "Bold vibrant colors", DarkSaturation: 0.65, LightSaturation: 0.55, Contrast: 0.85, Warmth: 0, LightBrightnessCap: 0.52},
	StyleNord:   {Description: "Cool nordic minimal", DarkSaturation: 0.35, LightSaturation: 0.30, Contrast: 0.65, Warmth: -0.12, LightBrightnessCap: 0.56},
	StyleWarm:   {Description: "Cozy warm tones", DarkSaturation: 0.45, LightSaturation: 0.40, Contrast: 0.70, Warmth: 0.18, LightBrightnessCap: 0.56},
	StyleMuted:  {Description: "Soft neutral palette", DarkSaturation: 0.38, LightSaturation: 0.33, Contrast: 0.67, Warmth: 0.02, LightBrightnessCap: 0.58},
}

// Preset returns the parameters for s.
func (s Style) Preset() StylePreset {
	return presets[s]
}

func (s Style) String() string {
	switch s {
	case StyleLofi:
		return "lofi"
	case StyleKawaii:
		return "kawaii"
	case StylePastel:
		return "pastel"
	case StyleVivid:
		return "vivid"
	case StyleNord:
		return "nord"
	case StyleWarm:
		return "warm"
	case StyleMuted:
		return "muted"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle looks up a preset by name, case-insensitively.
func ParseStyle(name string) (Style, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Styles {
		if s.String() == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown style %q: %w", name, ErrConfig)
}

// Next returns the style after s in display order, wrapping around.
func (s Style) Next() Style {
	for i, st := range Styles {
		if st == s {
			return Styles[(i+1)%len(Styles)]
		}
	}
	return StyleLofi
}
