package iro

import (
	"strconv"
	"strings"
)

// ColorScheme is the final output of the color pipeline. It is a value type:
// the terminal palette is an array, so copies never alias and a scheme can be
// shared read-only by every renderer.
type ColorScheme struct {
	Background Color
	Foreground Color
	Accent     Color
	Secondary  Color
	Surface    Color
	Error      Color

	// Terminal holds ANSI colors 0-7 (normal) and 8-15 (bright).
	Terminal [16]Color

	// Mode is the resolved mode, never ModeAuto.
	Mode  Mode
	Style Style

	// Wallpaper is the image the scheme was generated from, if any.
	Wallpaper string
}

// SemanticNames lists the semantic template variables in export order.
var SemanticNames = []string{"background", "foreground", "accent", "secondary", "surface", "error"}

// Lookup resolves a template variable name: a semantic name, a named ANSI
// color, or "colors.N" for N in 0..15.
func (s ColorScheme) Lookup(name string) (Color, bool) {
	switch name {
	case "background":
		return s.Background, true
	case "foreground":
		return s.Foreground, true
	case "accent":
		return s.Accent, true
	case "secondary":
		return s.Secondary, true
	case "surface":
		return s.Surface, true
	case "error":
		return s.Error, true
	}
	for _, slot := range ChromaticSlots {
		if slot.String() == name {
			return s.Terminal[slot.ANSIIndex()], true
		}
	}
	if idx, ok := strings.CutPrefix(name, "colors."); ok {
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 || n > 15 || strconv.Itoa(n) != idx {
			return Color{}, false
		}
		return s.Terminal[n], true
	}
	return Color{}, false
}
