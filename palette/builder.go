// Package palette turns sampled colors into a color scheme: diversity
// selection, hue slot mapping, style shaping and scheme assembly.
package palette

import (
	"fmt"

	"github.com/fwojciec/iro"
)

var _ iro.Palette = Builder{}

// Builder runs the palette stages in order. It is stateless.
type Builder struct{}

// Build implements iro.Palette.
func (Builder) Build(colors []iro.RawColor, opts iro.Options) (iro.ColorScheme, error) {
	if err := opts.Validate(); err != nil {
		return iro.ColorScheme{}, err
	}
	if len(colors) == 0 {
		return iro.ColorScheme{}, fmt.Errorf("no colors to build from: %w", iro.ErrImageDecode)
	}
	sel := Select(colors, opts.DiversityThreshold, opts.ColorCount)
	mode := ResolveMode(opts.Mode, colors)
	shaped := Shape(MapHues(sel.Colors), opts.Style.Preset(), mode)
	return Assemble(shaped, opts), nil
}

// ResolveMode turns ModeAuto into dark or light from the weight-averaged
// luminance of the sampled colors. Other modes are returned unchanged.
func ResolveMode(m iro.Mode, colors []iro.RawColor) iro.Mode {
	if m != iro.ModeAuto {
		return m
	}
	var sum, total float64
	for _, c := range colors {
		sum += c.Color.Luminance() * float64(c.Weight)
		total += float64(c.Weight)
	}
	if total > 0 && sum/total >= 0.5 {
		return iro.ModeLight
	}
	return iro.ModeDark
}
