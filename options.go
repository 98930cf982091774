package iro

import "fmt"

// Defaults and bounds for Options.
const (
	DefaultDiversityThreshold = 50.0
	DefaultColorCount         = 16

	MinColorCount = 8
	MaxColorCount = 32

	// MaxDiversityThreshold keeps accent/secondary separation satisfiable:
	// any color is at least half the RGB diagonal (~220.8) from black or white.
	MaxDiversityThreshold = 200.0
)

// Options are the inputs of one engine run besides the image itself.
type Options struct {
	Style Style
	Mode  Mode

	// DarkBackground and LightBackground are applied after Mode is resolved,
	// so ModeAuto can honor either policy.
	DarkBackground  Background
	LightBackground Background

	DiversityThreshold float64
	ColorCount         int
}

// DefaultOptions returns lofi, dark, extracted backgrounds, threshold 50, 16 colors.
func DefaultOptions() Options {
	return Options{
		Style:              StyleLofi,
		Mode:               ModeDark,
		DiversityThreshold: DefaultDiversityThreshold,
		ColorCount:         DefaultColorCount,
	}
}

// BackgroundFor returns the background policy for a resolved mode.
func (o Options) BackgroundFor(m Mode) Background {
	if m == ModeLight {
		return o.LightBackground
	}
	return o.DarkBackground
}

// Validate checks option ranges. Every failure wraps ErrConfig.
func (o Options) Validate() error {
	if _, ok := presets[o.Style]; !ok {
		return fmt.Errorf("unknown style %s: %w", o.Style, ErrConfig)
	}
	if o.Mode < ModeDark || o.Mode > ModeAuto {
		return fmt.Errorf("unknown theme mode %s: %w", o.Mode, ErrConfig)
	}
	if o.DiversityThreshold <= 0 || o.DiversityThreshold > MaxDiversityThreshold {
		return fmt.Errorf("diversity_threshold must be in (0, %g], got %g: %w", MaxDiversityThreshold, o.DiversityThreshold, ErrConfig)
	}
	if o.ColorCount < MinColorCount || o.ColorCount > MaxColorCount {
		return fmt.Errorf("color_count must be in [%d, %d], got %d: %w", MinColorCount, MaxColorCount, o.ColorCount, ErrConfig)
	}
	for _, bg := range []Background{o.DarkBackground, o.LightBackground} {
		if bg.Policy < BackgroundExtracted || bg.Policy > BackgroundCustom {
			return fmt.Errorf("unknown background style %s: %w", bg.Policy, ErrConfig)
		}
	}
	return nil
}
