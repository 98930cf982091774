package iro

import (
	"fmt"
	"strings"
)

// Mode selects a dark or light scheme.
type Mode int

const (
	ModeDark Mode = iota
	ModeLight
	// ModeAuto picks dark or light from the wallpaper's overall luminance.
	ModeAuto
)

func (m Mode) String() string {
	switch m {
	case ModeDark:
		return "dark"
	case ModeLight:
		return "light"
	case ModeAuto:
		return "auto"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "dark", "light" or "auto".
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dark":
		return ModeDark, nil
	case "light":
		return ModeLight, nil
	case "auto":
		return ModeAuto, nil
	default:
		return 0, fmt.Errorf("unknown theme mode %q: %w", name, ErrConfig)
	}
}

// BackgroundPolicy decides where the scheme background comes from.
type BackgroundPolicy int

const (
	// BackgroundExtracted derives the background from the wallpaper.
	BackgroundExtracted BackgroundPolicy = iota
	// BackgroundPure uses a fixed per-mode constant.
	BackgroundPure
	// BackgroundCustom uses a user-supplied color verbatim.
	BackgroundCustom
)

func (p BackgroundPolicy) String() string {
	switch p {
	case BackgroundExtracted:
		return "extracted"
	case BackgroundPure:
		return "pure"
	case BackgroundCustom:
		return "custom"
	default:
		return fmt.Sprintf("BackgroundPolicy(%d)", int(p))
	}
}

// ParseBackgroundPolicy accepts "extracted", "custom", and "pure" with the
// optional "-dark"/"-light" suffixes used by config files.
func ParseBackgroundPolicy(name string) (BackgroundPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "extracted", "":
		return BackgroundExtracted, nil
	case "pure", "pure-dark", "pure-light":
		return BackgroundPure, nil
	case "custom":
		return BackgroundCustom, nil
	default:
		return 0, fmt.Errorf("unknown background style %q: %w", name, ErrConfig)
	}
}

// Pure background constants.
var (
	PureDarkBackground  = Color{0x1e, 0x1e, 0x2e}
	PureLightBackground = Color{0xef, 0xf1, 0xf5}
)

// Background is a background policy plus the custom color it may carry.
type Background struct {
	Policy BackgroundPolicy
	Custom Color // used only by BackgroundCustom
}

// CustomBackground parses hex and returns a custom Background.
func CustomBackground(hex string) (Background, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return Background{}, err
	}
	return Background{Policy: BackgroundCustom, Custom: c}, nil
}
