// Package json persists color schemes as versioned JSON documents.
package json

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/iro"
	"github.com/fwojciec/iro/patch"
)

// envelope is the v1 wire format for an exported scheme. Colors marshal as
// "#rrggbb" strings.
type envelope struct {
	Version    int           `json:"version"`
	Mode       string        `json:"mode"`
	Style      string        `json:"style"`
	Background iro.Color     `json:"background"`
	Foreground iro.Color     `json:"foreground"`
	Accent     iro.Color     `json:"accent"`
	Secondary  iro.Color     `json:"secondary"`
	Surface    iro.Color     `json:"surface"`
	Error      iro.Color     `json:"error"`
	Colors     [16]iro.Color `json:"colors"`
	Wallpaper  string        `json:"wallpaper,omitempty"`
}

// MarshalScheme serializes a ColorScheme to JSON in v1 envelope format.
func MarshalScheme(s iro.ColorScheme) ([]byte, error) {
	env := envelope{
		Version:    1,
		Mode:       s.Mode.String(),
		Style:      s.Style.String(),
		Background: s.Background,
		Foreground: s.Foreground,
		Accent:     s.Accent,
		Secondary:  s.Secondary,
		Surface:    s.Surface,
		Error:      s.Error,
		Colors:     s.Terminal,
		Wallpaper:  s.Wallpaper,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// UnmarshalScheme deserializes a ColorScheme from JSON in v1 envelope format.
func UnmarshalScheme(data []byte) (iro.ColorScheme, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return iro.ColorScheme{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return iro.ColorScheme{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	mode, err := iro.ParseMode(env.Mode)
	if err != nil {
		return iro.ColorScheme{}, err
	}
	style, err := iro.ParseStyle(env.Style)
	if err != nil {
		return iro.ColorScheme{}, err
	}
	return iro.ColorScheme{
		Background: env.Background,
		Foreground: env.Foreground,
		Accent:     env.Accent,
		Secondary:  env.Secondary,
		Surface:    env.Surface,
		Error:      env.Error,
		Terminal:   env.Colors,
		Mode:       mode,
		Style:      style,
		Wallpaper:  env.Wallpaper,
	}, nil
}

// Save atomically writes a ColorScheme to a JSON file, creating parent
// directories as needed.
func Save(path string, s iro.ColorScheme) error {
	data, err := MarshalScheme(s)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return patch.WriteFile(path, data, 0o644)
}

// Load reads a ColorScheme from a JSON file.
func Load(path string) (iro.ColorScheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return iro.ColorScheme{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalScheme(data)
}
