// Package yaml renders a color scheme as a YAML document for tools that
// read YAML palettes.
package yaml

import (
	"fmt"

	"github.com/fwojciec/iro"
	"gopkg.in/yaml.v3"
)

// document mirrors the JSON export layout. Colors encode as "#rrggbb".
type document struct {
	Mode    string            `yaml:"mode"`
	Style   string            `yaml:"style"`
	Special special           `yaml:"special"`
	Named   map[string]string `yaml:"named"`
	Colors  []string          `yaml:"colors"`
}

type special struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Accent     string `yaml:"accent"`
	Secondary  string `yaml:"secondary"`
	Surface    string `yaml:"surface"`
	Error      string `yaml:"error"`
}

// Export renders s as YAML.
func Export(s iro.ColorScheme) ([]byte, error) {
	doc := document{
		Mode:  s.Mode.String(),
		Style: s.Style.String(),
		Special: special{
			Background: s.Background.Hex(),
			Foreground: s.Foreground.Hex(),
			Accent:     s.Accent.Hex(),
			Secondary:  s.Secondary.Hex(),
			Surface:    s.Surface.Hex(),
			Error:      s.Error.Hex(),
		},
		Named:  make(map[string]string, len(iro.ChromaticSlots)),
		Colors: make([]string, len(s.Terminal)),
	}
	for _, slot := range iro.ChromaticSlots {
		doc.Named[slot.String()] = s.Terminal[slot.ANSIIndex()].Hex()
	}
	for i, c := range s.Terminal {
		doc.Colors[i] = c.Hex()
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return data, nil
}
