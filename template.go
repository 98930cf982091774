package iro

import (
	"fmt"
	"regexp"
)

// Template is a named text blob with {{ variable }} placeholders.
type Template struct {
	Name string
	Text string
}

// placeholder matches "{{ name }}" and "{{ name | modifier }}".
var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*(?:\|\s*([A-Za-z]+)\s*)?\}\}`)

// Render substitutes scheme colors into the template in a single pass.
// Unknown variables and modifiers are left verbatim so user templates written
// against a newer grammar still render.
//
// Modifiers: "strip" renders rrggbb without '#', "rgb" renders "r, g, b".
func (t Template) Render(s ColorScheme) string {
	return placeholder.ReplaceAllStringFunc(t.Text, func(match string) string {
		sub := placeholder.FindStringSubmatch(match)
		c, ok := s.Lookup(sub[1])
		if !ok {
			return match
		}
		switch sub[2] {
		case "":
			return c.Hex()
		case "strip":
			return c.Hex()[1:]
		case "rgb":
			return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
		default:
			return match
		}
	})
}
