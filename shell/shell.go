// Package shell renders a color scheme as a sourceable POSIX shell script.
package shell

import (
	"fmt"
	"strings"

	"github.com/fwojciec/iro"
)

// FileMode is the permission of the exported script.
const FileMode = 0o755

// Prefix is prepended to every exported variable name.
const Prefix = "IRO_"

// Export renders s as lines of `export IRO_NAME='#rrggbb'`: the semantic
// colors, the named ANSI colors, then IRO_COLOR0 to IRO_COLOR15.
func Export(s iro.ColorScheme) []byte {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString("# Generated by iro. Source this file; edits are overwritten.\n")
	fmt.Fprintf(&b, "export %sMODE='%s'\n", Prefix, s.Mode)
	fmt.Fprintf(&b, "export %sSTYLE='%s'\n", Prefix, s.Style)
	for _, name := range iro.SemanticNames {
		c, _ := s.Lookup(name)
		writeVar(&b, name, c)
	}
	for _, slot := range iro.ChromaticSlots {
		writeVar(&b, slot.String(), s.Terminal[slot.ANSIIndex()])
	}
	for i, c := range s.Terminal {
		writeVar(&b, fmt.Sprintf("color%d", i), c)
	}
	return []byte(b.String())
}

func writeVar(b *strings.Builder, name string, c iro.Color) {
	fmt.Fprintf(b, "export %s%s='%s'\n", Prefix, strings.ToUpper(name), c.Hex())
}
