// Package patch rewrites iro's managed section inside foreign config files
// while leaving every other byte alone.
package patch

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/iro"
)

// Region locates a managed section in file content. All offsets are byte
// offsets into the content Find was called with.
type Region struct {
	Start     int // first byte of the begin marker line
	BodyStart int // first byte after the begin marker line
	BodyEnd   int // first byte of the end marker line
	End       int // first byte after the end marker line
}

// Find returns the region bounded by the section markers. Markers must be
// whole lines; surrounding whitespace is ignored. found is false when the file
// has no section. A second begin marker, a begin without an end, or an end
// before any begin is ErrMalformedSection.
func Find(content []byte, section iro.ManagedSection) (r Region, found bool, err error) {
	inside := false
	for off := 0; off < len(content); {
		next := len(content)
		if i := bytes.IndexByte(content[off:], '\n'); i >= 0 {
			next = off + i + 1
		}
		line := string(bytes.TrimSpace(content[off:next]))
		switch line {
		case section.Begin:
			if inside || found {
				return Region{}, false, fmt.Errorf("duplicate marker %q: %w", section.Begin, iro.ErrMalformedSection)
			}
			inside = true
			r.Start, r.BodyStart = off, next
		case section.End:
			if !inside {
				return Region{}, false, fmt.Errorf("marker %q without %q: %w", section.End, section.Begin, iro.ErrMalformedSection)
			}
			inside, found = false, true
			r.BodyEnd, r.End = off, next
		}
		off = next
	}
	if inside {
		return Region{}, false, fmt.Errorf("marker %q without %q: %w", section.Begin, section.End, iro.ErrMalformedSection)
	}
	return r, found, nil
}

// Splice replaces the body of r with body, keeping both marker lines and
// everything outside them.
func Splice(content []byte, r Region, body string) []byte {
	out := make([]byte, 0, len(content)-(r.BodyEnd-r.BodyStart)+len(body))
	out = append(out, content[:r.BodyStart]...)
	out = append(out, normalize(body)...)
	out = append(out, content[r.BodyEnd:]...)
	return out
}

// Append adds a new section at the end of content. Existing bytes are kept
// as they are; a newline is added only if the content does not end in one.
func Append(content []byte, section iro.ManagedSection, body string) []byte {
	out := bytes.Clone(content)
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	out = append(out, section.Begin...)
	out = append(out, '\n')
	out = append(out, normalize(body)...)
	out = append(out, section.End...)
	out = append(out, '\n')
	return out
}

// normalize makes a non-empty body end with exactly its own trailing newline.
func normalize(body string) string {
	if body == "" || body[len(body)-1] == '\n' {
		return body
	}
	return body + "\n"
}
