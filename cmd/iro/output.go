package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fwojciec/iro"
	bt "github.com/fwojciec/iro/bubbletea"
)

func printScheme(w io.Writer, s iro.ColorScheme, color bool) {
	fmt.Fprintf(w, "%s: %s %s\n", filepath.Base(s.Wallpaper), s.Style, s.Mode)
	if !color {
		fmt.Fprint(w, bt.Summary(s))
		return
	}
	styles := bt.NewStyles()
	for _, name := range iro.SemanticNames {
		c, _ := s.Lookup(name)
		fmt.Fprintln(w, styles.Label.Render(name)+bt.Swatch(c).Render(c.Hex()))
	}
}

func printReport(w io.Writer, r iro.Report, color bool) {
	styles := bt.NewStyles()
	for _, res := range r.Results {
		line := res.String()
		if color {
			style := styles.Muted
			if !res.Status.Succeeded() {
				style = styles.Error
			}
			line = style.Render(line)
		}
		fmt.Fprintln(w, line)
	}
	summary := fmt.Sprintf("%d/%d targets updated", r.Succeeded(), r.Total())
	if color && r.Succeeded() == r.Total() {
		summary = styles.Success.Render(summary)
	}
	fmt.Fprintln(w, summary)
}
