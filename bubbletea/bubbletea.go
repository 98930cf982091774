// Package bubbletea provides a Bubble Tea TUI that previews a generated
// scheme and applies it on demand.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/iro"
)

// GenerateFunc builds a scheme for the previewed wallpaper with opts.
type GenerateFunc func(opts iro.Options) (iro.ColorScheme, error)

// ApplyFunc exports and patches a scheme, returning the per-target report.
type ApplyFunc func(s iro.ColorScheme) (iro.Report, error)

// CopyFunc puts text on the system clipboard.
type CopyFunc func(text string) error

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// SchemeMsg carries the result of a generation.
type SchemeMsg struct {
	Scheme iro.ColorScheme
	Err    error
}

// AppliedMsg carries the result of applying the scheme.
type AppliedMsg struct {
	Report iro.Report
	Err    error
}

// CopiedMsg reports the result of a clipboard copy.
type CopiedMsg struct {
	Err error
}
