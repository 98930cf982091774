package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/iro"
)

// Styles holds the lipgloss styles for TUI chrome. Swatches are styled from
// the scheme itself.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

// NewStyles creates the default chrome styles using ANSI colors so they
// follow whatever palette the terminal currently has.
func NewStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Label:   lipgloss.NewStyle().Width(11),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// Swatch returns a block style filled with c and labeled in black or white,
// whichever reads better.
func Swatch(c iro.Color) lipgloss.Style {
	text := iro.White
	if c.Luminance() > 0.4 {
		text = iro.Black
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(text.Hex())).
		Padding(0, 1)
}
