package bubbletea

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/iro"
	"github.com/mattn/go-runewidth"
)

var _ tea.Model = Model{}

// Option configures a Model.
type Option func(*Model)

// WithCopy replaces the clipboard writer.
func WithCopy(fn CopyFunc) Option {
	return func(m *Model) {
		m.copy = fn
	}
}

// Model is the Bubble Tea model for the scheme preview.
type Model struct {
	// Help renders the key hints. Exported for test access.
	Help help.Model

	title    string
	opts     iro.Options
	generate GenerateFunc
	apply    ApplyFunc
	copy     CopyFunc
	keys     KeyMap
	styles   Styles

	scheme   iro.ColorScheme
	ready    bool
	busy     bool
	status   string
	err      error
	width    int
	applied  bool
	problems []iro.TargetResult // skipped or failed targets of the last apply
}

// New creates a preview for the wallpaper called title. generate is called
// once on start and again whenever style or mode changes.
func New(title string, opts iro.Options, generate GenerateFunc, apply ApplyFunc, options ...Option) Model {
	m := Model{
		Help:     help.New(),
		title:    title,
		opts:     opts,
		generate: generate,
		apply:    apply,
		copy:     clipboard.WriteAll,
		keys:     DefaultKeyMap(),
		styles:   NewStyles(),
		busy:     true,
	}
	for _, o := range options {
		o(&m)
	}
	return m
}

// Options returns the options of the current preview.
func (m Model) Options() iro.Options { return m.opts }

// Scheme returns the scheme on screen and whether one has been generated.
func (m Model) Scheme() (iro.ColorScheme, bool) { return m.scheme, m.ready }

// Applied reports whether the scheme was applied during the session.
func (m Model) Applied() bool { return m.applied }

// Err returns the last error, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return generateCmd(m.generate, m.opts)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SchemeMsg:
		m.busy = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.scheme = msg.Scheme
		m.ready = true
		m.status = fmt.Sprintf("%s · %s", msg.Scheme.Style, msg.Scheme.Mode)
		return m, nil

	case AppliedMsg:
		m.busy = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.applied = true
		m.err = nil
		m.problems = msg.Report.Problems()
		m.status = fmt.Sprintf("%d/%d targets updated", msg.Report.Succeeded(), msg.Report.Total())
		return m, nil

	case CopiedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.status = "copied to clipboard"
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil
	}
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Style):
		m.opts.Style = m.opts.Style.Next()
		m = m.regenerating()
		return m, generateCmd(m.generate, m.opts)

	case key.Matches(msg, m.keys.Mode):
		m.opts.Mode = iro.ModeLight
		if m.ready && m.scheme.Mode == iro.ModeLight {
			m.opts.Mode = iro.ModeDark
		}
		m = m.regenerating()
		return m, generateCmd(m.generate, m.opts)

	case key.Matches(msg, m.keys.Apply):
		if !m.ready {
			return m, nil
		}
		m.busy = true
		m.status = "applying..."
		return m, applyCmd(m.apply, m.scheme)

	case key.Matches(msg, m.keys.Copy):
		if !m.ready {
			return m, nil
		}
		return m, copyCmd(m.copy, Summary(m.scheme))
	}
	return m, nil
}

// regenerating marks the model busy and forgets the last apply, which was
// for the previous scheme.
func (m Model) regenerating() Model {
	m.busy = true
	m.applied = false
	m.problems = nil
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.titleLine()))
	b.WriteString("\n\n")

	if m.ready {
		for _, name := range iro.SemanticNames {
			c, _ := m.scheme.Lookup(name)
			b.WriteString(m.styles.Label.Render(name))
			b.WriteString(Swatch(c).Render(c.Hex()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.terminalRow(0))
		b.WriteString("\n")
		b.WriteString(m.terminalRow(8))
		b.WriteString("\n\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	for _, res := range m.problems {
		b.WriteString(m.styles.Error.Render(res.String()))
		b.WriteString("\n")
	}
	b.WriteString(m.Help.View(m.keys))
	return b.String()
}

func (m Model) titleLine() string {
	title := "iro · " + m.title
	if m.width > 0 {
		title = runewidth.Truncate(title, m.width, "…")
	}
	return title
}

func (m Model) terminalRow(start int) string {
	cells := make([]string, 8)
	for i := range cells {
		c := m.scheme.Terminal[start+i]
		cells[i] = Swatch(c).Render(fmt.Sprintf("%2d", start+i))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.busy && !m.ready {
		return m.styles.Muted.Render("Generating...")
	}
	if m.applied {
		return m.styles.Success.Render(m.status)
	}
	return m.styles.Muted.Render(m.status)
}

// Summary formats the semantic colors as "name #rrggbb" lines.
func Summary(s iro.ColorScheme) string {
	var b strings.Builder
	for _, name := range iro.SemanticNames {
		c, _ := s.Lookup(name)
		fmt.Fprintf(&b, "%s %s\n", name, c.Hex())
	}
	return b.String()
}

func generateCmd(fn GenerateFunc, opts iro.Options) tea.Cmd {
	return func() tea.Msg {
		s, err := fn(opts)
		return SchemeMsg{Scheme: s, Err: err}
	}
}

func applyCmd(fn ApplyFunc, s iro.ColorScheme) tea.Cmd {
	return func() tea.Msg {
		if fn == nil {
			return AppliedMsg{Err: errors.New("apply is not available")}
		}
		r, err := fn(s)
		return AppliedMsg{Report: r, Err: err}
	}
}

func copyCmd(fn CopyFunc, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Err: fn(text)}
	}
}
