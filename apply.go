package iro

import (
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// TemplateSource resolves a template by name.
type TemplateSource interface {
	Template(name string) (Template, error)
}

// Patcher writes rendered text into the managed section of a file.
// Implementations must serialize concurrent patches of the same path.
type Patcher interface {
	Patch(path string, section ManagedSection, text string) (PatchStatus, error)
}

// Applier renders a scheme for every target and hands each result to the
// Patcher. Failures are isolated per target.
type Applier struct {
	templates TemplateSource
	patcher   Patcher
	logger    *slog.Logger
	limit     int
}

// ApplyOption configures an Applier.
type ApplyOption func(*Applier)

// WithLogger sets the logger used for per-target results.
func WithLogger(l *slog.Logger) ApplyOption {
	return func(a *Applier) {
		a.logger = l
	}
}

// WithConcurrency bounds how many targets are processed at once.
// Values below 1 mean one at a time.
func WithConcurrency(n int) ApplyOption {
	return func(a *Applier) {
		a.limit = n
	}
}

// NewApplier creates an Applier. By default it logs nowhere and processes up
// to four targets concurrently.
func NewApplier(templates TemplateSource, patcher Patcher, opts ...ApplyOption) *Applier {
	a := &Applier{
		templates: templates,
		patcher:   patcher,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		limit:     4,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.limit < 1 {
		a.limit = 1
	}
	return a
}

// Render renders the target's template without touching its file.
func (a *Applier) Render(s ColorScheme, t Target) (string, error) {
	tmpl, err := a.templates.Template(t.Template)
	if err != nil {
		return "", err
	}
	return tmpl.Render(s), nil
}

// Apply renders and patches every target. It never fails as a whole; each
// target's outcome is in the report.
func (a *Applier) Apply(s ColorScheme, targets []Target) Report {
	results := make([]TargetResult, len(targets))
	var g errgroup.Group
	g.SetLimit(a.limit)
	for i, t := range targets {
		g.Go(func() error {
			results[i] = a.apply(s, t)
			return nil
		})
	}
	_ = g.Wait()
	return Report{Results: results}
}

func (a *Applier) apply(s ColorScheme, t Target) TargetResult {
	res := TargetResult{Target: t}
	rendered, err := a.Render(s, t)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		a.logger.Error("render failed", "target", t.Name, "error", err)
		return res
	}
	res.Rendered = rendered
	res.Status, res.Err = a.patcher.Patch(t.Path, t.Section, rendered)
	switch {
	case res.Status == StatusSkipped:
		a.logger.Debug("target skipped", "target", t.Name, "path", t.Path, "reason", res.Err)
	case res.Err != nil:
		res.Status = StatusFailed
		a.logger.Error("patch failed", "target", t.Name, "path", t.Path, "error", res.Err)
	default:
		a.logger.Debug("target updated", "target", t.Name, "path", t.Path, "status", res.Status)
	}
	return res
}
