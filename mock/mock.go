// Package mock provides test doubles for iro interfaces using function fields.
package mock

import "github.com/fwojciec/iro"

// Interface compliance checks.
var (
	_ iro.Sampler        = (*Sampler)(nil)
	_ iro.Palette        = (*Palette)(nil)
	_ iro.TemplateSource = (*TemplateSource)(nil)
	_ iro.Patcher        = (*Patcher)(nil)
)

// Sampler is a test double for iro.Sampler.
// Set SampleFn before calling Sample.
type Sampler struct {
	SampleFn func(path string) ([]iro.RawColor, error)
}

// Sample delegates to SampleFn.
func (s *Sampler) Sample(path string) ([]iro.RawColor, error) {
	return s.SampleFn(path)
}

// Palette is a test double for iro.Palette.
type Palette struct {
	BuildFn func(colors []iro.RawColor, opts iro.Options) (iro.ColorScheme, error)
}

// Build delegates to BuildFn.
func (p *Palette) Build(colors []iro.RawColor, opts iro.Options) (iro.ColorScheme, error) {
	return p.BuildFn(colors, opts)
}

// TemplateSource is a test double for iro.TemplateSource.
type TemplateSource struct {
	TemplateFn func(name string) (iro.Template, error)
}

// Template delegates to TemplateFn.
func (s *TemplateSource) Template(name string) (iro.Template, error) {
	return s.TemplateFn(name)
}

// Patcher is a test double for iro.Patcher.
// PatchFn may be called from several goroutines at once.
type Patcher struct {
	PatchFn func(path string, section iro.ManagedSection, text string) (iro.PatchStatus, error)
}

// Patch delegates to PatchFn.
func (p *Patcher) Patch(path string, section iro.ManagedSection, text string) (iro.PatchStatus, error) {
	return p.PatchFn(path, section, text)
}
