package iro

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Sampler turns an image file into weighted representative colors,
// heaviest first.
type Sampler interface {
	Sample(path string) ([]RawColor, error)
}

// Palette turns sampled colors into a finished scheme.
type Palette interface {
	Build(colors []RawColor, opts Options) (ColorScheme, error)
}

// Engine runs the color pipeline: sample, select, map hues, shape, assemble.
// It holds no mutable state, so one Engine serves concurrent runs.
type Engine struct {
	sampler Sampler
	palette Palette
}

// NewEngine creates an Engine from a sampler and a palette builder.
func NewEngine(sampler Sampler, palette Palette) *Engine {
	return &Engine{sampler: sampler, palette: palette}
}

// Generate produces one scheme for the image at path. Options are validated
// before the image is touched.
func (e *Engine) Generate(path string, opts Options) (ColorScheme, error) {
	if err := opts.Validate(); err != nil {
		return ColorScheme{}, err
	}
	colors, err := e.sampler.Sample(path)
	if err != nil {
		return ColorScheme{}, err
	}
	if len(colors) == 0 {
		return ColorScheme{}, fmt.Errorf("%s: no colors sampled: %w", path, ErrImageDecode)
	}
	s, err := e.palette.Build(colors, opts)
	if err != nil {
		return ColorScheme{}, err
	}
	s.Wallpaper = path
	return s, nil
}

// GenerateAll runs one independent pipeline per path in parallel, as when
// each monitor shows its own wallpaper. Schemes are returned in path order.
// The first failure aborts the whole call.
func (e *Engine) GenerateAll(paths []string, opts Options) ([]ColorScheme, error) {
	schemes := make([]ColorScheme, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			s, err := e.Generate(path, opts)
			if err != nil {
				return err
			}
			schemes[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return schemes, nil
}
