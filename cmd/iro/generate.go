package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fwojciec/iro"
	irojson "github.com/fwojciec/iro/json"
	"github.com/fwojciec/iro/logging"
	"github.com/fwojciec/iro/palette"
	"github.com/fwojciec/iro/patch"
	"github.com/fwojciec/iro/sample"
	"github.com/fwojciec/iro/shell"
	"github.com/fwojciec/iro/templates"
	"github.com/fwojciec/iro/toml"
	"github.com/fwojciec/iro/wallpaper"
	"github.com/fwojciec/iro/yaml"
	"github.com/spf13/cobra"
)

// session is one loaded configuration with flag overrides applied.
type session struct {
	cfg     toml.Config
	opts    iro.Options
	targets []iro.Target
	logger  *slog.Logger
	engine  *iro.Engine
	applier *iro.Applier
}

func (a *app) session(cmd *cobra.Command, f *flags) (*session, error) {
	logger := logging.New(a.stderr, f.verbose)

	path := f.configPath
	if path == "" {
		path = a.paths.ConfigFile()
	}
	cfg, err := toml.Load(path)
	if err != nil {
		return nil, err
	}
	override(cmd, f, &cfg)
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	targets, err := cfg.ResolveTargets(a.paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", path, "style", opts.Style, "mode", opts.Mode, "targets", len(targets))

	return &session{
		cfg:     cfg,
		opts:    opts,
		targets: targets,
		logger:  logger,
		engine:  iro.NewEngine(sample.Sampler{MaxDimension: cfg.Palette.MaxDimension}, palette.Builder{}),
		applier: iro.NewApplier(
			&templates.Source{Dir: a.paths.TemplateDir()},
			patch.NewPatcher(patch.WithLogger(logger)),
			iro.WithLogger(logger),
		),
	}, nil
}

// override copies explicitly set flags over config values. A background
// flag applies to both theme modes.
func override(cmd *cobra.Command, f *flags, cfg *toml.Config) {
	changed := cmd.Flags().Changed
	if changed("theme") {
		cfg.Theme.Mode = f.theme
	}
	if changed("style") {
		cfg.Palette.Style = f.style
	}
	background := f.background
	if background == "" && changed("custom-bg") {
		background = iro.BackgroundCustom.String()
	}
	if background != "" {
		cfg.Theme.DarkBackgroundStyle = background
		cfg.Theme.LightBackgroundStyle = background
	}
	if changed("custom-bg") {
		cfg.Theme.DarkBackgroundCustom = f.customBG
		cfg.Theme.LightBackgroundCustom = f.customBG
	}
	if changed("threshold") {
		cfg.Palette.DiversityThreshold = f.threshold
	}
	if changed("colors") {
		cfg.Palette.ColorCount = f.colors
	}
}

// wallpapers resolves the images to sample: the argument when given,
// otherwise n random picks from the wallpaper directory.
func (a *app) wallpapers(cfg toml.Config, f *flags, args []string, n int) ([]string, error) {
	if len(args) == 1 && !f.random {
		return []string{args[0]}, nil
	}
	dir := a.paths.Expand(cfg.WallpaperDir)
	if len(args) == 1 {
		dir = args[0]
	}
	found, err := wallpaper.Find(dir)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("no wallpapers in %s: %w", dir, iro.ErrFileAccess)
	}
	return a.picker.Pick(found, max(n, 1)), nil
}

func (a *app) generate(cmd *cobra.Command, f *flags, args []string) error {
	for _, m := range f.monitors {
		if m == "" || strings.ContainsAny(m, `/\`) {
			return fmt.Errorf("invalid monitor name %q: %w", m, iro.ErrConfig)
		}
	}
	s, err := a.session(cmd, f)
	if err != nil {
		return err
	}
	images, err := a.wallpapers(s.cfg, f, args, len(f.monitors))
	if err != nil {
		return err
	}
	schemes, err := s.engine.GenerateAll(images, s.opts)
	if err != nil {
		return err
	}
	scheme := schemes[0]
	// An explicit wallpaper argument serves every monitor.
	monitorScheme := func(i int) iro.ColorScheme {
		return schemes[min(i, len(schemes)-1)]
	}

	w := cmd.OutOrStdout()
	printScheme(w, scheme, a.color)
	for i, m := range f.monitors {
		fmt.Fprintf(w, "%s: %s\n", m, monitorScheme(i).Wallpaper)
	}

	if f.dryRun {
		return dryRun(w, s.applier, scheme, s.targets)
	}

	if err := export(a.paths.ExportDir(), scheme); err != nil {
		return err
	}
	for i, m := range f.monitors {
		if err := irojson.Save(filepath.Join(a.paths.ExportDir(), "colors-"+m+".json"), monitorScheme(i)); err != nil {
			return fmt.Errorf("export %s: %w", m, err)
		}
	}

	printReport(w, s.applier.Apply(scheme, s.targets), a.color)
	return nil
}

// export writes colors.sh, colors.json and colors.yaml into dir.
func export(dir string, s iro.ColorScheme) error {
	if err := patch.WriteFile(filepath.Join(dir, "colors.sh"), shell.Export(s), shell.FileMode); err != nil {
		return fmt.Errorf("export colors.sh: %w", err)
	}
	if err := irojson.Save(filepath.Join(dir, "colors.json"), s); err != nil {
		return fmt.Errorf("export colors.json: %w", err)
	}
	data, err := yaml.Export(s)
	if err != nil {
		return fmt.Errorf("export colors.yaml: %w", err)
	}
	if err := patch.WriteFile(filepath.Join(dir, "colors.yaml"), data, 0o644); err != nil {
		return fmt.Errorf("export colors.yaml: %w", err)
	}
	return nil
}

func dryRun(w io.Writer, applier *iro.Applier, s iro.ColorScheme, targets []iro.Target) error {
	for _, t := range targets {
		text, err := applier.Render(s, t)
		if err != nil {
			fmt.Fprintf(w, "\n%s: %v\n", t.Name, err)
			continue
		}
		fmt.Fprintf(w, "\n==> %s (%s)\n%s\n%s", t.Name, t.Path, t.Section.Begin, text)
		if !strings.HasSuffix(text, "\n") {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, t.Section.End)
	}
	return nil
}
