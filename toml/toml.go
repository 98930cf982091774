// Package toml loads and saves the iro configuration file.
package toml

import (
	"bytes"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/iro"
	"github.com/fwojciec/iro/patch"
	"github.com/fwojciec/iro/sample"
	"github.com/fwojciec/iro/templates"
)

// Config is the on-disk configuration.
type Config struct {
	Theme        Theme    `toml:"theme"`
	Palette      Palette  `toml:"palette"`
	WallpaperDir string   `toml:"wallpaper_dir"`
	Targets      []Target `toml:"targets,omitempty"`
}

// Theme selects the mode and the background policy per mode.
type Theme struct {
	Mode                  string `toml:"mode"`
	DarkBackgroundStyle   string `toml:"dark_background_style"`
	DarkBackgroundCustom  string `toml:"dark_background_custom,omitempty"`
	LightBackgroundStyle  string `toml:"light_background_style"`
	LightBackgroundCustom string `toml:"light_background_custom,omitempty"`
}

// Palette holds the color pipeline parameters.
type Palette struct {
	Style              string  `toml:"style"`
	DiversityThreshold float64 `toml:"diversity_threshold"`
	ColorCount         int     `toml:"color_count"`
	MaxDimension       int     `toml:"max_dimension"`
}

// Target overrides the built-in application targets. When any target is
// configured, only configured targets are patched.
type Target struct {
	Name     string `toml:"name"`
	Path     string `toml:"path"`
	Template string `toml:"template,omitempty"` // defaults to Name
	Comment  string `toml:"comment,omitempty"`  // hash, block or slash; guessed from Path when empty
}

// Default returns the configuration written on first run.
func Default() Config {
	return Config{
		Theme: Theme{
			Mode:                 "dark",
			DarkBackgroundStyle:  "extracted",
			LightBackgroundStyle: "extracted",
		},
		Palette: Palette{
			Style:              iro.StyleLofi.String(),
			DiversityThreshold: iro.DefaultDiversityThreshold,
			ColorCount:         iro.DefaultColorCount,
			MaxDimension:       sample.DefaultMaxDimension,
		},
		WallpaperDir: "~/Pictures/Wallpaper",
	}
}

// Paths are the directories iro reads from and writes to.
type Paths struct {
	ConfigHome string // parent of application config dirs, e.g. ~/.config
	Home       string // user home, for expanding "~"
}

// DefaultPaths resolves Paths for the current user.
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("home directory: %w", err)
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	return Paths{ConfigHome: configHome, Home: home}, nil
}

// Dir is iro's own config directory.
func (p Paths) Dir() string { return filepath.Join(p.ConfigHome, "iro") }

// ConfigFile is the default config file path.
func (p Paths) ConfigFile() string { return filepath.Join(p.Dir(), "config.toml") }

// TemplateDir holds user templates that override built-ins.
func (p Paths) TemplateDir() string { return filepath.Join(p.Dir(), "templates") }

// ExportDir receives colors.sh, colors.json and colors.yaml.
func (p Paths) ExportDir() string { return p.Dir() }

// Expand replaces a leading "~" with the home directory.
func (p Paths) Expand(path string) string {
	if path == "~" {
		return p.Home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(p.Home, rest)
	}
	return path
}

// Load reads the config at path. A missing file is created with defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, iofs.ErrNotExist) {
		cfg = Default()
		if err := Save(path, cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %v: %w", path, err, iro.ErrConfig)
	}
	return cfg, nil
}

// Save writes cfg to path atomically.
func Save(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return patch.WriteFile(path, buf.Bytes(), 0o644)
}

// Options resolves the config into engine options. Invalid values wrap
// iro.ErrConfig.
func (c Config) Options() (iro.Options, error) {
	opts := iro.DefaultOptions()
	var err error
	if opts.Style, err = iro.ParseStyle(c.Palette.Style); err != nil {
		return iro.Options{}, err
	}
	if opts.Mode, err = iro.ParseMode(c.Theme.Mode); err != nil {
		return iro.Options{}, err
	}
	if opts.DarkBackground, err = background(c.Theme.DarkBackgroundStyle, c.Theme.DarkBackgroundCustom); err != nil {
		return iro.Options{}, fmt.Errorf("dark background: %w", err)
	}
	if opts.LightBackground, err = background(c.Theme.LightBackgroundStyle, c.Theme.LightBackgroundCustom); err != nil {
		return iro.Options{}, fmt.Errorf("light background: %w", err)
	}
	opts.DiversityThreshold = c.Palette.DiversityThreshold
	opts.ColorCount = c.Palette.ColorCount
	if err := opts.Validate(); err != nil {
		return iro.Options{}, err
	}
	return opts, nil
}

func background(style, custom string) (iro.Background, error) {
	policy, err := iro.ParseBackgroundPolicy(style)
	if err != nil {
		return iro.Background{}, err
	}
	if policy != iro.BackgroundCustom {
		return iro.Background{Policy: policy}, nil
	}
	if custom == "" {
		return iro.Background{}, fmt.Errorf("custom background needs a color: %w", iro.ErrConfig)
	}
	return iro.CustomBackground(custom)
}

// ResolveTargets returns the configured targets, or the built-in ones when
// none are configured.
func (c Config) ResolveTargets(p Paths) ([]iro.Target, error) {
	if len(c.Targets) == 0 {
		return templates.DefaultTargets(p.ConfigHome), nil
	}
	out := make([]iro.Target, 0, len(c.Targets))
	for i, t := range c.Targets {
		if t.Name == "" || t.Path == "" {
			return nil, fmt.Errorf("target %d: name and path are required: %w", i, iro.ErrConfig)
		}
		path := p.Expand(t.Path)
		style, err := commentStyle(t.Comment, path)
		if err != nil {
			return nil, fmt.Errorf("target %s: %w", t.Name, err)
		}
		tmpl := t.Template
		if tmpl == "" {
			tmpl = t.Name
		}
		out = append(out, iro.Target{
			Name:     t.Name,
			Path:     path,
			Template: tmpl,
			Section:  iro.SectionFor(t.Name, style),
		})
	}
	return out, nil
}

func commentStyle(name, path string) (iro.CommentStyle, error) {
	switch strings.ToLower(name) {
	case "":
		return templates.CommentStyleFor(path), nil
	case "hash":
		return iro.CommentHash, nil
	case "block":
		return iro.CommentBlock, nil
	case "slash":
		return iro.CommentSlash, nil
	default:
		return 0, fmt.Errorf("unknown comment style %q: %w", name, iro.ErrConfig)
	}
}
