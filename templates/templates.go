// Package templates resolves the template for each target: a user file in
// the template directory when present, otherwise a built-in.
package templates

import (
	"embed"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/iro"
)

//go:embed builtin/*.tmpl
var builtin embed.FS

// Ext is the file extension of template files.
const Ext = ".tmpl"

var _ iro.TemplateSource = (*Source)(nil)

// Source implements iro.TemplateSource.
type Source struct {
	// Dir holds user templates named <name>.tmpl. Empty means built-ins only.
	Dir string
}

// Template returns the user template called name if one exists in Dir,
// otherwise the built-in one.
func (s *Source) Template(name string) (iro.Template, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return iro.Template{}, fmt.Errorf("invalid template name %q: %w", name, iro.ErrTemplateNotFound)
	}
	if s.Dir != "" {
		data, err := os.ReadFile(filepath.Join(s.Dir, name+Ext))
		if err == nil {
			return iro.Template{Name: name, Text: string(data)}, nil
		}
		if !errors.Is(err, iofs.ErrNotExist) {
			return iro.Template{}, fmt.Errorf("read template %s: %w", name, err)
		}
	}
	return Builtin(name)
}

// Builtin returns the embedded template called name.
func Builtin(name string) (iro.Template, error) {
	data, err := builtin.ReadFile("builtin/" + name + Ext)
	if err != nil {
		return iro.Template{}, fmt.Errorf("template %s: %w", name, iro.ErrTemplateNotFound)
	}
	return iro.Template{Name: name, Text: string(data)}, nil
}

// BuiltinNames lists the embedded templates in sorted order.
func BuiltinNames() []string {
	entries, _ := builtin.ReadDir("builtin")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), Ext))
	}
	slices.Sort(names)
	return names
}

type defaultTarget struct {
	name    string
	path    string // relative to the config home
	comment iro.CommentStyle
}

var defaults = []defaultTarget{
	{name: "kitty", path: "kitty/kitty.conf", comment: iro.CommentHash},
	{name: "hyprland", path: "hypr/hyprland.conf", comment: iro.CommentHash},
	{name: "waybar", path: "waybar/style.css", comment: iro.CommentBlock},
	{name: "rofi", path: "rofi/colors.rasi", comment: iro.CommentSlash},
	{name: "foot", path: "foot/foot.ini", comment: iro.CommentHash},
}

// DefaultTargets returns the built-in application targets under configHome,
// typically ~/.config.
func DefaultTargets(configHome string) []iro.Target {
	targets := make([]iro.Target, len(defaults))
	for i, d := range defaults {
		targets[i] = iro.Target{
			Name:     d.name,
			Path:     filepath.Join(configHome, filepath.FromSlash(d.path)),
			Template: d.name,
			Section:  iro.SectionFor(d.name, d.comment),
		}
	}
	return targets
}

// CommentStyleFor guesses the comment syntax of a config file from its
// extension.
func CommentStyleFor(path string) iro.CommentStyle {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css", ".scss":
		return iro.CommentBlock
	case ".rasi", ".js", ".jsonc":
		return iro.CommentSlash
	default:
		return iro.CommentHash
	}
}
