package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/iro"
	irojson "github.com/fwojciec/iro/json"
	"github.com/fwojciec/iro/patch"
	"github.com/fwojciec/iro/toml"
	"github.com/fwojciec/iro/wallpaper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	home := t.TempDir()
	return &app{
		paths:  toml.Paths{ConfigHome: filepath.Join(home, ".config"), Home: home},
		stderr: &bytes.Buffer{},
		picker: wallpaper.Picker{Rand: rand.New(rand.NewPCG(1, 2))},
	}
}

func execute(a *app, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd(a, &flags{})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeWallpaper writes a PNG with four solid quadrants.
func writeWallpaper(t *testing.T, path string) {
	t.Helper()
	quadrants := []color.RGBA{
		{200, 40, 40, 255},
		{40, 60, 200, 255},
		{60, 160, 80, 255},
		{220, 200, 120, 255},
	}
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := range 64 {
		for x := range 64 {
			img.Set(x, y, quadrants[(y/32)*2+x/32])
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func writeKittyConf(t *testing.T, a *app) string {
	t.Helper()
	path := filepath.Join(a.paths.ConfigHome, "kitty", "kitty.conf")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("font_size 12\n"), 0o644))
	return path
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("exports and patches existing targets", func(t *testing.T) {
		t.Parallel()
		a := newTestApp(t)
		img := filepath.Join(a.paths.Home, "wall.png")
		writeWallpaper(t, img)
		kitty := writeKittyConf(t, a)

		out, err := execute(a, img)
		require.NoError(t, err)
		assert.Contains(t, out, "wall.png: lofi dark")
		assert.Contains(t, out, "appended kitty")
		assert.Contains(t, out, "skipped hyprland")
		assert.Contains(t, out, "1/5 targets updated")

		content, err := os.ReadFile(kitty)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "font_size 12\n"))
		assert.Contains(t, string(content), "# >>> iro kitty >>>")

		backup, err := os.ReadFile(kitty + patch.DefaultBackupSuffix)
		require.NoError(t, err)
		assert.Equal(t, "font_size 12\n", string(backup))

		dir := a.paths.ExportDir()
		info, err := os.Stat(filepath.Join(dir, "colors.sh"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
		assert.FileExists(t, filepath.Join(dir, "colors.yaml"))
		assert.FileExists(t, a.paths.ConfigFile())

		s, err := irojson.Load(filepath.Join(dir, "colors.json"))
		require.NoError(t, err)
		assert.Equal(t, iro.ModeDark, s.Mode)
		assert.Contains(t, string(content), s.Background.Hex())
	})

	t.Run("second run is a no-op on target contents", func(t *testing.T) {
		t.Parallel()
		a := newTestApp(t)
		img := filepath.Join(a.paths.Home, "wall.png")
		writeWallpaper(t, img)
		kitty := writeKittyConf(t, a)

		_, err := execute(a, img)
		require.NoError(t, err)
		first, err := os.ReadFile(kitty)
		require.NoError(t, err)

		out, err := execute(a, img)
		require.NoError(t, err)
		assert.Contains(t, out, "patched kitty")
		second, err := os.ReadFile(kitty)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second))
	})

	t.Run("flags override config", func(t *testing.T) {
		t.Parallel()
		a := newTestApp(t)
		img := filepath.Join(a.paths.Home, "wall.png")
		writeWallpaper(t, img)

		_, err := execute(a, img, "--style", "nord", "--theme", "light", "--custom-bg", "#1a1b26")
		require.NoError(t, err)

		s, err := irojson.Load(filepath.Join(a.paths.ExportDir(), "colors.json"))
		require.NoError(t, err)
		assert.Equal(t, iro.StyleNord, s.Style)
		assert.Equal(t, iro.ModeLight, s.Mode)
		assert.Equal(t, "#1a1b26", s.Background.Hex())
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		t.Parallel()
		a := newTestApp(t)
		img := filepath.Join(a.paths.Home, "wall.png")
		writeWallpaper(t, img)
		kitty := writeKittyConf(t, a)

		out, err := execute(a, img, "--dry-run")
		require.NoError(t, err)
		assert.Contains(t, out, "==> kitty ("+kitty+")")
		assert.Contains(t, out, "/* >>> iro waybar >>> */")
		assert.NotContains(t, out, "targets updated")

		content, err := os.ReadFile(kitty)
		require.NoError(t, err)
		assert.Equal(t, "font_size 12\n", string(content))
		assert.NoFileExists(t, filepath.Join(a.paths.ExportDir(), "colors.sh"))
		assert.NoFileExists(t, kitty+patch.DefaultBackupSuffix)
	})

	t.Run("random per monitor", func(t *testing.T) {
		t.Parallel()
		a := newTestApp(t)
		walls := filepath.Join(a.paths.Home, "Pictures", "Wallpaper")
		writeWallpaper(t, filepath.Join(walls, "a.png"))
		writeWallpaper(t, filepath.Join(walls, "nested", "b.png"))

		out, err := execute(a, "--random", "--monitors", "DP-1,HDMI-A-1")
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(a.paths.ExportDir(), "colors.json"))

		picked := map[string]bool{}
		for _, m := range []string{"DP-1", "HDMI-A-1"} {
			s, err := irojson.Load(filepath.Join(a.paths.ExportDir(), "colors-"+m+".json"))
			require.NoError(t, err)
			require.NotEmpty(t, s.Wallpaper, m)
			assert.Contains(t, out, m+": "+s.Wallpaper+"\n")
			picked[s.Wallpaper] = true
		}
		assert.Len(t, picked, 2, "each monitor gets its own wallpaper")
	})

	t.Run("explicit wallpaper serves every monitor", func(t *testing.T) {
		t.Parallel()
		a := newTestApp(t)
		img := filepath.Join(a.paths.Home, "wall.png")
		writeWallpaper(t, img)

		out, err := execute(a, img, "--monitors", "DP-1,DP-2")
		require.NoError(t, err)
		assert.Contains(t, out, "DP-1: "+img+"\n")
		assert.Contains(t, out, "DP-2: "+img+"\n")
		s, err := irojson.Load(filepath.Join(a.paths.ExportDir(), "colors-DP-2.json"))
		require.NoError(t, err)
		assert.Equal(t, img, s.Wallpaper)
	})

	t.Run("empty wallpaper directory", func(t *testing.T) {
		t.Parallel()
		a := newTestApp(t)
		require.NoError(t, os.MkdirAll(filepath.Join(a.paths.Home, "Pictures", "Wallpaper"), 0o755))

		_, err := execute(a)
		require.ErrorIs(t, err, iro.ErrFileAccess)
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()
		a := newTestApp(t)
		img := filepath.Join(a.paths.Home, "wall.png")
		writeWallpaper(t, img)

		_, err := execute(a, img, "--style", "neon")
		require.ErrorIs(t, err, iro.ErrConfig)
	})

	t.Run("monitor name with separator", func(t *testing.T) {
		t.Parallel()
		a := newTestApp(t)

		_, err := execute(a, "--monitors", "../x")
		require.ErrorIs(t, err, iro.ErrConfig)
	})

	t.Run("unreadable image", func(t *testing.T) {
		t.Parallel()
		a := newTestApp(t)
		img := filepath.Join(a.paths.Home, "broken.png")
		require.NoError(t, os.WriteFile(img, []byte("not a png"), 0o644))

		_, err := execute(a, img)
		require.ErrorIs(t, err, iro.ErrImageDecode)
	})
}

func TestOverride(t *testing.T) {
	t.Parallel()

	t.Run("custom background implies custom policy", func(t *testing.T) {
		t.Parallel()
		f := &flags{}
		cmd := newRootCmd(newTestApp(t), f)
		require.NoError(t, cmd.ParseFlags([]string{"--custom-bg", "#101010", "--threshold", "80"}))

		cfg := toml.Default()
		override(cmd, f, &cfg)
		assert.Equal(t, "custom", cfg.Theme.DarkBackgroundStyle)
		assert.Equal(t, "custom", cfg.Theme.LightBackgroundStyle)
		assert.Equal(t, "#101010", cfg.Theme.DarkBackgroundCustom)
		assert.Equal(t, "#101010", cfg.Theme.LightBackgroundCustom)
		assert.InDelta(t, 80.0, cfg.Palette.DiversityThreshold, 1e-9)
		assert.Equal(t, iro.DefaultColorCount, cfg.Palette.ColorCount)
	})

	t.Run("unset flags keep config values", func(t *testing.T) {
		t.Parallel()
		f := &flags{}
		cmd := newRootCmd(newTestApp(t), f)
		require.NoError(t, cmd.ParseFlags(nil))

		cfg := toml.Default()
		cfg.Palette.Style = "warm"
		override(cmd, f, &cfg)
		assert.Equal(t, toml.Config{
			Theme:        toml.Default().Theme,
			Palette:      toml.Palette{Style: "warm", DiversityThreshold: iro.DefaultDiversityThreshold, ColorCount: iro.DefaultColorCount, MaxDimension: toml.Default().Palette.MaxDimension},
			WallpaperDir: toml.Default().WallpaperDir,
		}, cfg)
	})
}

func TestStyles(t *testing.T) {
	t.Parallel()
	out, err := execute(newTestApp(t), "styles")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(iro.Styles))
	assert.True(t, strings.HasPrefix(lines[0], "lofi"))
	assert.Contains(t, lines[0], "Calm balanced aesthetic")
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("renders with the exported scheme", func(t *testing.T) {
		t.Parallel()
		a := newTestApp(t)
		img := filepath.Join(a.paths.Home, "wall.png")
		writeWallpaper(t, img)
		_, err := execute(a, img)
		require.NoError(t, err)
		s, err := irojson.Load(filepath.Join(a.paths.ExportDir(), "colors.json"))
		require.NoError(t, err)

		tmpl := filepath.Join(a.paths.Home, "theme.tmpl")
		require.NoError(t, os.WriteFile(tmpl, []byte("bg={{ background | strip }} {{ nope }}\n"), 0o644))

		out, err := execute(a, "render", tmpl)
		require.NoError(t, err)
		assert.Equal(t, "bg="+strings.TrimPrefix(s.Background.Hex(), "#")+" {{ nope }}\n", out)
	})

	t.Run("missing scheme", func(t *testing.T) {
		t.Parallel()
		a := newTestApp(t)
		tmpl := filepath.Join(a.paths.Home, "theme.tmpl")
		require.NoError(t, os.WriteFile(tmpl, []byte("x"), 0o644))

		_, err := execute(a, "render", tmpl)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load scheme")
	})
}
