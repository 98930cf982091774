// Command iro derives a color scheme from a wallpaper and writes it into
// application configs.
//
// Usage:
//
//	iro [wallpaper] [flags]
//	iro styles
//	iro preview [wallpaper]
//	iro render TEMPLATE_FILE
//
// Without a wallpaper argument, or with --random, a wallpaper is picked from
// wallpaper_dir in ~/.config/iro/config.toml.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fwojciec/iro/toml"
	"github.com/fwojciec/iro/wallpaper"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "iro: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	paths, err := toml.DefaultPaths()
	if err != nil {
		return err
	}
	a := &app{
		paths:  paths,
		stderr: os.Stderr,
		color:  term.IsTerminal(int(os.Stdout.Fd())),
	}
	return newRootCmd(a, &flags{}).ExecuteContext(ctx)
}

// app holds what the commands share besides their flags.
type app struct {
	paths  toml.Paths
	stderr io.Writer // log output
	color  bool      // stdout is a terminal
	picker wallpaper.Picker
}

// flags are the generation flags shared by the root and preview commands.
type flags struct {
	configPath string
	verbose    bool
	random     bool
	theme      string
	style      string
	background string
	customBG   string
	threshold  float64
	colors     int

	// root only
	monitors []string
	dryRun   bool
}

func newRootCmd(a *app, f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iro [wallpaper]",
		Short: "Generate a color scheme from a wallpaper",
		Long: `iro extracts a color scheme from a wallpaper image, exports it as
colors.sh, colors.json and colors.yaml, and rewrites a marked section in
each configured application config (kitty, hyprland, waybar, rofi, foot).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, f, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default ~/.config/iro/config.toml)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log debug output to stderr")
	pf.BoolVarP(&f.random, "random", "r", false, "pick a random wallpaper from wallpaper_dir, or from the directory argument")
	pf.StringVarP(&f.theme, "theme", "t", "", "theme mode: dark, light or auto")
	pf.StringVarP(&f.style, "style", "s", "", "style preset (see 'iro styles')")
	pf.StringVar(&f.background, "background", "", "background policy: extracted, pure or custom")
	pf.StringVar(&f.customBG, "custom-bg", "", "custom background color as #rrggbb")
	pf.Float64Var(&f.threshold, "threshold", 0, "minimum RGB distance between selected colors")
	pf.IntVar(&f.colors, "colors", 0, "number of palette colors to select")

	cmd.Flags().StringSliceVarP(&f.monitors, "monitors", "m", nil, "monitor names; picks one wallpaper per monitor")
	cmd.Flags().BoolVarP(&f.dryRun, "dry-run", "n", false, "print rendered sections without writing anything")

	cmd.AddCommand(newStylesCmd())
	cmd.AddCommand(newPreviewCmd(a, f))
	cmd.AddCommand(newRenderCmd(a))
	return cmd
}
