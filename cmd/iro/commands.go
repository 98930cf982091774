package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/fwojciec/iro"
	bt "github.com/fwojciec/iro/bubbletea"
	irojson "github.com/fwojciec/iro/json"
	"github.com/spf13/cobra"
)

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List style presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, s := range iro.Styles {
				fmt.Fprintf(tw, "%s\t%s\n", s, s.Preset().Description)
			}
			return tw.Flush()
		},
	}
}

func newPreviewCmd(a *app, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview [wallpaper]",
		Short: "Preview the scheme interactively before applying it",
		Long: `preview shows the generated scheme in the terminal. Cycle the style
and theme mode, press enter to export and apply, y to copy the colors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The TUI owns the terminal, so logs only go to stderr when asked for.
			if !f.verbose {
				a.stderr = io.Discard
			}
			s, err := a.session(cmd, f)
			if err != nil {
				return err
			}
			images, err := a.wallpapers(s.cfg, f, args, 1)
			if err != nil {
				return err
			}
			image := images[0]

			generate := func(opts iro.Options) (iro.ColorScheme, error) {
				return s.engine.Generate(image, opts)
			}
			apply := func(scheme iro.ColorScheme) (iro.Report, error) {
				if err := export(a.paths.ExportDir(), scheme); err != nil {
					return iro.Report{}, err
				}
				return s.applier.Apply(scheme, s.targets), nil
			}
			return bt.Run(cmd.Context(), bt.New(filepath.Base(image), s.opts, generate, apply))
		},
	}
}

func newRenderCmd(a *app) *cobra.Command {
	var schemePath string
	cmd := &cobra.Command{
		Use:   "render TEMPLATE_FILE",
		Short: "Render a template with the last exported scheme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if schemePath == "" {
				schemePath = filepath.Join(a.paths.ExportDir(), "colors.json")
			}
			s, err := irojson.Load(schemePath)
			if err != nil {
				return fmt.Errorf("load scheme: %w", err)
			}
			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read template: %v: %w", err, iro.ErrTemplateNotFound)
			}
			t := iro.Template{Name: filepath.Base(args[0]), Text: string(text)}
			_, err = fmt.Fprint(cmd.OutOrStdout(), t.Render(s))
			return err
		},
	}
	cmd.Flags().StringVar(&schemePath, "scheme", "", "scheme file (default ~/.config/iro/colors.json)")
	return cmd
}
