package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/nodegraph"
	"github.com/phanxgames/nodegraph/internal/demo"
)

func runCmd() *cobra.Command {
	var (
		script  string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the sample graph in a window",
		Long: "Open the sample graph. Drag the background to pan, scroll to zoom,\n" +
			"drag nodes to move them, F fits the view and C toggles the curve.",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := resolveTheme(cfg.Theme)
			if err != nil {
				return err
			}
			curve, err := parseCurve(cfg.Curve)
			if err != nil {
				return err
			}

			if script == "" {
				script = cfg.Script
			}
			var runner *nodegraph.TestRunner
			if script != "" {
				data, err := os.ReadFile(script)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				if runner, err = nodegraph.LoadTestScript(data); err != nil {
					return err
				}
			}

			opts := demo.Options{
				Theme:    &theme,
				Curve:    curve,
				Segments: cfg.Segments,
				ZoomStep: cfg.ZoomStep,
				Script:   runner,
			}
			if verbose {
				opts.Log = func(m demo.Message) { subtle.Println("  " + m.String()) }
			}

			app := demo.NewApp(demo.NewSampleGraph(), opts)
			return nodegraph.Run(app, nodegraph.RunConfig{
				Title:     "nodegraph - " + theme.Name,
				Width:     cfg.Width,
				Height:    cfg.Height,
				Resizable: true,
				ShowFPS:   cfg.ShowFPS,
				Debug:     cfg.Debug,
			})
		},
	}
	cmd.Flags().StringVar(&script, "script", "", "JSON input script to replay (env NODEGRAPH_SCRIPT)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every canvas message")
	return cmd
}

func themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, name := range bundledThemes() {
				t, err := resolveTheme(name)
				if err != nil {
					rows = append(rows, []string{name, bad.Sprint(err.Error()), "", ""})
					continue
				}
				rows = append(rows, []string{name, t.Background.Hex(), t.Text.Hex(), t.Primary.Hex()})
			}
			table([]string{"THEME", "BACKGROUND", "TEXT", "PRIMARY"}, rows)
			return nil
		},
	}
}
