package main

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var cfg *config

var rootCmd = &cobra.Command{
	Use:     "nodegraph",
	Short:   "nodegraph - pannable, zoomable node-graph canvas",
	Long:    brand.Sprint("nodegraph") + " - open or inspect the sample node graph\n" + subtle.Sprint("Configure with NODEGRAPH_* environment variables or flags"),
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg != nil {
			return nil
		}
		c, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = c
		return applyFlags(cmd, cfg)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("nodegraph {{ .Version }}\n")
	f := rootCmd.PersistentFlags()
	f.String("theme", "", "theme preset, bundled theme or TOML file (env NODEGRAPH_THEME)")
	f.String("curve", "", "curve algorithm: catmull-rom or bezier (env NODEGRAPH_CURVE)")
	f.Int("segments", 0, "curve segments per connection (env NODEGRAPH_SEGMENTS)")
	f.Int("width", 0, "viewport width (env NODEGRAPH_WIDTH)")
	f.Int("height", 0, "viewport height (env NODEGRAPH_HEIGHT)")
	f.Bool("debug", false, "print debug timing to stderr (env NODEGRAPH_DEBUG)")

	rootCmd.AddCommand(
		runCmd(),
		inspectCmd(),
		themesCmd(),
	)
}

// applyFlags copies explicitly set flags over the environment config.
func applyFlags(cmd *cobra.Command, c *config) error {
	f := cmd.Flags()
	var err error
	if f.Changed("theme") {
		c.Theme, err = f.GetString("theme")
	}
	if err == nil && f.Changed("curve") {
		c.Curve, err = f.GetString("curve")
	}
	if err == nil && f.Changed("segments") {
		c.Segments, err = f.GetInt("segments")
	}
	if err == nil && f.Changed("width") {
		c.Width, err = f.GetInt("width")
	}
	if err == nil && f.Changed("height") {
		c.Height, err = f.GetInt("height")
	}
	if err == nil && f.Changed("debug") {
		c.Debug, err = f.GetBool("debug")
	}
	return err
}

func execute() error {
	if err := rootCmd.Execute(); err != nil {
		bad.Printf("nodegraph: %v\n", err)
		return err
	}
	return nil
}
