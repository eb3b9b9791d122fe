package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/phanxgames/nodegraph"
)

// config is read from NODEGRAPH_* environment variables; command flags
// override it.
type config struct {
	Width    int     `envconfig:"WIDTH" default:"1024"`
	Height   int     `envconfig:"HEIGHT" default:"768"`
	ZoomStep float64 `envconfig:"ZOOM_STEP" default:"1.2"`
	Theme    string  `envconfig:"THEME" default:"dark"`
	Curve    string  `envconfig:"CURVE" default:"catmull-rom"`
	Segments int     `envconfig:"SEGMENTS" default:"10"`
	ShowFPS  bool    `envconfig:"SHOW_FPS" default:"true"`
	Debug    bool    `envconfig:"DEBUG" default:"false"`
	Script   string  `envconfig:"SCRIPT"`
}

func loadConfig() (*config, error) {
	var cfg config
	if err := envconfig.Process("nodegraph", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// resolveTheme maps a theme name to a Theme: the "dark" and "light"
// presets, a bundled theme, or a path to a TOML file.
func resolveTheme(name string) (nodegraph.Theme, error) {
	switch name {
	case "", "dark":
		return nodegraph.ThemeDark, nil
	case "light":
		return nodegraph.ThemeLight, nil
	}
	if data, err := themeFS.ReadFile("themes/" + name + ".toml"); err == nil {
		return nodegraph.LoadTheme(data)
	}
	if _, err := os.Stat(name); err != nil {
		return nodegraph.Theme{}, fmt.Errorf("unknown theme %q: not a preset, bundled theme or file", name)
	}
	return nodegraph.LoadThemeFile(name)
}

// bundledThemes lists the embedded theme names.
func bundledThemes() []string {
	entries, err := themeFS.ReadDir("themes")
	if err != nil {
		return nil
	}
	names := []string{"dark", "light"}
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	return names
}

func parseCurve(s string) (nodegraph.CurveMode, error) {
	switch strings.ToLower(s) {
	case "", "catmull-rom", "catmullrom", "spline":
		return nodegraph.CurveCatmullRom, nil
	case "bezier":
		return nodegraph.CurveBezier, nil
	default:
		return 0, fmt.Errorf("unknown curve %q (want catmull-rom or bezier)", s)
	}
}
