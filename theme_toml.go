package nodegraph

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// themeFile is the on-disk TOML shape of a Theme. Colors are hex strings.
//
//	name = "midnight"
//	background = "#101218"
//	text = "#e0e0e0"
//	primary = "#5e7ce2"
//
//	[guidelines.major]
//	color = "#2a2d36"
//	spacing = 200.0
type themeFile struct {
	Name       string `toml:"name"`
	Base       string `toml:"base"` // "dark" or "light" preset to start from
	Background string `toml:"background"`
	Text       string `toml:"text"`
	Primary    string `toml:"primary"`

	Guidelines struct {
		Minor tierFile `toml:"minor"`
		Mid   tierFile `toml:"mid"`
		Major tierFile `toml:"major"`
	} `toml:"guidelines"`
}

type tierFile struct {
	Color   string  `toml:"color"`
	Spacing float64 `toml:"spacing"`
}

// LoadTheme decodes a TOML theme. Unset colors fall back to the preset named
// by "base" (dark when omitted).
func LoadTheme(data []byte) (Theme, error) {
	var f themeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}

	var t Theme
	switch f.Base {
	case "", "dark":
		t = ThemeDark
	case "light":
		t = ThemeLight
	default:
		return Theme{}, fmt.Errorf("parse theme: unknown base %q", f.Base)
	}
	if f.Name != "" {
		t.Name = f.Name
	}

	fields := []struct {
		key string
		src string
		dst *Color
	}{
		{"background", f.Background, &t.Background},
		{"text", f.Text, &t.Text},
		{"primary", f.Primary, &t.Primary},
	}
	for _, fl := range fields {
		if fl.src == "" {
			continue
		}
		c, err := ParseHexColor(fl.src)
		if err != nil {
			return Theme{}, fmt.Errorf("parse theme %s: %w", fl.key, err)
		}
		*fl.dst = c
	}

	var o GuidelineOverrides
	var overridden bool
	tiers := []struct {
		key string
		src tierFile
		dst *GuidelineTier
	}{
		{"minor", f.Guidelines.Minor, &o.Minor},
		{"mid", f.Guidelines.Mid, &o.Mid},
		{"major", f.Guidelines.Major, &o.Major},
	}
	for _, tr := range tiers {
		if tr.src.Spacing < 0 {
			return Theme{}, fmt.Errorf("parse theme guidelines.%s: negative spacing %v", tr.key, tr.src.Spacing)
		}
		tr.dst.Spacing = tr.src.Spacing
		if tr.src.Color != "" {
			c, err := ParseHexColor(tr.src.Color)
			if err != nil {
				return Theme{}, fmt.Errorf("parse theme guidelines.%s: %w", tr.key, err)
			}
			tr.dst.Color = c
		}
		if *tr.dst != (GuidelineTier{}) {
			overridden = true
		}
	}
	if overridden {
		t.Guidelines = &o
	}
	return t, nil
}

// LoadThemeFile reads and decodes a TOML theme file.
func LoadThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("load theme %s: %w", path, err)
	}
	t, err := LoadTheme(data)
	if err != nil {
		return Theme{}, fmt.Errorf("load theme %s: %w", path, err)
	}
	return t, nil
}
