package nodegraph

// Theme is the palette every appearance is derived from.
type Theme struct {
	Name       string
	Background Color
	Text       Color
	Primary    Color

	// Optional overrides of the derived canvas guideline tiers.
	Guidelines *GuidelineOverrides
}

// GuidelineOverrides replaces the derived guideline colors and spacings.
// Zero fields keep the derived value.
type GuidelineOverrides struct {
	Minor, Mid, Major GuidelineTier
}

// Preset themes.
var (
	ThemeDark = Theme{
		Name:       "dark",
		Background: RGB8(0x20, 0x22, 0x25),
		Text:       Color{0.9, 0.9, 0.9, 1},
		Primary:    RGB8(0x5e, 0x7c, 0xe2),
	}
	ThemeLight = Theme{
		Name:       "light",
		Background: ColorWhite,
		Text:       ColorBlack,
		Primary:    RGB8(0x5e, 0x7c, 0xe2),
	}
)

// NodeAppearance is the look of a node's box.
type NodeAppearance struct {
	TextColor    *Color
	Background   *Color
	BorderRadius float64
	BorderWidth  float64
	BorderColor  Color
}

// ConnectionAppearance is the look of a connection stroke.
type ConnectionAppearance struct {
	Color Color
}

// GuidelineTier is one tier of background gridlines.
type GuidelineTier struct {
	Color   Color
	Spacing float64
}

// CanvasAppearance is the look of the canvas background and gridlines.
type CanvasAppearance struct {
	Background Color
	Minor      GuidelineTier
	Mid        GuidelineTier
	Major      GuidelineTier
}

// Default guideline spacings, in world units.
const (
	DefaultMinorSpacing = 10.0
	DefaultMidSpacing   = 50.0
	DefaultMajorSpacing = 100.0
)

// isLight reports whether the background is lighter than the text, which
// decides whether guidelines darken or lighten the background.
func (t *Theme) isLight() bool {
	return t.Background.Lightness() > t.Text.Lightness()
}

// NodeAppearance returns the default node look: a bordered box on a
// slightly shifted background.
func (t *Theme) NodeAppearance() NodeAppearance {
	bg := t.Background.Lighten(0.08)
	border := t.Background.Lighten(0.2)
	if t.isLight() {
		bg = t.Background.Darken(0.04)
		border = t.Background.Darken(0.25)
	}
	text := t.Text
	return NodeAppearance{
		TextColor:    &text,
		Background:   &bg,
		BorderRadius: 4,
		BorderWidth:  1,
		BorderColor:  border,
	}
}

// ConnectionAppearance returns the default stroke look.
func (t *Theme) ConnectionAppearance() ConnectionAppearance {
	return ConnectionAppearance{Color: t.Primary}
}

// CanvasAppearance derives the three guideline tiers from the background.
func (t *Theme) CanvasAppearance() CanvasAppearance {
	bg := t.Background
	var minor, mid, major Color
	if t.isLight() {
		minor, mid, major = bg.Darken(0.02), bg.Darken(0.05), bg.Darken(0.1)
	} else {
		minor, mid, major = bg.Lighten(0.02), bg.Lighten(0.04), bg.Lighten(0.08)
	}
	a := CanvasAppearance{
		Background: bg,
		Minor:      GuidelineTier{Color: minor, Spacing: DefaultMinorSpacing},
		Mid:        GuidelineTier{Color: mid, Spacing: DefaultMidSpacing},
		Major:      GuidelineTier{Color: major, Spacing: DefaultMajorSpacing},
	}
	if o := t.Guidelines; o != nil {
		a.Minor = overrideTier(a.Minor, o.Minor)
		a.Mid = overrideTier(a.Mid, o.Mid)
		a.Major = overrideTier(a.Major, o.Major)
	}
	return a
}

func overrideTier(base, o GuidelineTier) GuidelineTier {
	if o.Color != (Color{}) {
		base.Color = o.Color
	}
	if o.Spacing > 0 {
		base.Spacing = o.Spacing
	}
	return base
}

// themeOrDefault returns t, or the dark preset when t is nil.
func themeOrDefault(t *Theme) *Theme {
	if t == nil {
		return &ThemeDark
	}
	return t
}
