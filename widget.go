package nodegraph

// Quad is a filled rectangle with an optional rounded border.
type Quad struct {
	Bounds       Rect
	BorderRadius float64
	BorderWidth  float64
	BorderColor  Color
}

// SolidVertex is a mesh vertex with a flat color.
type SolidVertex struct {
	Position Vec2
	Color    Color
}

// SolidMesh is an indexed triangle list with per-vertex colors, positioned
// in absolute screen coordinates.
type SolidMesh struct {
	Vertices []SolidVertex
	Indices  []uint16
}

// Surface is the drawing target provided by the host toolkit.
type Surface interface {
	FillQuad(q Quad, background Color)
	FillMesh(mesh SolidMesh)
}

// Clipper is implemented by surfaces that can restrict drawing to a region.
// Clips nest; PopClip restores the previous region.
type Clipper interface {
	PushClip(r Rect)
	PopClip()
}

// TextDrawer is implemented by surfaces that can render a line of text.
type TextDrawer interface {
	DrawText(s string, at Vec2, c Color)
}

// RenderStyle carries inherited drawing defaults down the widget tree.
type RenderStyle struct {
	TextColor Color
}

// Widget is the capability set the host toolkit needs from any element:
// layout against limits, drawing, and event handling.
type Widget[M any] interface {
	Layout(limits Limits) LayoutNode
	Draw(surface Surface, theme *Theme, style RenderStyle, layout Layout, cursor Cursor, viewport Rect)
	HandleEvent(ev Event, layout Layout, cursor Cursor, shell *Shell[M]) Status
}

// Element is a Widget that can live on a Canvas: it additionally lays
// itself out for a given camera scale. Node and Connection implement it.
type Element[M any] interface {
	Widget[M]
	LayoutScaled(limits Limits, scale float64) LayoutNode
}

// Spacer is a content widget with a fixed natural size that draws nothing.
type Spacer[M any] struct {
	Size Size
}

// Layout resolves the spacer's size.
func (s Spacer[M]) Layout(limits Limits) LayoutNode {
	return NewLayoutNode(limits.Resolve(s.Size))
}

// Draw does nothing.
func (Spacer[M]) Draw(Surface, *Theme, RenderStyle, Layout, Cursor, Rect) {}

// HandleEvent never captures.
func (Spacer[M]) HandleEvent(Event, Layout, Cursor, *Shell[M]) Status {
	return StatusIgnored
}

// Label is a single line of text content. The natural size is estimated
// from a fixed glyph cell, matching the debug font used by the Ebitengine
// surface.
type Label[M any] struct {
	Text  string
	Color *Color
}

// Glyph cell of the built-in debug font.
const (
	labelGlyphW = 6
	labelGlyphH = 16
)

// Layout sizes the label from its text length.
func (l Label[M]) Layout(limits Limits) LayoutNode {
	return NewLayoutNode(limits.Resolve(Size{float64(len(l.Text) * labelGlyphW), labelGlyphH}))
}

// Draw renders the text if the surface supports it.
func (l Label[M]) Draw(surface Surface, _ *Theme, style RenderStyle, layout Layout, _ Cursor, _ Rect) {
	td, ok := surface.(TextDrawer)
	if !ok {
		return
	}
	c := style.TextColor
	if l.Color != nil {
		c = *l.Color
	}
	td.DrawText(l.Text, layout.Bounds().Position(), c)
}

// HandleEvent never captures.
func (Label[M]) HandleEvent(Event, Layout, Cursor, *Shell[M]) Status {
	return StatusIgnored
}
