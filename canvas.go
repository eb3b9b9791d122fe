package nodegraph

import "math"

// DefaultScrollPixelsPerLine converts precise (pixel) scroll deltas into
// wheel lines before they reach OnScale.
const DefaultScrollPixelsPerLine = 20.0

// minGuidelineSpacing is the smallest on-screen gap, in pixels, between two
// lines of one guideline tier. Denser tiers are skipped.
const minGuidelineSpacing = 5.0

// panState is the canvas background drag tracker.
type panState = dragState

// DrawStats reports what the last Draw call did with the canvas children.
type DrawStats struct {
	Drawn  int // children drawn
	Culled int // children skipped as off-viewport
}

// Canvas is the pannable, zoomable viewport that hosts nodes and
// connections. It owns no camera state: the application supplies Matrix on
// every build and reacts to OnTranslate and OnScale by updating it.
//
// Children are drawn in slice order, so later children paint on top.
// Events are offered to children from the topmost down before the canvas
// handles them itself.
type Canvas[M any] struct {
	Children []Element[M]

	// Matrix is the world-to-screen camera.
	Matrix Transform

	// OnTranslate builds the message for a background drag delta in screen
	// pixels.
	OnTranslate func(dx, dy float64) M
	// OnScale builds the message for a wheel event over the background.
	// x, y is the cursor position; delta is in lines, positive for up.
	OnScale func(x, y, delta float64) M

	Width, Height       Length
	MaxWidth, MaxHeight float64

	// Style overrides the theme's default canvas appearance.
	Style func(*Theme) CanvasAppearance

	// ScrollPixelsPerLine normalizes pixel scroll deltas. Zero selects
	// DefaultScrollPixelsPerLine.
	ScrollPixelsPerLine float64

	pan   panState
	stats DrawStats
}

// NewCanvas creates a canvas filling its limits, with an identity camera.
func NewCanvas[M any](children ...Element[M]) *Canvas[M] {
	return &Canvas[M]{
		Children:            children,
		Matrix:              IdentityTransform(),
		Width:               Fill,
		Height:              Fill,
		MaxWidth:            math.MaxFloat64,
		MaxHeight:           math.MaxFloat64,
		ScrollPixelsPerLine: DefaultScrollPixelsPerLine,
	}
}

// Push appends children.
func (c *Canvas[M]) Push(children ...Element[M]) *Canvas[M] {
	c.Children = append(c.Children, children...)
	return c
}

// WithTransform sets the camera.
func (c *Canvas[M]) WithTransform(t Transform) *Canvas[M] {
	c.Matrix = t
	return c
}

// WithOnTranslate sets the pan message builder.
func (c *Canvas[M]) WithOnTranslate(f func(dx, dy float64) M) *Canvas[M] {
	c.OnTranslate = f
	return c
}

// WithOnScale sets the zoom message builder.
func (c *Canvas[M]) WithOnScale(f func(x, y, delta float64) M) *Canvas[M] {
	c.OnScale = f
	return c
}

// WithWidth sets the width strategy.
func (c *Canvas[M]) WithWidth(l Length) *Canvas[M] {
	c.Width = l
	return c
}

// WithHeight sets the height strategy.
func (c *Canvas[M]) WithHeight(l Length) *Canvas[M] {
	c.Height = l
	return c
}

// WithStyle sets the appearance override.
func (c *Canvas[M]) WithStyle(f func(*Theme) CanvasAppearance) *Canvas[M] {
	c.Style = f
	return c
}

// Reuse copies interaction state from a canvas built on a previous frame.
func (c *Canvas[M]) Reuse(prev *Canvas[M]) *Canvas[M] {
	if prev != nil {
		c.pan = prev.pan
	}
	return c
}

// Panning reports whether a background drag is in progress.
func (c *Canvas[M]) Panning() bool {
	return c.pan.active
}

// LastDrawStats returns the counters of the most recent Draw.
func (c *Canvas[M]) LastDrawStats() DrawStats {
	return c.stats
}

// ZoomFactor maps a wheel delta to a multiplicative zoom step: step for
// positive deltas, 1/step for negative ones and 1 for zero.
func ZoomFactor(delta, step float64) float64 {
	switch {
	case delta > 0:
		return step
	case delta < 0:
		return 1 / step
	default:
		return 1
	}
}

// Layout lays out every child at the camera's scale and shifts it by the
// camera's translation. The canvas itself resolves to its limits.
func (c *Canvas[M]) Layout(limits Limits) LayoutNode {
	l := limits.Loose().
		MaxWidth(c.MaxWidth).
		MaxHeight(c.MaxHeight).
		Width(c.Width).
		Height(c.Height)

	scale := c.Matrix.ScaleFactor()
	tx, ty := c.Matrix.Translation()
	offset := Vec2{tx, ty}
	if debugEnabled() {
		debugCheckChildCount(len(c.Children))
		debugCheckScale(scale)
	}

	children := make([]LayoutNode, len(c.Children))
	for i, child := range c.Children {
		children[i] = child.LayoutScaled(l, scale).Translate(offset)
	}
	return WithChildren(l.Resolve(Size{}), children)
}

// WorldBounds returns the union of every child's box in world units, laid
// out at scale 1 with no translation. It reports false for an empty canvas.
// Connections cache geometry during layout, so call Layout again before the
// next Draw.
func (c *Canvas[M]) WorldBounds(limits Limits) (Rect, bool) {
	if len(c.Children) == 0 {
		return Rect{}, false
	}
	var out Rect
	for i, child := range c.Children {
		b := child.LayoutScaled(limits, 1).Bounds
		if i == 0 {
			out = b
			continue
		}
		out = out.Union(b)
	}
	return out, true
}

func (c *Canvas[M]) appearance(t *Theme) CanvasAppearance {
	if c.Style != nil {
		return c.Style(t)
	}
	return t.CanvasAppearance()
}

// Draw fills the background, draws the three guideline tiers and then every
// child whose bounds overlap the canvas by at least one pixel on each axis.
func (c *Canvas[M]) Draw(surface Surface, theme *Theme, style RenderStyle, layout Layout, cursor Cursor, viewport Rect) {
	theme = themeOrDefault(theme)
	a := c.appearance(theme)
	bounds := layout.Bounds()

	clip, clips := surface.(Clipper)
	if clips {
		clip.PushClip(bounds)
		defer clip.PopClip()
	}

	surface.FillQuad(Quad{Bounds: bounds}, a.Background)

	scale := normalizeScale(c.Matrix.ScaleFactor())
	tx, ty := c.Matrix.Translation()
	biggest := math.Max(a.Minor.Spacing, math.Max(a.Mid.Spacing, a.Major.Spacing))
	for _, tier := range [...]GuidelineTier{a.Minor, a.Mid, a.Major} {
		drawGuidelines(surface, bounds, tier, biggest, scale, tx, ty)
	}

	var stats DrawStats
	for i, child := range c.Children {
		cl := layout.Child(i)
		visible, ok := cl.Bounds().Intersection(bounds)
		if !ok || visible.Width < 1 || visible.Height < 1 {
			stats.Culled++
			continue
		}
		child.Draw(surface, theme, style, cl, cursor, bounds)
		stats.Drawn++
	}
	c.stats = stats

	if debugEnabled() {
		debugLog("canvas draw: %d drawn, %d culled, scale %.3f", stats.Drawn, stats.Culled, c.Matrix.ScaleFactor())
	}
}

// HandleEvent routes an event. While panning, cursor moves publish
// OnTranslate deltas and a left release ends the pan. Otherwise the event is
// offered to children topmost first. A press stops at the first child that
// captures it; every other event reaches all children. If no child captured,
// a left press inside the bounds starts a pan and a wheel event publishes
// OnScale.
func (c *Canvas[M]) HandleEvent(ev Event, layout Layout, cursor Cursor, shell *Shell[M]) Status {
	if c.pan.active {
		switch ev.Type {
		case EventPointerUp:
			if ev.Button == MouseButtonLeft {
				c.pan.active = false
			}
		case EventPointerMove:
			if cursor.Available {
				delta := cursor.Position.Sub(c.pan.last)
				c.pan.last = cursor.Position
				if c.OnTranslate != nil {
					shell.Publish(c.OnTranslate(delta.X, delta.Y))
				}
				shell.emit(InteractionEvent{Type: InteractionPan, DeltaX: delta.X, DeltaY: delta.Y})
				return StatusCaptured
			}
		}
		return StatusIgnored
	}

	status := StatusIgnored
	n := min(len(c.Children), layout.NumChildren())
	for i := n - 1; i >= 0; i-- {
		shell.element = i
		status = status.Merge(c.Children[i].HandleEvent(ev, layout.Child(i), cursor, shell))
		// Only a press is exclusive. Moves and releases reach every child so
		// a drag below a capturing sibling still ends.
		if status == StatusCaptured && ev.Type == EventPointerDown {
			break
		}
	}
	shell.element = -1
	if status == StatusCaptured || !cursor.Available {
		return status
	}

	p := cursor.Position
	if !layout.Bounds().Contains(p.X, p.Y) {
		return StatusIgnored
	}

	switch ev.Type {
	case EventPointerDown:
		if ev.Button == MouseButtonLeft {
			c.pan = panState{active: true, last: p}
			return StatusCaptured
		}
	case EventScroll:
		delta := ev.Scroll.Y
		if ev.ScrollUnit == ScrollPixels {
			per := c.ScrollPixelsPerLine
			if per <= 0 {
				per = DefaultScrollPixelsPerLine
			}
			delta /= per
		}
		if c.OnScale != nil {
			shell.Publish(c.OnScale(p.X, p.Y, delta))
		}
		shell.emit(InteractionEvent{Type: InteractionZoom, X: p.X, Y: p.Y, ScrollDelta: delta})
		return StatusCaptured
	}
	return StatusIgnored
}

// normalizeScale folds scale into [1, 2) by dividing out the largest power
// of two not above it, so the guideline grid repeats every octave of zoom
// instead of collapsing or exploding.
func normalizeScale(scale float64) float64 {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return 1
	}
	exp := math.Floor(math.Log2(scale))
	if exp == 0 {
		return scale
	}
	return scale / math.Exp2(exp)
}

// drawGuidelines draws one tier of 1px lines across bounds. The grid is
// anchored to the camera translation modulo the biggest tier's period so
// every tier lines up with the others. Lines on the bounds edges are
// skipped.
func drawGuidelines(surface Surface, bounds Rect, tier GuidelineTier, biggest, scale, tx, ty float64) {
	step := tier.Spacing * scale
	if tier.Spacing <= 0 || step < minGuidelineSpacing {
		return
	}
	edge := biggest * scale
	if edge <= 0 {
		return
	}

	startX := -edge + math.Mod(tx, edge) + bounds.X
	for x := startX; x < bounds.X+bounds.Width; x += step {
		if x <= bounds.X {
			continue
		}
		surface.FillQuad(Quad{Bounds: Rect{X: x, Y: bounds.Y, Width: 1, Height: bounds.Height}}, tier.Color)
	}

	startY := -edge + math.Mod(ty, edge) + bounds.Y
	for y := startY; y < bounds.Y+bounds.Height; y += step {
		if y <= bounds.Y {
			continue
		}
		surface.FillQuad(Quad{Bounds: Rect{X: bounds.X, Y: y, Width: bounds.Width, Height: 1}}, tier.Color)
	}
}
