package nodegraph

import (
	"math"
	"sync"
)

// Connection is a curved link between two world-space endpoints. It holds
// no reference to the nodes it joins; callers resolve the port positions
// every frame.
//
// The curve is generated at layout time, already multiplied by the camera
// scale, relative to the endpoints' min corner. The stroke width is in
// screen pixels and does not change with zoom.
type Connection[M any] struct {
	From, To Vec2

	// StrokeWidth is the full ribbon width in pixels.
	StrokeWidth float64
	// Segments is the curve sampling density.
	Segments int
	// Curve selects the curve algorithm.
	Curve CurveMode
	// MinControl floors the handle length, in world units.
	MinControl float64

	// Style overrides the theme's default connection appearance.
	Style func(*Theme) ConnectionAppearance

	cache splineCache
}

// splineCache is the per-frame geometry written by LayoutScaled and read by
// Draw. The mutex only matters for hosts that lay out siblings in parallel.
type splineCache struct {
	mu     sync.Mutex
	points []Vec2
	size   Size
	scale  float64

	// draw scratch, reused between frames
	mesh  Mesh
	solid []SolidVertex
}

// NewConnection creates a 1px connection from one world point to another.
func NewConnection[M any](from, to Vec2) *Connection[M] {
	return &Connection[M]{
		From:        from,
		To:          to,
		StrokeWidth: 1,
		Segments:    DefaultSegments,
		MinControl:  MinControlScale,
	}
}

// WithWidth sets the stroke width in pixels.
func (c *Connection[M]) WithWidth(w float64) *Connection[M] {
	c.StrokeWidth = w
	return c
}

// WithSegments sets the curve sampling density.
func (c *Connection[M]) WithSegments(n int) *Connection[M] {
	c.Segments = n
	return c
}

// WithCurve selects the curve algorithm.
func (c *Connection[M]) WithCurve(m CurveMode) *Connection[M] {
	c.Curve = m
	return c
}

// WithStyle sets the appearance override.
func (c *Connection[M]) WithStyle(f func(*Theme) ConnectionAppearance) *Connection[M] {
	c.Style = f
	return c
}

// Layout panics: connections are laid out by a Canvas through LayoutScaled.
func (c *Connection[M]) Layout(Limits) LayoutNode {
	panic("nodegraph: Connection.Layout called without a camera scale; add the connection to a Canvas")
}

// LayoutScaled samples the curve for the current endpoints and scale,
// caches it relative to its own bounding box and returns that box. The box
// includes half the stroke width on every side and is at least 1x1.
func (c *Connection[M]) LayoutScaled(_ Limits, scale float64) LayoutNode {
	minX := math.Min(c.From.X, c.To.X)
	minY := math.Min(c.From.Y, c.To.Y)

	from := Vec2{(c.From.X - minX) * scale, (c.From.Y - minY) * scale}
	to := Vec2{(c.To.X - minX) * scale, (c.To.Y - minY) * scale}

	minControl := c.MinControl
	if minControl <= 0 {
		minControl = MinControlScale
	}
	stroke := math.Max(c.StrokeWidth, 0)

	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()

	pts := GenerateCurve(c.cache.points[:0], from, to, CurveConfig{
		Mode:         c.Curve,
		Segments:     c.Segments,
		ControlScale: ControlScaleFor(c.From, c.To, math.Max(minControl, stroke), scale),
		Alpha:        DefaultCurveAlpha,
	})

	bb := boundsOf(pts)
	half := stroke / 2
	shift := Vec2{half - bb.X, half - bb.Y}
	for i := range pts {
		pts[i] = pts[i].Add(shift)
	}

	size := Size{
		Width:  math.Max(bb.Width+stroke, 1),
		Height: math.Max(bb.Height+stroke, 1),
	}
	c.cache.points = pts
	c.cache.size = size
	c.cache.scale = scale

	return NewLayoutNode(size).Translate(Vec2{
		X: minX*scale + bb.X - half,
		Y: minY*scale + bb.Y - half,
	})
}

// Points returns a copy of the polyline cached by the last layout, relative
// to the connection's bounds.
func (c *Connection[M]) Points() []Vec2 {
	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()
	out := make([]Vec2, len(c.cache.points))
	copy(out, c.cache.points)
	return out
}

// Width returns the laid-out width in screen pixels.
func (c *Connection[M]) Width() float64 {
	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()
	return c.cache.size.Width
}

// Height returns the laid-out height in screen pixels.
func (c *Connection[M]) Height() float64 {
	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()
	return c.cache.size.Height
}

func (c *Connection[M]) appearance(t *Theme) ConnectionAppearance {
	if c.Style != nil {
		return c.Style(t)
	}
	return t.ConnectionAppearance()
}

// Draw tessellates the cached polyline and submits it translated to the
// layout's origin.
func (c *Connection[M]) Draw(surface Surface, theme *Theme, _ RenderStyle, layout Layout, _ Cursor, _ Rect) {
	theme = themeOrDefault(theme)
	col := c.appearance(theme).Color
	origin := layout.Bounds().Position()

	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()

	m := &c.cache.mesh
	m.Reset()
	AppendStroke(m, c.cache.points, c.StrokeWidth/2)
	if len(m.Indices) == 0 {
		return
	}

	solid := c.cache.solid[:0]
	for _, v := range m.Vertices {
		solid = append(solid, SolidVertex{Position: v.Add(origin), Color: col})
	}
	c.cache.solid = solid

	surface.FillMesh(SolidMesh{Vertices: solid, Indices: m.Indices})
}

// HandleEvent ignores every event; connections are not interactive.
func (c *Connection[M]) HandleEvent(Event, Layout, Cursor, *Shell[M]) Status {
	return StatusIgnored
}
