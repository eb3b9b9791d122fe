package nodegraph

import (
	"image"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	whitePixelOnce sync.Once
	whitePixel     *ebiten.Image
)

// solidSource returns a 3x3 white image; sampling its center pixel gives
// flat colors without bleeding at the edges.
func solidSource() *ebiten.Image {
	whitePixelOnce.Do(func() {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(ColorWhite.toRGBA())
	})
	return whitePixel
}

// cornerSegments is the number of arc segments per rounded corner.
const cornerSegments = 4

// EbitenSurface implements Surface, Clipper and TextDrawer on top of an
// *ebiten.Image. Vertex and index buffers are reused between frames; call
// Reset with the new target at the start of every Draw.
type EbitenSurface struct {
	root  *ebiten.Image
	clips []Rect

	points []Vec2
	verts  []ebiten.Vertex
	inds   []uint16

	// TriangleCount is the number of triangles submitted since Reset.
	TriangleCount int
}

// NewEbitenSurface returns a surface drawing to target.
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{root: target}
}

// Reset retargets the surface and drops any clip left over from the
// previous frame.
func (s *EbitenSurface) Reset(target *ebiten.Image) {
	s.root = target
	s.clips = s.clips[:0]
	s.TriangleCount = 0
}

// target returns the image to draw on, narrowed to the current clip.
// SubImage keeps the parent's coordinate space, so callers keep using
// absolute screen coordinates.
func (s *EbitenSurface) target() *ebiten.Image {
	if len(s.clips) == 0 {
		return s.root
	}
	c := s.clips[len(s.clips)-1]
	r := image.Rect(
		int(math.Floor(c.X)), int(math.Floor(c.Y)),
		int(math.Ceil(c.X+c.Width)), int(math.Ceil(c.Y+c.Height)),
	)
	return s.root.SubImage(r).(*ebiten.Image)
}

// PushClip restricts drawing to r intersected with the current clip.
func (s *EbitenSurface) PushClip(r Rect) {
	if n := len(s.clips); n > 0 {
		inter, ok := s.clips[n-1].Intersection(r)
		if !ok {
			inter = Rect{X: r.X, Y: r.Y}
		}
		r = inter
	}
	s.clips = append(s.clips, r)
}

// PopClip restores the previous clip.
func (s *EbitenSurface) PopClip() {
	if n := len(s.clips); n > 0 {
		s.clips = s.clips[:n-1]
	}
}

// FillQuad draws a rectangle filled with background, with optional rounded
// corners and border. The border is drawn inside the bounds.
func (s *EbitenSurface) FillQuad(q Quad, background Color) {
	b := q.Bounds
	if b.Width <= 0 || b.Height <= 0 {
		return
	}
	s.verts = s.verts[:0]
	s.inds = s.inds[:0]

	bw := math.Min(math.Max(q.BorderWidth, 0), math.Min(b.Width, b.Height)/2)
	outer := roundedRectPoints(s.points[:0], b, q.BorderRadius)
	n := len(outer)

	if bw > 0 && q.BorderColor.A > 0 {
		inner := Rect{X: b.X + bw, Y: b.Y + bw, Width: b.Width - 2*bw, Height: b.Height - 2*bw}
		both := roundedRectPoints(outer, inner, math.Max(q.BorderRadius-bw, 0))
		s.verts = appendSolidVertices(s.verts, both, q.BorderColor)
		s.inds = appendRing(s.inds, 0, uint16(n), n)
		if background.A > 0 {
			base := uint16(len(s.verts))
			s.verts = appendSolidVertices(s.verts, both[n:], background)
			s.inds = appendFan(s.inds, base, n)
		}
		s.points = both
	} else {
		if background.A <= 0 {
			s.points = outer
			return
		}
		s.verts = appendSolidVertices(s.verts, outer, background)
		s.inds = appendFan(s.inds, 0, n)
		s.points = outer
	}
	s.submit()
}

// FillMesh draws a pre-tessellated triangle list.
func (s *EbitenSurface) FillMesh(mesh SolidMesh) {
	if len(mesh.Indices) == 0 {
		return
	}
	s.verts = s.verts[:0]
	for _, v := range mesh.Vertices {
		s.verts = append(s.verts, solidVertex(v.Position, v.Color))
	}
	s.inds = append(s.inds[:0], mesh.Indices...)
	s.submit()
}

// DrawText prints s with the built-in debug font. The debug font is always
// white, so c only controls whether anything is drawn.
func (s *EbitenSurface) DrawText(str string, at Vec2, c Color) {
	if c.A <= 0 || str == "" {
		return
	}
	ebitenutil.DebugPrintAt(s.target(), str, int(math.Round(at.X)), int(math.Round(at.Y)))
}

func (s *EbitenSurface) submit() {
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	s.target().DrawTriangles(s.verts, s.inds, solidSource(), &op)
	s.TriangleCount += len(s.inds) / 3
}

func solidVertex(p Vec2, c Color) ebiten.Vertex {
	r, g, b, a := c.premultiplied()
	return ebiten.Vertex{
		DstX: float32(p.X), DstY: float32(p.Y),
		SrcX: 1.5, SrcY: 1.5,
		ColorR: r, ColorG: g, ColorB: b, ColorA: a,
	}
}

func appendSolidVertices(dst []ebiten.Vertex, points []Vec2, c Color) []ebiten.Vertex {
	for _, p := range points {
		dst = append(dst, solidVertex(p, c))
	}
	return dst
}

// roundedRectPoints appends the outline of r with corners of the given
// radius, clockwise from the top-left corner. The point count depends only
// on whether radius is positive, so two outlines built with radius > 0 pair
// up vertex for vertex.
func roundedRectPoints(dst []Vec2, r Rect, radius float64) []Vec2 {
	radius = math.Min(math.Max(radius, 0), math.Min(r.Width, r.Height)/2)
	if radius <= 0 {
		// Degenerate arcs keep the count equal to the rounded case.
		corners := [4]Vec2{
			{r.X, r.Y}, {r.X + r.Width, r.Y},
			{r.X + r.Width, r.Y + r.Height}, {r.X, r.Y + r.Height},
		}
		for _, c := range corners {
			for i := 0; i <= cornerSegments; i++ {
				dst = append(dst, c)
			}
		}
		return dst
	}
	centers := [4]Vec2{
		{r.X + radius, r.Y + radius},
		{r.X + r.Width - radius, r.Y + radius},
		{r.X + r.Width - radius, r.Y + r.Height - radius},
		{r.X + radius, r.Y + r.Height - radius},
	}
	for k, c := range centers {
		start := math.Pi + float64(k)*math.Pi/2
		for i := 0; i <= cornerSegments; i++ {
			a := start + float64(i)*(math.Pi/2)/cornerSegments
			dst = append(dst, Vec2{c.X + radius*math.Cos(a), c.Y + radius*math.Sin(a)})
		}
	}
	return dst
}

// appendFan triangulates a convex polygon of n vertices starting at base.
func appendFan(dst []uint16, base uint16, n int) []uint16 {
	for i := 1; i < n-1; i++ {
		dst = append(dst, base, base+uint16(i), base+uint16(i+1))
	}
	return dst
}

// appendRing triangulates the band between two closed outlines of n
// vertices each.
func appendRing(dst []uint16, outer, inner uint16, n int) []uint16 {
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		o0, o1 := outer+uint16(i), outer+uint16(j)
		i0, i1 := inner+uint16(i), inner+uint16(j)
		dst = append(dst, o0, o1, i1, o0, i1, i0)
	}
	return dst
}
