package nodegraph

// MaxStrokeSegments is the largest number of polyline segments a single
// stroke can hold: every segment emits 4 vertices and indices are uint16.
const MaxStrokeSegments = (1<<16 - 1) / 4

// Mesh is an indexed triangle list in 2D.
type Mesh struct {
	Vertices []Vec2
	Indices  []uint16
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (m *Mesh) Bounds() Rect {
	return boundsOf(m.Vertices)
}

// Reset empties the mesh, keeping its buffers.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// Tessellate converts a polyline into a ribbon of constant half-width w.
// For N points it returns 4(N-1) vertices and 6(N-1) indices; fewer than two
// points produce an empty mesh.
func Tessellate(points []Vec2, halfWidth float64) Mesh {
	var m Mesh
	AppendStroke(&m, points, halfWidth)
	return m
}

// AppendStroke appends the ribbon for points to m. Each segment becomes an
// independent quad
//
//	p0+n·w, p1+n·w, p1-n·w, p0-n·w
//
// indexed as triangles (0,1,2) and (0,2,3) from the quad's base vertex,
// where n is the segment direction rotated 90°. Zero-length segments yield
// a zero-width quad. Segments past MaxStrokeSegments are dropped.
func AppendStroke(m *Mesh, points []Vec2, halfWidth float64) {
	if len(points) < 2 {
		return
	}
	segs := len(points) - 1
	if room := MaxStrokeSegments - len(m.Vertices)/4; segs > room {
		segs = room
	}
	if segs <= 0 {
		return
	}

	// Grow buffers to the high-water mark.
	m.Vertices = growVec2(m.Vertices, 4*segs)
	m.Indices = growUint16(m.Indices, 6*segs)

	last := points[0]
	for _, p := range points[1 : segs+1] {
		dir := p.Sub(last).Normalize()
		n := Vec2{dir.Y * halfWidth, -dir.X * halfWidth}

		base := uint16(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			last.Add(n),
			p.Add(n),
			p.Sub(n),
			last.Sub(n),
		)
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
		last = p
	}
}

func growVec2(s []Vec2, extra int) []Vec2 {
	if cap(s)-len(s) >= extra {
		return s
	}
	n := make([]Vec2, len(s), len(s)+extra)
	copy(n, s)
	return n
}

func growUint16(s []uint16, extra int) []uint16 {
	if cap(s)-len(s) >= extra {
		return s
	}
	n := make([]uint16, len(s), len(s)+extra)
	copy(n, s)
	return n
}
