package nodegraph

import "math"

// CurveMode selects the algorithm used to sample a connection curve.
type CurveMode uint8

const (
	// CurveCatmullRom fits a Catmull-Rom spline through the endpoints, using
	// two virtual control points pushed out horizontally. This is the default.
	CurveCatmullRom CurveMode = iota
	// CurveBezier joins two cubic Bézier halves at the midpoint, with
	// horizontal handles at both ports and at the midpoint.
	CurveBezier
)

// String returns the mode name.
func (m CurveMode) String() string {
	switch m {
	case CurveCatmullRom:
		return "catmull-rom"
	case CurveBezier:
		return "bezier"
	default:
		return "unknown"
	}
}

const (
	// DefaultSegments is the default sample density of a connection.
	DefaultSegments = 10
	// DefaultCurveAlpha is the centripetal Catmull-Rom knot exponent.
	DefaultCurveAlpha = 0.5
	// MinControlScale is the floor, in world units, for the distance the
	// virtual control points are pushed away from the endpoints. It keeps
	// very short links from kinking.
	MinControlScale = 10.0
)

// CurveConfig parameterizes GenerateCurve.
type CurveConfig struct {
	Mode CurveMode
	// Segments is the sampling density (minimum 2). Catmull-Rom produces
	// exactly Segments points; Bézier produces 2*Segments+1.
	Segments int
	// ControlScale is how far the tangent handles extend horizontally from
	// each endpoint, in the same units as the endpoints.
	ControlScale float64
	// Alpha is the Catmull-Rom knot exponent: 0.5 centripetal, 1 chordal,
	// 0 uniform. Ignored by CurveBezier.
	Alpha float64
}

// CurvePointCount returns how many points GenerateCurve emits for cfg.
func CurvePointCount(cfg CurveConfig) int {
	segs := clampSegments(cfg.Segments, cfg.Mode)
	if cfg.Mode == CurveBezier {
		return 2*segs + 1
	}
	return segs
}

// clampSegments bounds segs so the sampled polyline always fits in a single
// stroke: at most MaxStrokeSegments+1 points.
func clampSegments(segs int, mode CurveMode) int {
	limit := MaxStrokeSegments
	if mode == CurveBezier {
		limit = MaxStrokeSegments / 2
	}
	if segs < 2 {
		return 2
	}
	if segs > limit {
		return limit
	}
	return segs
}

// ControlScaleFor returns the handle length for a link from "from" to "to":
// the horizontal separation, floored at minimum and then multiplied by the
// camera scale so the on-screen curvature does not change with zoom.
func ControlScaleFor(from, to Vec2, minimum, scale float64) float64 {
	return math.Max(math.Abs(to.X-from.X), minimum) * scale
}

// GenerateCurve appends a smooth left-to-right connector from "from" to "to"
// to dst and returns the extended slice. The first appended point equals
// from and the last equals to.
func GenerateCurve(dst []Vec2, from, to Vec2, cfg CurveConfig) []Vec2 {
	segs := clampSegments(cfg.Segments, cfg.Mode)
	c := cfg.ControlScale
	if !(c > 0) {
		c = MinControlScale
	}

	switch cfg.Mode {
	case CurveBezier:
		mid := Vec2{(from.X + to.X) / 2, (from.Y + to.Y) / 2}
		h := c / 2
		dst = appendCubic(dst, from, Vec2{from.X + c, from.Y}, Vec2{mid.X - h, mid.Y}, mid, segs, false)
		dst = appendCubic(dst, mid, Vec2{mid.X + h, mid.Y}, Vec2{to.X - c, to.Y}, to, segs, true)
		return dst

	default:
		alpha := cfg.Alpha
		if alpha < 0 {
			alpha = DefaultCurveAlpha
		}
		p0 := Vec2{from.X - c, from.Y}
		p3 := Vec2{to.X + c, to.Y}
		if from == to {
			// Zero knot interval between the endpoints; the curve collapses.
			for i := 0; i < segs; i++ {
				dst = append(dst, from)
			}
			return dst
		}
		for i := 0; i < segs; i++ {
			t := float64(i) / float64(segs-1)
			switch i {
			case 0:
				dst = append(dst, from)
			case segs - 1:
				dst = append(dst, to)
			default:
				dst = append(dst, catmullRom(p0, from, to, p3, t, alpha))
			}
		}
		return dst
	}
}

// appendCubic samples the cubic Bézier a,c1,c2,b at segs+1 evenly spaced
// parameters. skipFirst drops t=0 so consecutive halves share one point.
func appendCubic(dst []Vec2, a, c1, c2, b Vec2, segs int, skipFirst bool) []Vec2 {
	start := 0
	if skipFirst {
		start = 1
	}
	for i := start; i <= segs; i++ {
		if i == segs {
			dst = append(dst, b)
			continue
		}
		t := float64(i) / float64(segs)
		u := 1 - t
		u2 := u * u
		t2 := t * t
		dst = append(dst, Vec2{
			X: u2*u*a.X + 3*u2*t*c1.X + 3*u*t2*c2.X + t2*t*b.X,
			Y: u2*u*a.Y + 3*u2*t*c1.Y + 3*u*t2*c2.Y + t2*t*b.Y,
		})
	}
	return dst
}

// knot advances the Catmull-Rom knot sequence: t + |p1-p0|^alpha.
func knot(t, alpha float64, p0, p1 Vec2) float64 {
	d := p1.Sub(p0)
	return t + math.Pow(d.Dot(d), alpha*0.5)
}

// catmullRom evaluates the segment between p1 and p2 of the Catmull-Rom
// spline through p0..p3 at local parameter t in [0, 1], using the
// three-stage interpolation cascade (Barry-Goldman).
func catmullRom(p0, p1, p2, p3 Vec2, t, alpha float64) Vec2 {
	t0 := 0.0
	t1 := knot(t0, alpha, p0, p1)
	t2 := knot(t1, alpha, p1, p2)
	t3 := knot(t2, alpha, p2, p3)
	u := t1 + (t2-t1)*t

	a1 := lerpKnots(p0, p1, t0, t1, u)
	a2 := lerpKnots(p1, p2, t1, t2, u)
	a3 := lerpKnots(p2, p3, t2, t3, u)
	b1 := lerpKnots(a1, a2, t0, t2, u)
	b2 := lerpKnots(a2, a3, t1, t3, u)
	return lerpKnots(b1, b2, t1, t2, u)
}

// lerpKnots blends p and q by where u falls in [ta, tb]. A zero-length knot
// interval yields p instead of NaN.
func lerpKnots(p, q Vec2, ta, tb, u float64) Vec2 {
	span := tb - ta
	if span == 0 {
		return p
	}
	wp := (tb - u) / span
	wq := (u - ta) / span
	return Vec2{p.X*wp + q.X*wq, p.Y*wp + q.Y*wq}
}
