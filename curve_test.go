package nodegraph

import (
	"math"
	"testing"
)

func assertFinite(t *testing.T, pts []Vec2) {
	t.Helper()
	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			t.Fatalf("point %d = %v is not finite", i, p)
		}
	}
}

func TestCurveEndpoints(t *testing.T) {
	cases := []struct{ from, to Vec2 }{
		{Vec2{0, 0}, Vec2{100, 50}},
		{Vec2{200, 37.5}, Vec2{250, 287.5}},
		{Vec2{100, 0}, Vec2{0, 100}}, // right to left
		{Vec2{0, 0}, Vec2{0, 100}},   // vertical
	}
	for _, mode := range []CurveMode{CurveCatmullRom, CurveBezier} {
		for _, segs := range []int{2, 3, 10, 64} {
			for _, c := range cases {
				cfg := CurveConfig{
					Mode:         mode,
					Segments:     segs,
					ControlScale: ControlScaleFor(c.from, c.to, MinControlScale, 1),
					Alpha:        DefaultCurveAlpha,
				}
				pts := GenerateCurve(nil, c.from, c.to, cfg)
				if len(pts) != CurvePointCount(cfg) {
					t.Fatalf("%v segs=%d: got %d points, want %d", mode, segs, len(pts), CurvePointCount(cfg))
				}
				assertFinite(t, pts)
				if pts[0] != c.from {
					t.Errorf("%v segs=%d: first = %v, want %v", mode, segs, pts[0], c.from)
				}
				if pts[len(pts)-1] != c.to {
					t.Errorf("%v segs=%d: last = %v, want %v", mode, segs, pts[len(pts)-1], c.to)
				}
			}
		}
	}
}

func TestCurvePointCount(t *testing.T) {
	if got := CurvePointCount(CurveConfig{Segments: 10}); got != 10 {
		t.Errorf("catmull-rom count = %d, want 10", got)
	}
	if got := CurvePointCount(CurveConfig{Mode: CurveBezier, Segments: 10}); got != 21 {
		t.Errorf("bezier count = %d, want 21", got)
	}
	if got := CurvePointCount(CurveConfig{Segments: 0}); got != 2 {
		t.Errorf("clamped count = %d, want 2", got)
	}
}

func TestCurvePointCountFitsOneStroke(t *testing.T) {
	for _, mode := range []CurveMode{CurveCatmullRom, CurveBezier} {
		cfg := CurveConfig{Mode: mode, Segments: 1 << 20}
		n := CurvePointCount(cfg)
		if n-1 > MaxStrokeSegments {
			t.Errorf("%v: %d points exceed %d stroke segments", mode, n, MaxStrokeSegments)
		}
		if got := len(GenerateCurve(nil, Vec2{}, Vec2{100, 40}, cfg)); got != n {
			t.Errorf("%v: generated %d points, want %d", mode, got, n)
		}
	}
	if got := CurvePointCount(CurveConfig{Mode: CurveBezier, Segments: 10000}); got != 2*(MaxStrokeSegments/2)+1 {
		t.Errorf("bezier count = %d, want %d", got, 2*(MaxStrokeSegments/2)+1)
	}
}

func TestCurveCoincidentEndpoints(t *testing.T) {
	p := Vec2{42, 7}
	for _, mode := range []CurveMode{CurveCatmullRom, CurveBezier} {
		pts := GenerateCurve(nil, p, p, CurveConfig{Mode: mode, Segments: 10, ControlScale: 10, Alpha: 0.5})
		assertFinite(t, pts)
		if pts[0] != p || pts[len(pts)-1] != p {
			t.Errorf("%v: endpoints = %v, %v, want %v", mode, pts[0], pts[len(pts)-1], p)
		}
	}
}

func TestCurveHorizontalStaysOnLine(t *testing.T) {
	for _, mode := range []CurveMode{CurveCatmullRom, CurveBezier} {
		pts := GenerateCurve(nil, Vec2{0, 5}, Vec2{100, 5}, CurveConfig{Mode: mode, Segments: 12, ControlScale: 100, Alpha: 0.5})
		for i, p := range pts {
			if !approxEqual(p.Y, 5, 1e-9) {
				t.Errorf("%v: point %d y = %v, want 5", mode, i, p.Y)
			}
		}
	}
}

func TestCurvePointSymmetry(t *testing.T) {
	from, to := Vec2{0, 0}, Vec2{120, 80}
	sum := from.Add(to)
	for _, mode := range []CurveMode{CurveCatmullRom, CurveBezier} {
		for _, alpha := range []float64{0, 0.5, 1} {
			pts := GenerateCurve(nil, from, to, CurveConfig{Mode: mode, Segments: 9, ControlScale: 120, Alpha: alpha})
			n := len(pts)
			for i := range pts {
				got := pts[i].Add(pts[n-1-i])
				if !approxEqual(got.X, sum.X, 1e-6) || !approxEqual(got.Y, sum.Y, 1e-6) {
					t.Errorf("%v alpha=%v: p[%d]+p[%d] = %v, want %v", mode, alpha, i, n-1-i, got, sum)
				}
			}
		}
	}
}

func TestBezierPassesThroughMidpoint(t *testing.T) {
	from, to := Vec2{10, 20}, Vec2{210, 120}
	pts := GenerateCurve(nil, from, to, CurveConfig{Mode: CurveBezier, Segments: 8, ControlScale: 200})
	assertVec(t, "midpoint", pts[8], Vec2{110, 70})
}

func TestCurveAppendsToDst(t *testing.T) {
	dst := []Vec2{{-1, -1}}
	pts := GenerateCurve(dst, Vec2{0, 0}, Vec2{10, 10}, CurveConfig{Segments: 4, ControlScale: 10})
	if len(pts) != 5 {
		t.Fatalf("len = %d, want 5", len(pts))
	}
	if pts[0] != (Vec2{-1, -1}) {
		t.Errorf("existing element overwritten: %v", pts[0])
	}
}

func TestControlScaleFor(t *testing.T) {
	assertNear(t, "floored", ControlScaleFor(Vec2{0, 0}, Vec2{5, 100}, 10, 2), 20)
	assertNear(t, "separation", ControlScaleFor(Vec2{0, 0}, Vec2{-100, 0}, 10, 1.5), 150)
}

func TestLerpKnotsZeroSpan(t *testing.T) {
	got := lerpKnots(Vec2{1, 2}, Vec2{3, 4}, 5, 5, 5)
	if got != (Vec2{1, 2}) {
		t.Errorf("lerpKnots zero span = %v, want p", got)
	}
}

func TestCurveModeString(t *testing.T) {
	if CurveCatmullRom.String() != "catmull-rom" || CurveBezier.String() != "bezier" {
		t.Errorf("names = %q, %q", CurveCatmullRom, CurveBezier)
	}
}
