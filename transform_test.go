package nodegraph

import (
	"math"
	"testing"
)

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestIdentityTransform(t *testing.T) {
	tr := IdentityTransform()
	assertMatrix(t, "identity", tr.Matrix(), [6]float64{1, 0, 0, 1, 0, 0})
	assertNear(t, "scale", tr.ScaleFactor(), 1)
	tx, ty := tr.Translation()
	assertNear(t, "tx", tx, 0)
	assertNear(t, "ty", ty, 0)
}

func TestZeroTransformIsIdentity(t *testing.T) {
	var tr Transform
	assertMatrix(t, "zero value", tr.Matrix(), [6]float64{1, 0, 0, 1, 0, 0})
	assertVec(t, "apply", tr.Apply(Vec2{3, 4}), Vec2{3, 4})
}

func TestTranslateAddsScreenUnits(t *testing.T) {
	for _, d := range []Vec2{{0, 0}, {10, -20}, {-3.5, 7.25}} {
		tx, ty := IdentityTransform().Translate(d.X, d.Y).Translation()
		assertNear(t, "tx", tx, d.X)
		assertNear(t, "ty", ty, d.Y)
	}

	// Not divided by the scale.
	tr := IdentityTransform().Scale(2).Translate(10, 20)
	tx, ty := tr.Translation()
	assertNear(t, "scaled tx", tx, 10)
	assertNear(t, "scaled ty", ty, 20)
	assertNear(t, "scale unchanged", tr.ScaleFactor(), 2)
}

func TestScaleMultipliesEverything(t *testing.T) {
	for _, f := range []float64{0.25, 1, 1.2, 3} {
		assertNear(t, "scale", IdentityTransform().Scale(f).ScaleFactor(), f)
	}

	tr := IdentityTransform().Translate(10, 20).Scale(2)
	assertMatrix(t, "translate then scale", tr.Matrix(), [6]float64{2, 0, 0, 2, 20, 40})
}

func TestScaleIgnoresInvalidFactors(t *testing.T) {
	base := IdentityTransform().Scale(1.5).Translate(4, 5)
	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if got := base.Scale(f); got.Matrix() != base.Matrix() {
			t.Errorf("Scale(%v) = %v, want unchanged %v", f, got.Matrix(), base.Matrix())
		}
	}
}

func TestScaleNeverUnderflowsToIdentity(t *testing.T) {
	tr := IdentityTransform().Scale(1e-200)
	if got := tr.Scale(1e-200); got.Matrix() != tr.Matrix() {
		t.Errorf("Scale(1e-200) twice = %v, want the first result kept", got.Matrix())
	}

	tr = IdentityTransform().Translate(10, 10)
	for range 2000 {
		tr = tr.Scale(0.5)
	}
	if m := tr.Matrix(); !(m[0] > 0) || m == identityMatrix {
		t.Errorf("matrix after zooming out = %v, want a tiny positive scale", m)
	}
	if s := tr.ScaleFactor(); !(s > 0) || s >= 1 {
		t.Errorf("scale = %v, want in (0, 1)", s)
	}
}

func TestScaleAboutKeepsPointFixed(t *testing.T) {
	// Zoom scenario: wheel at (400,300) on an identity camera.
	tr := IdentityTransform().Translate(-400, -300).Scale(1.2).Translate(400, 300)
	if !approxEqual(tr.ScaleFactor(), 1.2, 1e-9) {
		t.Errorf("scale = %v, want 1.2", tr.ScaleFactor())
	}
	assertVec(t, "cursor world point", tr.Apply(Vec2{400, 300}), Vec2{400, 300})

	about := IdentityTransform().Translate(30, -10).ScaleAbout(100, 50, 2)
	before := IdentityTransform().Translate(30, -10).Unapply(Vec2{100, 50})
	assertVec(t, "ScaleAbout fixed point", about.Apply(before), Vec2{100, 50})
}

func TestApplyUnapplyRoundTrip(t *testing.T) {
	tr := IdentityTransform().Scale(2.5).Translate(-40, 12)
	p := Vec2{17, -3}
	assertVec(t, "apply", tr.Apply(p), Vec2{17*2.5 - 40, -3*2.5 + 12})
	assertVec(t, "round trip", tr.Unapply(tr.Apply(p)), p)
}

func TestApplyRect(t *testing.T) {
	tr := IdentityTransform().Scale(2).Translate(10, 10)
	got := tr.ApplyRect(Rect{X: 5, Y: 5, Width: 20, Height: 10})
	assertRect(t, "ApplyRect", got, Rect{X: 20, Y: 20, Width: 40, Height: 20})
}

func TestWorldDelta(t *testing.T) {
	tr := IdentityTransform().Scale(2).Translate(100, 100)
	assertVec(t, "WorldDelta", tr.WorldDelta(30, -10), Vec2{15, -5})
}

func TestGeoMMatchesApply(t *testing.T) {
	tr := IdentityTransform().Scale(1.5).Translate(7, -9)
	g := tr.GeoM()
	x, y := g.Apply(10, 20)
	assertVec(t, "GeoM.Apply", Vec2{x, y}, tr.Apply(Vec2{10, 20}))
}

func TestInvertAffineSingular(t *testing.T) {
	got := invertAffine([6]float64{0, 0, 0, 0, 5, 5})
	assertMatrix(t, "singular", got, identityMatrix)
}
