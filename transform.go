package nodegraph

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Transform is the camera: an affine world-to-screen matrix restricted to a
// uniform scale plus a translation. It is a value type; every method returns
// a new Transform and the receiver is never modified.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// No mutator introduces rotation or shear, so b and c stay zero and a == d.
type Transform struct {
	m [6]float64
}

// identityMatrix is the identity affine matrix.
var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// IdentityTransform returns a Transform with scale 1 and no translation.
func IdentityTransform() Transform {
	return Transform{m: identityMatrix}
}

// isZero reports whether t is the zero value, which is treated as identity.
func (t Transform) isZero() bool {
	return t.m == [6]float64{}
}

// matrix returns the matrix, substituting identity for the zero value so that
// an unset Transform field behaves like IdentityTransform().
func (t Transform) matrix() [6]float64 {
	if t.isZero() {
		return identityMatrix
	}
	return t.m
}

// Translate adds (dx, dy) screen units to the translation. The scale is left
// untouched and dx, dy are not divided by it.
func (t Transform) Translate(dx, dy float64) Transform {
	m := t.matrix()
	m[4] += dx
	m[5] += dy
	return Transform{m: m}
}

// Scale multiplies every matrix entry, translation included, by factor. This
// scales about the screen origin; use ScaleAbout to zoom around a point.
// Non-positive, NaN or infinite factors leave the transform unchanged so the
// scale always stays strictly positive, as do factors that would underflow
// the scale to zero or overflow it.
func (t Transform) Scale(factor float64) Transform {
	m := t.matrix()
	if !(factor > 0) || math.IsInf(factor, 0) {
		return Transform{m: m}
	}
	if s := m[0] * factor; s == 0 || math.IsInf(s, 0) {
		return Transform{m: m}
	}
	for i := range m {
		m[i] *= factor
	}
	return Transform{m: m}
}

// ScaleAbout zooms by factor keeping the screen point (x, y) fixed.
// Equivalent to Translate(-x, -y).Scale(factor).Translate(x, y).
func (t Transform) ScaleAbout(x, y, factor float64) Transform {
	return t.Translate(-x, -y).Scale(factor).Translate(x, y)
}

// ScaleFactor returns the uniform scale, derived from the norm of the first
// matrix column.
func (t Transform) ScaleFactor() float64 {
	m := t.matrix()
	return math.Hypot(m[0], m[1])
}

// Translation returns the translation component in screen units.
func (t Transform) Translation() (tx, ty float64) {
	m := t.matrix()
	return m[4], m[5]
}

// Matrix returns a copy of the underlying affine matrix.
func (t Transform) Matrix() [6]float64 {
	return t.matrix()
}

// Apply maps a world point to screen space: world*scale + translation.
func (t Transform) Apply(p Vec2) Vec2 {
	x, y := transformPoint(t.matrix(), p.X, p.Y)
	return Vec2{x, y}
}

// Unapply maps a screen point back to world space.
func (t Transform) Unapply(p Vec2) Vec2 {
	x, y := transformPoint(invertAffine(t.matrix()), p.X, p.Y)
	return Vec2{x, y}
}

// WorldDelta converts a screen-space delta into world units.
func (t Transform) WorldDelta(dx, dy float64) Vec2 {
	s := t.ScaleFactor()
	return Vec2{dx / s, dy / s}
}

// ApplyRect maps a world rect to screen space.
func (t Transform) ApplyRect(r Rect) Rect {
	s := t.ScaleFactor()
	p := t.Apply(Vec2{r.X, r.Y})
	return Rect{X: p.X, Y: p.Y, Width: r.Width * s, Height: r.Height * s}
}

// GeoM converts the transform to an ebiten.GeoM for hosts that draw world
// geometry directly through Ebitengine.
func (t Transform) GeoM() ebiten.GeoM {
	m := t.matrix()
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
