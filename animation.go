package nodegraph

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransformTween eases a camera from one Transform to another. Scale and
// translation are tweened independently. Create one with NewTransformTween
// and call Update(dt) each frame, feeding the result into Canvas.Matrix.
//
// There is no global animation manager; callers own the tween.
type TransformTween struct {
	scale  *gween.Tween
	tx, ty *gween.Tween
	last   Transform
	Done   bool
}

// NewTransformTween creates a tween from one camera to another over the given
// duration in seconds. A nil easing function selects ease.OutCubic.
func NewTransformTween(from, to Transform, duration float32, fn ease.TweenFunc) *TransformTween {
	if fn == nil {
		fn = ease.OutCubic
	}
	fx, fy := from.Translation()
	tx, ty := to.Translation()
	return &TransformTween{
		scale: gween.New(float32(from.ScaleFactor()), float32(to.ScaleFactor()), duration, fn),
		tx:    gween.New(float32(fx), float32(tx), duration, fn),
		ty:    gween.New(float32(fy), float32(ty), duration, fn),
		last:  from,
	}
}

// Update advances the tween by dt seconds and returns the current camera and
// whether the tween has finished. After it finishes, Update keeps returning
// the final camera.
func (t *TransformTween) Update(dt float32) (Transform, bool) {
	if t.Done {
		return t.last, true
	}
	s, doneS := t.scale.Update(dt)
	x, doneX := t.tx.Update(dt)
	y, doneY := t.ty.Update(dt)
	t.Done = doneS && doneX && doneY

	scale := float64(s)
	if !(scale > 0) {
		scale = t.last.ScaleFactor()
	}
	t.last = IdentityTransform().Scale(scale).Translate(float64(x), float64(y))
	return t.last, t.Done
}

// FitTransform returns the camera that shows the world rect centered in
// viewport with at least padding pixels of margin on every side. An empty
// world rect is centered at scale 1.
func FitTransform(world, viewport Rect, padding float64) Transform {
	availW := math.Max(viewport.Width-2*padding, 1)
	availH := math.Max(viewport.Height-2*padding, 1)

	scale := 1.0
	if world.Width > 0 && world.Height > 0 {
		scale = math.Min(availW/world.Width, availH/world.Height)
	} else if world.Width > 0 {
		scale = availW / world.Width
	} else if world.Height > 0 {
		scale = availH / world.Height
	}

	tx := viewport.X + (viewport.Width-world.Width*scale)/2 - world.X*scale
	ty := viewport.Y + (viewport.Height-world.Height*scale)/2 - world.Y*scale
	return IdentityTransform().Scale(scale).Translate(tx, ty)
}
