package nodegraph

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSample is the raw pointer state for one frame: position, held
// buttons and wheel movement. The Ebitengine host reads one per tick; the
// Injector produces them synthetically.
type PointerSample struct {
	X, Y float64
	// Inside reports whether the pointer is over the window.
	Inside bool

	Left, Right, Middle bool

	Wheel     Vec2
	WheelUnit ScrollUnit
}

// pointerState remembers the previous sample so transitions can be turned
// into events.
type pointerState struct {
	started             bool
	lastX, lastY        float64
	left, right, middle bool
}

// translate appends the events implied by moving from the previous sample to
// s and returns them with the cursor for s. Within one frame the order is
// move, button transitions, scroll, so a press lands at the new position and
// a drag's final delta arrives before the release.
func (p *pointerState) translate(dst []Event, s PointerSample) ([]Event, Cursor) {
	cursor := Cursor{Position: Vec2{s.X, s.Y}, Available: s.Inside}

	if !p.started || s.X != p.lastX || s.Y != p.lastY {
		if p.started {
			dst = append(dst, Event{Type: EventPointerMove})
		}
		p.lastX, p.lastY = s.X, s.Y
	}
	p.started = true

	dst = appendButton(dst, &p.left, s.Left, MouseButtonLeft)
	dst = appendButton(dst, &p.right, s.Right, MouseButtonRight)
	dst = appendButton(dst, &p.middle, s.Middle, MouseButtonMiddle)

	if s.Wheel != (Vec2{}) {
		dst = append(dst, Event{Type: EventScroll, Scroll: s.Wheel, ScrollUnit: s.WheelUnit})
	}
	return dst, cursor
}

func appendButton(dst []Event, held *bool, pressed bool, b MouseButton) []Event {
	switch {
	case pressed && !*held:
		dst = append(dst, Event{Type: EventPointerDown, Button: b})
	case !pressed && *held:
		dst = append(dst, Event{Type: EventPointerUp, Button: b})
	}
	*held = pressed
	return dst
}

// readPointerSample polls Ebitengine for the mouse, falling back to the
// first active touch as a left-button pointer.
func readPointerSample(touchBuf []ebiten.TouchID, screenW, screenH int) (PointerSample, []ebiten.TouchID) {
	mx, my := ebiten.CursorPosition()
	s := PointerSample{
		X:      float64(mx),
		Y:      float64(my),
		Left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
	}
	wx, wy := ebiten.Wheel()
	s.Wheel = Vec2{wx, wy}

	touchBuf = ebiten.AppendTouchIDs(touchBuf[:0])
	if len(touchBuf) > 0 {
		tx, ty := ebiten.TouchPosition(touchBuf[0])
		s.X, s.Y = float64(tx), float64(ty)
		s.Left = true
	}

	s.Inside = s.X >= 0 && s.Y >= 0 && s.X < float64(screenW) && s.Y < float64(screenH)
	return s, touchBuf
}
