package nodegraph

import "testing"

type recordingStore struct {
	events []InteractionEvent
}

func (s *recordingStore) EmitEvent(ev InteractionEvent) {
	s.events = append(s.events, ev)
}

// capturingWidget captures every pointer press.
type capturingWidget[M any] struct {
	Spacer[M]
	presses int
}

func (w *capturingWidget[M]) HandleEvent(ev Event, _ Layout, _ Cursor, _ *Shell[M]) Status {
	if ev.Type == EventPointerDown {
		w.presses++
		return StatusCaptured
	}
	return StatusIgnored
}

func newDragNode(pos Vec2) *Node[Vec2] {
	return NewNode[Vec2](Spacer[Vec2]{Size: Size{50, 50}}).
		At(pos).
		WithOnTranslate(func(dx, dy float64) Vec2 { return Vec2{dx, dy} })
}

func layoutOf[M any](e Element[M], scale float64) (Layout, *LayoutNode) {
	ln := e.LayoutScaled(Unbounded(), scale)
	return NewLayout(&ln, Vec2{}), &ln
}

var (
	evPress   = Event{Type: EventPointerDown, Button: MouseButtonLeft}
	evRelease = Event{Type: EventPointerUp, Button: MouseButtonLeft}
	evMove    = Event{Type: EventPointerMove}
)

func TestNodeDragPublishesDeltas(t *testing.T) {
	n := newDragNode(Vec2{90, 90})
	l, _ := layoutOf[Vec2](n, 1)
	shell := NewShell[Vec2](nil)

	if got := n.HandleEvent(evPress, l, CursorAt(100, 100), shell); got != StatusCaptured {
		t.Fatalf("press status = %v, want captured", got)
	}
	if !n.Dragging() {
		t.Fatal("node should be dragging after press")
	}
	if len(shell.Messages()) != 0 {
		t.Fatalf("press published %d messages, want 0", len(shell.Messages()))
	}

	if got := n.HandleEvent(evMove, l, CursorAt(130, 115), shell); got != StatusCaptured {
		t.Errorf("move status = %v, want captured", got)
	}
	msgs := shell.Messages()
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	assertVec(t, "first delta", msgs[0], Vec2{30, 15})

	// Same position again: zero delta.
	shell.Reset()
	n.HandleEvent(evMove, l, CursorAt(130, 115), shell)
	if len(shell.Messages()) != 1 {
		t.Fatalf("messages = %d, want 1", len(shell.Messages()))
	}
	assertVec(t, "repeat delta", shell.Messages()[0], Vec2{})

	shell.Reset()
	n.HandleEvent(evRelease, l, CursorAt(130, 115), shell)
	if n.Dragging() {
		t.Error("node still dragging after release")
	}
	n.HandleEvent(evMove, l, CursorAt(200, 200), shell)
	if len(shell.Messages()) != 0 {
		t.Errorf("messages after release = %d, want 0", len(shell.Messages()))
	}
}

func TestNodeDragIgnoresOtherButtons(t *testing.T) {
	n := newDragNode(Vec2{})
	l, _ := layoutOf[Vec2](n, 1)
	shell := NewShell[Vec2](nil)

	right := Event{Type: EventPointerDown, Button: MouseButtonRight}
	if got := n.HandleEvent(right, l, CursorAt(10, 10), shell); got != StatusIgnored {
		t.Errorf("right press status = %v, want ignored", got)
	}

	n.HandleEvent(evPress, l, CursorAt(10, 10), shell)
	n.HandleEvent(Event{Type: EventPointerUp, Button: MouseButtonRight}, l, CursorAt(10, 10), shell)
	if !n.Dragging() {
		t.Error("right release ended a left drag")
	}
}

func TestNodePressOutsideIgnored(t *testing.T) {
	n := newDragNode(Vec2{0, 0})
	l, _ := layoutOf[Vec2](n, 1)
	shell := NewShell[Vec2](nil)

	if got := n.HandleEvent(evPress, l, CursorAt(60, 10), shell); got != StatusIgnored {
		t.Errorf("status = %v, want ignored", got)
	}
	if n.Dragging() {
		t.Error("press outside started a drag")
	}
}

func TestNodeUnavailableCursor(t *testing.T) {
	n := newDragNode(Vec2{0, 0})
	l, _ := layoutOf[Vec2](n, 1)
	shell := NewShell[Vec2](nil)

	if got := n.HandleEvent(evPress, l, Cursor{Position: Vec2{10, 10}}, shell); got != StatusIgnored {
		t.Errorf("status = %v, want ignored", got)
	}

	n.HandleEvent(evPress, l, CursorAt(10, 10), shell)
	if got := n.HandleEvent(evMove, l, Cursor{Position: Vec2{20, 20}}, shell); got != StatusIgnored {
		t.Errorf("move without cursor status = %v, want ignored", got)
	}
	if len(shell.Messages()) != 0 {
		t.Errorf("messages = %d, want 0", len(shell.Messages()))
	}
}

func TestNodeContentCaptureBlocksDrag(t *testing.T) {
	content := &capturingWidget[Vec2]{Spacer: Spacer[Vec2]{Size: Size{50, 50}}}
	n := NewNode[Vec2](content)
	l, _ := layoutOf[Vec2](n, 1)

	if got := n.HandleEvent(evPress, l, CursorAt(10, 10), NewShell[Vec2](nil)); got != StatusCaptured {
		t.Errorf("status = %v, want captured", got)
	}
	if content.presses != 1 {
		t.Errorf("content presses = %d, want 1", content.presses)
	}
	if n.Dragging() {
		t.Error("drag started although content captured the press")
	}
}

func TestNodeLayoutScaled(t *testing.T) {
	n := NewNode[Vec2](Spacer[Vec2]{Size: Size{40, 20}}).
		At(Vec2{10, 20}).
		WithPadding(PaddingAll(5))
	l, _ := layoutOf[Vec2](n, 2)

	assertRect(t, "node", l.Bounds(), Rect{X: 20, Y: 40, Width: 100, Height: 60})
	if l.NumChildren() != 1 {
		t.Fatalf("children = %d, want 1", l.NumChildren())
	}
	assertRect(t, "content", l.Child(0).Bounds(), Rect{X: 30, Y: 50, Width: 40, Height: 20})
}

func TestNodeFixedSize(t *testing.T) {
	n := NewNode[Vec2](Spacer[Vec2]{Size: Size{10, 10}}).
		WithWidth(Fixed(200)).
		WithHeight(Fixed(75)).
		Centered()
	l, _ := layoutOf[Vec2](n, 1)

	assertRect(t, "node", l.Bounds(), Rect{Width: 200, Height: 75})
	assertRect(t, "content", l.Child(0).Bounds(), Rect{X: 95, Y: 32.5, Width: 10, Height: 10})
}

func TestNodeLayoutPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Layout did not panic")
		}
	}()
	NewNode[Vec2](nil).Layout(Unbounded())
}

func TestNodeReuseKeepsDrag(t *testing.T) {
	prev := newDragNode(Vec2{})
	l, _ := layoutOf[Vec2](prev, 1)
	prev.HandleEvent(evPress, l, CursorAt(5, 5), NewShell[Vec2](nil))

	next := newDragNode(Vec2{}).Reuse(prev)
	if !next.Dragging() {
		t.Error("Reuse did not carry the drag state")
	}
}

func TestNodeDrawFillsBox(t *testing.T) {
	n := NewNode[Vec2](Label[Vec2]{Text: "Source"}).WithPadding(PaddingAll(8))
	l, _ := layoutOf[Vec2](n, 1)

	var s recordingSurface
	n.Draw(&s, &ThemeLight, RenderStyle{}, l, Cursor{}, Rect{Width: 800, Height: 600})

	if len(s.quads) != 1 {
		t.Fatalf("quads = %d, want 1", len(s.quads))
	}
	assertRect(t, "quad", s.quads[0].Bounds, l.Bounds())
	want := ThemeLight.NodeAppearance()
	if s.fills[0] != *want.Background {
		t.Errorf("background = %v, want %v", s.fills[0], *want.Background)
	}
	if len(s.texts) != 1 || s.texts[0] != "Source" {
		t.Errorf("texts = %v, want [Source]", s.texts)
	}
}

func TestNodeStyleOverride(t *testing.T) {
	n := NewNode[Vec2](Spacer[Vec2]{Size: Size{10, 10}}).
		WithStyle(func(*Theme) NodeAppearance { return NodeAppearance{} })
	l, _ := layoutOf[Vec2](n, 1)

	var s recordingSurface
	n.Draw(&s, nil, RenderStyle{}, l, Cursor{}, Rect{})
	if len(s.quads) != 0 {
		t.Errorf("quads = %d, want 0 for a transparent borderless node", len(s.quads))
	}
}
