package nodegraph

import "testing"

func TestLimitsLengths(t *testing.T) {
	l := NewLimits(Size{}, Size{300, 200})

	got := l.Width(Fixed(120)).Height(Fixed(40)).Resolve(Size{10, 10})
	if got != (Size{120, 40}) {
		t.Errorf("fixed = %v, want {120 40}", got)
	}

	got = l.Width(Fill).Height(Fill).Resolve(Size{10, 10})
	if got != (Size{300, 200}) {
		t.Errorf("fill = %v, want {300 200}", got)
	}

	got = l.Width(Shrink).Height(Shrink).Resolve(Size{10, 10})
	if got != (Size{10, 10}) {
		t.Errorf("shrink = %v, want {10 10}", got)
	}

	got = l.Width(Shrink).Resolve(Size{500, 50})
	if got != (Size{300, 50}) {
		t.Errorf("oversized shrink = %v, want {300 50}", got)
	}
}

func TestLimitsFixedClamped(t *testing.T) {
	l := NewLimits(Size{50, 50}, Size{100, 100})
	got := l.Width(Fixed(500)).Height(Fixed(10)).Resolve(Size{})
	if got != (Size{100, 50}) {
		t.Errorf("clamped fixed = %v, want {100 50}", got)
	}
}

func TestLimitsMaxWidth(t *testing.T) {
	l := Unbounded().MaxWidth(80).MaxHeight(30)
	got := l.Width(Fill).Height(Fill).Resolve(Size{})
	if got != (Size{80, 30}) {
		t.Errorf("capped fill = %v, want {80 30}", got)
	}
}

func TestLimitsPad(t *testing.T) {
	l := NewLimits(Size{20, 20}, Size{100, 60}).Pad(PaddingXY(10, 5))
	if l.Min != (Size{0, 10}) {
		t.Errorf("min = %v, want {0 10}", l.Min)
	}
	if l.Max != (Size{80, 50}) {
		t.Errorf("max = %v, want {80 50}", l.Max)
	}
}

func TestPaddingFit(t *testing.T) {
	p := PaddingAll(10).Fit(Size{90, 40}, Size{100, 100})
	want := Padding{Top: 10, Right: 5, Bottom: 10, Left: 5}
	if p != want {
		t.Errorf("Fit = %+v, want %+v", p, want)
	}
	if got := PaddingAll(3).Fit(Size{}, Size{100, 100}); got != PaddingAll(3) {
		t.Errorf("roomy Fit = %+v, want unchanged", got)
	}
}

func TestLayoutNodeAlign(t *testing.T) {
	n := NewLayoutNode(Size{20, 10})
	n.Align(AlignCenter, AlignEnd, Size{100, 50})
	assertRect(t, "aligned", n.Bounds, Rect{X: 40, Y: 40, Width: 20, Height: 10})
}

func TestLayoutChildAbsolute(t *testing.T) {
	child := NewLayoutNode(Size{10, 10})
	child.MoveTo(Vec2{5, 6})
	root := WithChildren(Size{100, 100}, []LayoutNode{child}).Translate(Vec2{20, 30})

	l := NewLayout(&root, Vec2{1, 2})
	assertRect(t, "root", l.Bounds(), Rect{X: 21, Y: 32, Width: 100, Height: 100})
	if l.NumChildren() != 1 {
		t.Fatalf("children = %d, want 1", l.NumChildren())
	}
	assertRect(t, "child", l.Child(0).Bounds(), Rect{X: 26, Y: 38, Width: 10, Height: 10})
}

func TestZeroLayout(t *testing.T) {
	var l Layout
	if l.Bounds() != (Rect{}) || l.NumChildren() != 0 {
		t.Error("zero Layout should be empty")
	}
}
