package nodegraph

import "math"

// LengthKind selects how a Length resolves against its limits.
type LengthKind uint8

const (
	LengthShrink LengthKind = iota // take the content's natural size
	LengthFill                     // take all available space
	LengthFixed                    // take exactly Value units
)

// Length is a sizing strategy along one axis.
type Length struct {
	Kind  LengthKind
	Value float64
}

// Shrink and Fill are the two content-relative lengths.
var (
	Shrink = Length{Kind: LengthShrink}
	Fill   = Length{Kind: LengthFill}
)

// Fixed returns a Length of exactly v units.
func Fixed(v float64) Length {
	return Length{Kind: LengthFixed, Value: v}
}

// Padding is the space between a box's edge and its content.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// PaddingAll returns the same padding on every side.
func PaddingAll(p float64) Padding {
	return Padding{p, p, p, p}
}

// PaddingXY returns horizontal padding x and vertical padding y.
func PaddingXY(x, y float64) Padding {
	return Padding{Top: y, Right: x, Bottom: y, Left: x}
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() float64 { return p.Left + p.Right }

// Vertical returns Top + Bottom.
func (p Padding) Vertical() float64 { return p.Top + p.Bottom }

// Fit shrinks the padding so that inner plus padding does not exceed outer.
func (p Padding) Fit(inner, outer Size) Padding {
	availW := math.Max(outer.Width-inner.Width, 0)
	availH := math.Max(outer.Height-inner.Height, 0)
	return Padding{
		Top:    math.Min(p.Top, math.Floor(availH/2)),
		Right:  math.Min(p.Right, math.Floor(availW/2)),
		Bottom: math.Min(p.Bottom, math.Floor(availH/2)),
		Left:   math.Min(p.Left, math.Floor(availW/2)),
	}
}

// Limits is the size constraint handed down by a parent during layout.
type Limits struct {
	Min  Size
	Max  Size
	fill Size
}

// NewLimits returns limits spanning [min, max].
func NewLimits(min, max Size) Limits {
	return Limits{Min: min, Max: max}
}

// Unbounded returns limits with no upper bound.
func Unbounded() Limits {
	return Limits{Max: Size{math.MaxFloat64, math.MaxFloat64}}
}

// Loose drops the minimum size and any fill strategy, keeping only the
// maximum.
func (l Limits) Loose() Limits {
	return Limits{Max: l.Max}
}

// MaxWidth caps the maximum width.
func (l Limits) MaxWidth(w float64) Limits {
	l.Max.Width = math.Max(math.Min(l.Max.Width, w), l.Min.Width)
	return l
}

// MaxHeight caps the maximum height.
func (l Limits) MaxHeight(h float64) Limits {
	l.Max.Height = math.Max(math.Min(l.Max.Height, h), l.Min.Height)
	return l
}

// Width applies a width strategy.
func (l Limits) Width(w Length) Limits {
	switch w.Kind {
	case LengthShrink:
		l.fill.Width = l.Min.Width
	case LengthFill:
		l.fill.Width = l.Max.Width
	case LengthFixed:
		v := math.Max(math.Min(w.Value, l.Max.Width), l.Min.Width)
		l.Min.Width, l.Max.Width, l.fill.Width = v, v, v
	}
	return l
}

// Height applies a height strategy.
func (l Limits) Height(h Length) Limits {
	switch h.Kind {
	case LengthShrink:
		l.fill.Height = l.Min.Height
	case LengthFill:
		l.fill.Height = l.Max.Height
	case LengthFixed:
		v := math.Max(math.Min(h.Value, l.Max.Height), l.Min.Height)
		l.Min.Height, l.Max.Height, l.fill.Height = v, v, v
	}
	return l
}

// Pad shrinks the limits by the padding.
func (l Limits) Pad(p Padding) Limits {
	return l.Shrink(Size{p.Horizontal(), p.Vertical()})
}

// Shrink reduces every bound by s, never below zero.
func (l Limits) Shrink(s Size) Limits {
	sub := func(v, d float64) float64 { return math.Max(v-d, 0) }
	return Limits{
		Min:  Size{sub(l.Min.Width, s.Width), sub(l.Min.Height, s.Height)},
		Max:  Size{sub(l.Max.Width, s.Width), sub(l.Max.Height, s.Height)},
		fill: Size{sub(l.fill.Width, s.Width), sub(l.fill.Height, s.Height)},
	}
}

// Resolve fits an intrinsic size into the limits.
func (l Limits) Resolve(intrinsic Size) Size {
	w := math.Max(math.Min(intrinsic.Width, l.Max.Width), l.fill.Width)
	h := math.Max(math.Min(intrinsic.Height, l.Max.Height), l.fill.Height)
	return Size{math.Max(w, l.Min.Width), math.Max(h, l.Min.Height)}
}

// LayoutNode is a sized box with children positioned relative to it.
type LayoutNode struct {
	Bounds   Rect
	Children []LayoutNode
}

// NewLayoutNode returns a childless node of the given size at the origin.
func NewLayoutNode(size Size) LayoutNode {
	return LayoutNode{Bounds: Rect{Width: size.Width, Height: size.Height}}
}

// WithChildren returns a node of the given size holding children.
func WithChildren(size Size, children []LayoutNode) LayoutNode {
	return LayoutNode{Bounds: Rect{Width: size.Width, Height: size.Height}, Children: children}
}

// Translate returns the node moved by d.
func (n LayoutNode) Translate(d Vec2) LayoutNode {
	n.Bounds = n.Bounds.Translate(d)
	return n
}

// MoveTo sets the node's position.
func (n *LayoutNode) MoveTo(p Vec2) {
	n.Bounds.X = p.X
	n.Bounds.Y = p.Y
}

// Align moves the node inside space according to the alignments.
func (n *LayoutNode) Align(h, v Alignment, space Size) {
	switch h {
	case AlignCenter:
		n.Bounds.X += (space.Width - n.Bounds.Width) / 2
	case AlignEnd:
		n.Bounds.X += space.Width - n.Bounds.Width
	}
	switch v {
	case AlignCenter:
		n.Bounds.Y += (space.Height - n.Bounds.Height) / 2
	case AlignEnd:
		n.Bounds.Y += space.Height - n.Bounds.Height
	}
}

// Layout is a read-only view of a LayoutNode with absolute coordinates.
type Layout struct {
	node   *LayoutNode
	offset Vec2
}

// NewLayout wraps a root layout node placed at offset.
func NewLayout(node *LayoutNode, offset Vec2) Layout {
	return Layout{node: node, offset: offset}
}

// Bounds returns the absolute bounds of this node.
func (l Layout) Bounds() Rect {
	if l.node == nil {
		return Rect{}
	}
	return l.node.Bounds.Translate(l.offset)
}

// NumChildren returns the number of child layouts.
func (l Layout) NumChildren() int {
	if l.node == nil {
		return 0
	}
	return len(l.node.Children)
}

// Child returns the i-th child layout.
func (l Layout) Child(i int) Layout {
	b := l.node.Bounds
	return Layout{node: &l.node.Children[i], offset: Vec2{l.offset.X + b.X, l.offset.Y + b.Y}}
}
