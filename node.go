package nodegraph

import "math"

// dragState is the per-element drag tracker. active false means idle;
// otherwise last is the most recently observed cursor position.
type dragState struct {
	active bool
	last   Vec2
}

// Node is a box positioned in world space that wraps arbitrary content.
// Its screen rectangle is recomputed from Position and the camera scale on
// every layout; no screen-space state is kept between frames.
//
// A Node also owns its drag state, so applications should keep the same
// *Node across frames (or rebuild it and copy the state via Reuse).
type Node[M any] struct {
	// Position is the world-space top-left anchor.
	Position Vec2

	Width, Height       Length
	MaxWidth, MaxHeight float64
	Padding             Padding
	AlignX, AlignY      Alignment

	Content Widget[M]

	// OnTranslate builds the message published while the node is dragged.
	// dx, dy are screen-space deltas; divide by the camera scale for world
	// units (see Transform.WorldDelta).
	OnTranslate func(dx, dy float64) M

	// Style overrides the theme's default node appearance.
	Style func(*Theme) NodeAppearance

	drag dragState
}

// NewNode creates a node wrapping content at the world origin.
func NewNode[M any](content Widget[M]) *Node[M] {
	return &Node[M]{
		Width:     Shrink,
		Height:    Shrink,
		MaxWidth:  math.MaxFloat64,
		MaxHeight: math.MaxFloat64,
		Content:   content,
	}
}

// At sets the world-space position.
func (n *Node[M]) At(p Vec2) *Node[M] {
	n.Position = p
	return n
}

// WithWidth sets the width strategy.
func (n *Node[M]) WithWidth(l Length) *Node[M] {
	n.Width = l
	return n
}

// WithHeight sets the height strategy.
func (n *Node[M]) WithHeight(l Length) *Node[M] {
	n.Height = l
	return n
}

// WithMaxSize caps the node's unscaled size.
func (n *Node[M]) WithMaxSize(w, h float64) *Node[M] {
	n.MaxWidth = w
	n.MaxHeight = h
	return n
}

// WithPadding sets the padding around the content.
func (n *Node[M]) WithPadding(p Padding) *Node[M] {
	n.Padding = p
	return n
}

// WithAlignX sets the horizontal content alignment.
func (n *Node[M]) WithAlignX(a Alignment) *Node[M] {
	n.AlignX = a
	return n
}

// WithAlignY sets the vertical content alignment.
func (n *Node[M]) WithAlignY(a Alignment) *Node[M] {
	n.AlignY = a
	return n
}

// Centered centers the content on both axes.
func (n *Node[M]) Centered() *Node[M] {
	n.AlignX = AlignCenter
	n.AlignY = AlignCenter
	return n
}

// WithOnTranslate sets the drag message builder.
func (n *Node[M]) WithOnTranslate(f func(dx, dy float64) M) *Node[M] {
	n.OnTranslate = f
	return n
}

// WithStyle sets the appearance override.
func (n *Node[M]) WithStyle(f func(*Theme) NodeAppearance) *Node[M] {
	n.Style = f
	return n
}

// Reuse copies interaction state from a node built on a previous frame.
func (n *Node[M]) Reuse(prev *Node[M]) *Node[M] {
	if prev != nil {
		n.drag = prev.drag
	}
	return n
}

// Dragging reports whether the node is being dragged.
func (n *Node[M]) Dragging() bool {
	return n.drag.active
}

// Layout panics: a node has no meaning without a camera scale and must be
// laid out through LayoutScaled by a Canvas.
func (n *Node[M]) Layout(Limits) LayoutNode {
	panic("nodegraph: Node.Layout called without a camera scale; add the node to a Canvas")
}

// LayoutScaled resolves the box like a padded container, scales it by
// scale and places it at Position*scale.
func (n *Node[M]) LayoutScaled(limits Limits, scale float64) LayoutNode {
	l := limits.Loose().
		MaxWidth(n.MaxWidth).
		MaxHeight(n.MaxHeight).
		Width(n.Width).
		Height(n.Height)

	var content LayoutNode
	if n.Content != nil {
		content = n.Content.Layout(l.Pad(n.Padding).Loose())
	}

	pad := n.Padding.Fit(content.Bounds.Size(), l.Max)
	inner := l.Pad(pad).Resolve(content.Bounds.Size())
	size := Size{
		Width:  (inner.Width + pad.Horizontal()) * scale,
		Height: (inner.Height + pad.Vertical()) * scale,
	}

	content.MoveTo(Vec2{pad.Left * scale, pad.Top * scale})
	content.Align(n.AlignX, n.AlignY, Size{inner.Width * scale, inner.Height * scale})

	node := WithChildren(size, []LayoutNode{content})
	return node.Translate(n.Position.Mul(scale))
}

func (n *Node[M]) appearance(t *Theme) NodeAppearance {
	if n.Style != nil {
		return n.Style(t)
	}
	return t.NodeAppearance()
}

// Draw fills the node's box and then draws its content.
func (n *Node[M]) Draw(surface Surface, theme *Theme, style RenderStyle, layout Layout, cursor Cursor, viewport Rect) {
	theme = themeOrDefault(theme)
	a := n.appearance(theme)
	bounds := layout.Bounds()

	if a.Background != nil || a.BorderWidth > 0 {
		bg := ColorTransparent
		if a.Background != nil {
			bg = *a.Background
		}
		surface.FillQuad(Quad{
			Bounds:       bounds,
			BorderRadius: a.BorderRadius,
			BorderWidth:  a.BorderWidth,
			BorderColor:  a.BorderColor,
		}, bg)
	}

	if n.Content == nil || layout.NumChildren() == 0 {
		return
	}
	inner := style
	if a.TextColor != nil {
		inner.TextColor = *a.TextColor
	}
	n.Content.Draw(surface, theme, inner, layout.Child(0), cursor, viewport)
}

// HandleEvent runs the drag state machine. While dragging, every cursor move
// publishes OnTranslate with the delta since the previous move and captures
// the event; a left press inside the bounds that the content ignored starts
// a drag.
func (n *Node[M]) HandleEvent(ev Event, layout Layout, cursor Cursor, shell *Shell[M]) Status {
	status := StatusIgnored

	if n.drag.active {
		switch ev.Type {
		case EventPointerUp:
			if ev.Button == MouseButtonLeft {
				n.drag.active = false
			}
		case EventPointerMove:
			if cursor.Available {
				delta := cursor.Position.Sub(n.drag.last)
				n.drag.last = cursor.Position
				if n.OnTranslate != nil {
					shell.Publish(n.OnTranslate(delta.X, delta.Y))
				}
				shell.emit(InteractionEvent{Type: InteractionNodeMove, DeltaX: delta.X, DeltaY: delta.Y})
				status = StatusCaptured
			}
		}
		return status
	}

	if n.Content != nil && layout.NumChildren() > 0 {
		status = n.Content.HandleEvent(ev, layout.Child(0), cursor, shell)
	}

	if status == StatusIgnored && cursor.Available &&
		ev.Type == EventPointerDown && ev.Button == MouseButtonLeft {
		p := cursor.Position
		if layout.Bounds().Contains(p.X, p.Y) {
			n.drag = dragState{active: true, last: p}
			status = StatusCaptured
		}
	}
	return status
}
