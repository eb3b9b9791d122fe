// Package demo holds the sample graph shared by the basic example and the
// nodegraph command: three nodes, two connections and a camera, with an
// update function that applies canvas messages to that state.
package demo

import (
	"fmt"

	"github.com/phanxgames/nodegraph"
)

// DefaultZoomStep is the zoom multiplier per wheel notch.
const DefaultZoomStep = 1.2

// MessageKind identifies a canvas message.
type MessageKind uint8

const (
	MsgPan MessageKind = iota
	MsgZoom
	MsgMoveNode
)

// Message is everything the sample canvas publishes.
type Message struct {
	Kind MessageKind
	// Node is the dragged node index (MsgMoveNode).
	Node int
	// DX, DY are screen-space deltas (MsgPan, MsgMoveNode).
	DX, DY float64
	// X, Y and Delta describe a wheel event (MsgZoom).
	X, Y, Delta float64
}

// NodeState is the application-owned state of one node.
type NodeState struct {
	Title string
	Pos   nodegraph.Vec2
	Size  nodegraph.Size
}

// Link joins the output port of node From to the input port of node To.
type Link struct {
	From, To int
}

// Graph is the sample application state plus the canvas built from it.
type Graph struct {
	Nodes    []NodeState
	Links    []Link
	Camera   nodegraph.Transform
	ZoomStep float64

	curve    nodegraph.CurveMode
	segments int
	width    float64

	canvas *nodegraph.Canvas[Message]
	nodes  []*nodegraph.Node[Message]
	conns  []*nodegraph.Connection[Message]
}

// NewSampleGraph returns three 200x75 nodes with the first feeding the
// second and the second feeding the third.
func NewSampleGraph() *Graph {
	size := nodegraph.Size{Width: 200, Height: 75}
	return &Graph{
		Nodes: []NodeState{
			{Title: "Source", Pos: nodegraph.Vec2{X: 0, Y: 0}, Size: size},
			{Title: "Filter", Pos: nodegraph.Vec2{X: 250, Y: 250}, Size: size},
			{Title: "Sink", Pos: nodegraph.Vec2{X: 500, Y: 250}, Size: size},
		},
		Links:    []Link{{From: 0, To: 1}, {From: 1, To: 2}},
		Camera:   nodegraph.IdentityTransform(),
		ZoomStep: DefaultZoomStep,
		segments: nodegraph.DefaultSegments,
		width:    2,
	}
}

// SetCurve selects the connection curve and sampling density.
func (g *Graph) SetCurve(mode nodegraph.CurveMode, segments int) {
	g.curve = mode
	if segments > 0 {
		g.segments = segments
	}
	for _, c := range g.conns {
		c.Curve = g.curve
		c.Segments = g.segments
	}
}

// OutPort returns the world position of node i's output port, the middle of
// its right edge.
func (g *Graph) OutPort(i int) nodegraph.Vec2 {
	n := g.Nodes[i]
	return nodegraph.Vec2{X: n.Pos.X + n.Size.Width, Y: n.Pos.Y + n.Size.Height/2}
}

// InPort returns the world position of node i's input port, the middle of
// its left edge.
func (g *Graph) InPort(i int) nodegraph.Vec2 {
	n := g.Nodes[i]
	return nodegraph.Vec2{X: n.Pos.X, Y: n.Pos.Y + n.Size.Height/2}
}

// Canvas returns the canvas for the current state, building it on first
// use. Nodes come after connections so they paint on top and get events
// first.
func (g *Graph) Canvas() *nodegraph.Canvas[Message] {
	if g.canvas == nil {
		g.build()
	}
	g.sync()
	return g.canvas
}

func (g *Graph) build() {
	g.canvas = nodegraph.NewCanvas[Message]().
		WithOnTranslate(func(dx, dy float64) Message {
			return Message{Kind: MsgPan, DX: dx, DY: dy}
		}).
		WithOnScale(func(x, y, delta float64) Message {
			return Message{Kind: MsgZoom, X: x, Y: y, Delta: delta}
		})

	for range g.Links {
		c := nodegraph.NewConnection[Message](nodegraph.Vec2{}, nodegraph.Vec2{}).
			WithWidth(g.width).
			WithSegments(g.segments).
			WithCurve(g.curve)
		g.conns = append(g.conns, c)
		g.canvas.Push(c)
	}
	for i, n := range g.Nodes {
		idx := i
		node := nodegraph.NewNode[Message](nodegraph.Label[Message]{Text: n.Title}).
			WithPadding(nodegraph.PaddingAll(8)).
			Centered().
			WithOnTranslate(func(dx, dy float64) Message {
				return Message{Kind: MsgMoveNode, Node: idx, DX: dx, DY: dy}
			})
		g.nodes = append(g.nodes, node)
		g.canvas.Push(node)
	}
}

// sync copies the application state into the retained elements.
func (g *Graph) sync() {
	g.canvas.Matrix = g.Camera
	for i, n := range g.Nodes {
		g.nodes[i].At(n.Pos).
			WithWidth(nodegraph.Fixed(n.Size.Width)).
			WithHeight(nodegraph.Fixed(n.Size.Height))
	}
	for i, l := range g.Links {
		g.conns[i].From = g.OutPort(l.From)
		g.conns[i].To = g.InPort(l.To)
	}
}

// WorldBounds returns the union of all node boxes in world units.
func (g *Graph) WorldBounds() nodegraph.Rect {
	var out nodegraph.Rect
	for i, n := range g.Nodes {
		r := nodegraph.Rect{X: n.Pos.X, Y: n.Pos.Y, Width: n.Size.Width, Height: n.Size.Height}
		if i == 0 {
			out = r
			continue
		}
		out = out.Union(r)
	}
	return out
}

// FitCamera returns the camera that frames every node inside viewport.
func (g *Graph) FitCamera(viewport nodegraph.Rect) nodegraph.Transform {
	return nodegraph.FitTransform(g.WorldBounds(), viewport, 40)
}

// Update applies one canvas message to the state.
func (g *Graph) Update(m Message) {
	switch m.Kind {
	case MsgPan:
		g.Camera = g.Camera.Translate(m.DX, m.DY)
	case MsgZoom:
		step := g.ZoomStep
		if step <= 1 {
			step = DefaultZoomStep
		}
		g.Camera = g.Camera.ScaleAbout(m.X, m.Y, nodegraph.ZoomFactor(m.Delta, step))
	case MsgMoveNode:
		if m.Node < 0 || m.Node >= len(g.Nodes) {
			return
		}
		d := g.Camera.WorldDelta(m.DX, m.DY)
		g.Nodes[m.Node].Pos = g.Nodes[m.Node].Pos.Add(d)
	}
	if g.canvas != nil {
		g.sync()
	}
}

// String describes a message for logs.
func (m Message) String() string {
	switch m.Kind {
	case MsgPan:
		return fmt.Sprintf("pan(%.1f, %.1f)", m.DX, m.DY)
	case MsgZoom:
		return fmt.Sprintf("zoom(%.1f @ %.0f,%.0f)", m.Delta, m.X, m.Y)
	case MsgMoveNode:
		return fmt.Sprintf("move(node %d, %.1f, %.1f)", m.Node, m.DX, m.DY)
	default:
		return "unknown"
	}
}
