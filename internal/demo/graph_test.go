package demo

import (
	"math"
	"testing"

	"github.com/phanxgames/nodegraph"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSampleGraphCanvas(t *testing.T) {
	g := NewSampleGraph()
	c := g.Canvas()
	if got := len(c.Children); got != 5 {
		t.Fatalf("children = %d, want 5", got)
	}
	// Connections first so nodes paint over them.
	if _, ok := c.Children[0].(*nodegraph.Connection[Message]); !ok {
		t.Errorf("child 0 = %T, want a connection", c.Children[0])
	}
	if _, ok := c.Children[4].(*nodegraph.Node[Message]); !ok {
		t.Errorf("child 4 = %T, want a node", c.Children[4])
	}
	if g.Canvas() != c {
		t.Error("Canvas rebuilt the retained canvas")
	}
}

func TestPorts(t *testing.T) {
	g := NewSampleGraph()
	if got := g.OutPort(0); got != (nodegraph.Vec2{X: 200, Y: 37.5}) {
		t.Errorf("OutPort(0) = %v, want {200 37.5}", got)
	}
	if got := g.InPort(1); got != (nodegraph.Vec2{X: 250, Y: 287.5}) {
		t.Errorf("InPort(1) = %v, want {250 287.5}", got)
	}

	g.Canvas()
	conn := g.conns[0]
	if conn.From != g.OutPort(0) || conn.To != g.InPort(1) {
		t.Errorf("connection = %v -> %v, want ports of nodes 0 and 1", conn.From, conn.To)
	}
}

func TestUpdatePan(t *testing.T) {
	g := NewSampleGraph()
	g.Update(Message{Kind: MsgPan, DX: 30, DY: -10})
	tx, ty := g.Camera.Translation()
	if tx != 30 || ty != -10 {
		t.Errorf("translation = (%v, %v), want (30, -10)", tx, ty)
	}
}

func TestUpdateZoomAboutCursor(t *testing.T) {
	g := NewSampleGraph()
	g.Update(Message{Kind: MsgZoom, X: 400, Y: 300, Delta: 1})
	if s := g.Camera.ScaleFactor(); !near(s, 1.2) {
		t.Errorf("scale = %v, want 1.2", s)
	}
	p := g.Camera.Apply(nodegraph.Vec2{X: 400, Y: 300})
	if !near(p.X, 400) || !near(p.Y, 300) {
		t.Errorf("cursor moved to %v", p)
	}

	g.Update(Message{Kind: MsgZoom, X: 400, Y: 300, Delta: -1})
	if s := g.Camera.ScaleFactor(); !near(s, 1) {
		t.Errorf("scale after zooming back = %v, want 1", s)
	}
}

func TestUpdateMoveNodeUsesWorldUnits(t *testing.T) {
	g := NewSampleGraph()
	g.Camera = nodegraph.IdentityTransform().Scale(2)
	g.Canvas()

	g.Update(Message{Kind: MsgMoveNode, Node: 1, DX: 40, DY: -20})
	if got := g.Nodes[1].Pos; got != (nodegraph.Vec2{X: 270, Y: 240}) {
		t.Errorf("node 1 = %v, want {270 240}", got)
	}
	// Both links touching node 1 follow it.
	if got := g.conns[0].To; got != g.InPort(1) {
		t.Errorf("incoming link ends at %v, want %v", got, g.InPort(1))
	}
	if got := g.conns[1].From; got != g.OutPort(1) {
		t.Errorf("outgoing link starts at %v, want %v", got, g.OutPort(1))
	}

	g.Update(Message{Kind: MsgMoveNode, Node: 9, DX: 1})
}

func TestReplayDragMovesNode(t *testing.T) {
	g := NewSampleGraph()
	g.Camera = nodegraph.IdentityTransform().Scale(2)
	r, err := nodegraph.LoadTestScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 10, "fromY": 10, "toX": 50, "toY": 30, "frames": 3}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	limits := nodegraph.NewLimits(nodegraph.Size{}, nodegraph.Size{Width: 1024, Height: 768})
	res := nodegraph.Replay(r, g.Canvas(), limits, nil, g.Update)
	if len(res.Messages) != 2 {
		t.Fatalf("messages = %v, want 2 moves", res.Messages)
	}
	if got := g.Nodes[0].Pos; !near(got.X, 20) || !near(got.Y, 10) {
		t.Errorf("node 0 = %v, want {20 10}", got)
	}
	tx, ty := g.Camera.Translation()
	if tx != 0 || ty != 0 {
		t.Errorf("camera panned to (%v, %v) during a node drag", tx, ty)
	}
}

func TestFitCamera(t *testing.T) {
	g := NewSampleGraph()
	wb := g.WorldBounds()
	if wb != (nodegraph.Rect{Width: 700, Height: 325}) {
		t.Errorf("world bounds = %+v, want 700x325 at the origin", wb)
	}

	view := nodegraph.Rect{Width: 1024, Height: 768}
	cam := g.FitCamera(view)
	tl := cam.Apply(nodegraph.Vec2{X: wb.X, Y: wb.Y})
	br := cam.Apply(nodegraph.Vec2{X: wb.X + wb.Width, Y: wb.Y + wb.Height})
	if tl.X < 40-1e-9 || tl.Y < 40-1e-9 || br.X > 1024-40+1e-9 || br.Y > 768-40+1e-9 {
		t.Errorf("fitted world spans %v..%v, want inside the 40px margin", tl, br)
	}
	if !near((tl.X+br.X)/2, 512) || !near((tl.Y+br.Y)/2, 384) {
		t.Errorf("fitted world not centered: %v..%v", tl, br)
	}
}

func TestSetCurveUpdatesConnections(t *testing.T) {
	g := NewSampleGraph()
	g.Canvas()
	g.SetCurve(nodegraph.CurveBezier, 24)
	for i, c := range g.conns {
		if c.Curve != nodegraph.CurveBezier || c.Segments != 24 {
			t.Errorf("connection %d = %v/%d, want bezier/24", i, c.Curve, c.Segments)
		}
	}
	g.SetCurve(nodegraph.CurveCatmullRom, 0)
	if g.conns[0].Segments != 24 {
		t.Errorf("segments = %d, want 24 kept", g.conns[0].Segments)
	}
}

func TestMessageString(t *testing.T) {
	cases := map[string]Message{
		"pan(30.0, -10.0)":       {Kind: MsgPan, DX: 30, DY: -10},
		"zoom(1.0 @ 400,300)":    {Kind: MsgZoom, X: 400, Y: 300, Delta: 1},
		"move(node 2, 1.5, 0.0)": {Kind: MsgMoveNode, Node: 2, DX: 1.5},
	}
	for want, m := range cases {
		if got := m.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
