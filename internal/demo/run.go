package demo

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/nodegraph"
)

// fitDuration is how long the F key takes to frame the graph, in seconds.
const fitDuration = 0.4

// Options configures NewApp.
type Options struct {
	Theme    *nodegraph.Theme
	Curve    nodegraph.CurveMode
	Segments int
	ZoomStep float64
	Script   *nodegraph.TestRunner
	Log      func(Message)
}

// NewApp wires g into an App: messages update the graph, F animates the
// camera to fit every node and C toggles the curve algorithm.
func NewApp(g *Graph, opts Options) *nodegraph.App[Message] {
	g.SetCurve(opts.Curve, opts.Segments)
	if opts.ZoomStep > 1 {
		g.ZoomStep = opts.ZoomStep
	}

	app := nodegraph.NewApp(g.Canvas(), func(m Message) {
		if opts.Log != nil {
			opts.Log(m)
		}
		g.Update(m)
	})
	if opts.Theme != nil {
		app.Theme = opts.Theme
		app.ClearColor = opts.Theme.Background
	}
	if opts.Script != nil {
		app.SetTestRunner(opts.Script)
	}

	var tween *nodegraph.TransformTween
	app.SetUpdateFunc(func() error {
		if inpututil.IsKeyJustPressed(ebiten.KeyF) {
			tween = nodegraph.NewTransformTween(g.Camera, g.FitCamera(app.Viewport()), fitDuration, ease.InOutCubic)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			next := nodegraph.CurveBezier
			if g.curve == nodegraph.CurveBezier {
				next = nodegraph.CurveCatmullRom
			}
			g.SetCurve(next, 0)
		}
		if tween != nil {
			cam, done := tween.Update(1 / float32(ebiten.TPS()))
			g.Camera = cam
			g.Canvas()
			if done {
				tween = nil
			}
		}
		return nil
	})
	return app
}
