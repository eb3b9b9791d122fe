// Package nodegraph is a node-graph canvas for [Ebitengine]: a pannable,
// zoomable viewport holding draggable nodes joined by smooth curved
// connections.
//
// The package owns no application state. Every frame the application
// describes the graph (node world positions, connection endpoints and the
// camera [Transform]); the canvas lays it out at the camera's scale, draws
// it and turns pointer input into messages the application applies to its
// own state.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	type msg struct{ dx, dy float64 }
//
//	node := nodegraph.NewNode[msg](nodegraph.Label[msg]{Text: "hello"}).
//		At(nodegraph.Vec2{X: 40, Y: 40}).
//		WithWidth(nodegraph.Fixed(200)).
//		WithHeight(nodegraph.Fixed(75))
//	canvas := nodegraph.NewCanvas[msg](node).
//		WithOnTranslate(func(dx, dy float64) msg { return msg{dx, dy} })
//
//	app := nodegraph.NewApp(canvas, func(m msg) {
//		canvas.Matrix = canvas.Matrix.Translate(m.dx, m.dy)
//	})
//	nodegraph.Run(app, nodegraph.RunConfig{Title: "graph", Width: 640, Height: 480})
//
// # Coordinates
//
// Node positions and connection endpoints are in world units. The camera
// maps world to screen as world*scale + translation. Pan deltas are applied
// to the camera in screen pixels; node drag deltas arrive in screen pixels
// and are divided by the scale ([Transform.WorldDelta]) before being added
// to a world position.
//
// # Curves
//
// Connections default to centripetal Catmull-Rom splines with phantom
// control points pushed horizontally out of each endpoint. [CurveBezier]
// selects a pair of cubic Bezier halves with horizontal handles. Either way
// the polyline is tessellated into an independent quad per segment
// ([Tessellate]).
//
// # Hosts
//
// Drawing goes through the [Surface] interface. [EbitenSurface] implements
// it for Ebitengine; tests and headless tools supply their own. [Replay]
// runs a scripted input sequence against a canvas without a window.
//
// ECS integration lives in nodegraph/ecs (via a [Donburi] adapter).
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package nodegraph
