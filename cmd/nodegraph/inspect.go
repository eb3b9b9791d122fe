package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/nodegraph"
	"github.com/phanxgames/nodegraph/internal/demo"
)

// countingSurface records draw calls without rendering anything.
type countingSurface struct {
	quads     int
	meshes    int
	triangles int
}

func (s *countingSurface) FillQuad(nodegraph.Quad, nodegraph.Color) { s.quads++ }

func (s *countingSurface) FillMesh(m nodegraph.SolidMesh) {
	s.meshes++
	s.triangles += len(m.Indices) / 3
}

func inspectCmd() *cobra.Command {
	var (
		scale  float64
		tx, ty float64
		fit    bool
		script string
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Lay out the sample graph headlessly and print what would be drawn",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := resolveTheme(cfg.Theme)
			if err != nil {
				return err
			}
			curve, err := parseCurve(cfg.Curve)
			if err != nil {
				return err
			}

			g := demo.NewSampleGraph()
			g.SetCurve(curve, cfg.Segments)
			viewport := nodegraph.Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}
			if fit {
				g.Camera = g.FitCamera(viewport)
			} else {
				g.Camera = nodegraph.IdentityTransform().Scale(scale).Translate(tx, ty)
			}

			canvas := g.Canvas()
			limits := nodegraph.NewLimits(nodegraph.Size{}, viewport.Size())

			if script != "" {
				data, err := os.ReadFile(script)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				runner, err := nodegraph.LoadTestScript(data)
				if err != nil {
					return err
				}
				res := nodegraph.Replay(runner, canvas, limits, nil, g.Update)
				fmt.Printf("%s replayed %d frames, %d messages\n", brand.Sprint("script"), res.Frames, len(res.Messages))
				for _, m := range res.Messages {
					subtle.Println("  " + m.String())
				}
				fmt.Println()
				canvas = g.Canvas()
			}

			world, _ := canvas.WorldBounds(limits)
			root := canvas.Layout(limits)
			layout := nodegraph.NewLayout(&root, nodegraph.Vec2{})

			var surface countingSurface
			canvas.Draw(&surface, &theme, nodegraph.RenderStyle{TextColor: theme.Text}, layout, nodegraph.Cursor{}, viewport)
			stats := canvas.LastDrawStats()

			cam := canvas.Matrix
			ctx, cty := cam.Translation()
			fmt.Printf("%s %s  scale %.3f  translation (%.1f, %.1f)\n",
				brand.Sprint("camera"), subtle.Sprint(theme.Name), cam.ScaleFactor(), ctx, cty)
			fmt.Printf("%s %.0fx%.0f  world bounds %s\n\n",
				brand.Sprint("viewport"), viewport.Width, viewport.Height, formatRect(world))

			var rows [][]string
			conns := 0
			for i, child := range canvas.Children {
				b := layout.Child(i).Bounds()
				visible, ok := b.Intersection(viewport)
				shown := ok && visible.Width >= 1 && visible.Height >= 1

				kind, detail := "node", ""
				if c, isConn := child.(*nodegraph.Connection[demo.Message]); isConn {
					kind = "connection"
					mesh := nodegraph.Tessellate(c.Points(), c.StrokeWidth/2)
					detail = fmt.Sprintf("%d pts, %d tris", len(c.Points()), len(mesh.Indices)/3)
					conns++
				} else {
					detail = g.Nodes[i-conns].Title
				}
				rows = append(rows, []string{fmt.Sprint(i), kind, formatRect(b), statusIcon(shown), detail})
			}
			table([]string{"#", "KIND", "SCREEN BOUNDS", "DRAWN", "DETAIL"}, rows)

			fmt.Println()
			fmt.Printf("%s %d drawn, %d culled, %d quads, %d meshes, %d triangles\n",
				brand.Sprint("draw"), stats.Drawn, stats.Culled, surface.quads, surface.meshes, surface.triangles)
			if stats.Drawn == 0 {
				warn.Println("  nothing visible; try --fit")
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&scale, "scale", 1, "camera scale")
	f.Float64Var(&tx, "tx", 0, "camera translation x")
	f.Float64Var(&ty, "ty", 0, "camera translation y")
	f.BoolVar(&fit, "fit", false, "frame every node instead of using --scale/--tx/--ty")
	f.StringVar(&script, "script", "", "JSON input script to replay before inspecting")
	return cmd
}

func formatRect(r nodegraph.Rect) string {
	return fmt.Sprintf("(%.1f, %.1f) %.1fx%.1f", r.X, r.Y, r.Width, r.Height)
}
