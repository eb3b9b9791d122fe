package nodegraph

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Pixels bool    `json:"pixels,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "hover": true, "release": true,
	"scroll": true, "click": true, "drag": true, "wait": true,
	"screenshot": true,
}

// runnerHost is what a TestRunner drives: an input queue and an optional
// screenshot sink.
type runnerHost interface {
	Injector() *Injector
	Screenshot(label string)
}

// TestRunner sequences injected input across frames for automated runs.
// Attach it to an App with SetTestRunner, or drive a canvas headlessly with
// Replay.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner.
//
//	{"steps": [
//	  {"action": "drag", "fromX": 50, "fromY": 50, "toX": 80, "toY": 40, "frames": 4},
//	  {"action": "scroll", "x": 320, "y": 240, "delta": 1},
//	  {"action": "wait", "frames": 10},
//	  {"action": "screenshot", "label": "zoomed"}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(h runnerHost) {
	if r.done {
		return
	}
	in := h.Injector()
	// Wait for pending injections to drain before advancing.
	if in.Len() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		h.Screenshot(st.Label)
	case "press":
		in.Press(st.X, st.Y)
	case "move":
		in.Move(st.X, st.Y)
	case "hover":
		in.Hover(st.X, st.Y)
	case "release":
		in.Release(st.X, st.Y)
	case "scroll":
		if st.Pixels {
			in.ScrollPixels(st.X, st.Y, st.Delta)
		} else {
			in.Scroll(st.X, st.Y, st.Delta)
		}
	case "click":
		in.Click(st.X, st.Y)
	case "drag":
		in.Drag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Len() == 0 {
		r.done = true
	}
}

// headlessHost runs a script without a window. Screenshots are recorded by
// label only.
type headlessHost struct {
	in          Injector
	screenshots []string
}

func (h *headlessHost) Injector() *Injector     { return &h.in }
func (h *headlessHost) Screenshot(label string) { h.screenshots = append(h.screenshots, label) }

// ReplayResult is the outcome of a headless Replay.
type ReplayResult[M any] struct {
	Messages    []M
	Frames      int
	Screenshots []string
}

// Replay runs the script against canvas without a window. Every frame the
// canvas is laid out within limits, the frame's injected sample is turned
// into events and dispatched, and each published message is passed to
// update (which may be nil) before the next frame.
func Replay[M any](r *TestRunner, canvas *Canvas[M], limits Limits, store EntityStore, update func(M)) ReplayResult[M] {
	var (
		host   headlessHost
		ptr    pointerState
		events []Event
		res    ReplayResult[M]
	)
	shell := NewShell[M](store)

	for !r.Done() || host.in.Len() > 0 {
		r.step(&host)
		res.Frames++

		sample, ok := host.in.next()
		if !ok {
			continue
		}
		var cursor Cursor
		events, cursor = ptr.translate(events[:0], sample)

		root := canvas.Layout(limits)
		layout := NewLayout(&root, Vec2{})
		for _, ev := range events {
			canvas.HandleEvent(ev, layout, cursor, shell)
		}
		for _, m := range shell.Messages() {
			res.Messages = append(res.Messages, m)
			if update != nil {
				update(m)
			}
		}
		shell.Reset()
	}
	res.Screenshots = host.screenshots
	return res
}
