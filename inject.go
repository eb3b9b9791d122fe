package nodegraph

// Injector queues synthetic pointer samples. Screen coordinates are used,
// identical to real mouse input. Each queued sample replaces real input for
// one frame, so a queue of n samples consumes n frames.
type Injector struct {
	queue []PointerSample
}

func (in *Injector) push(s PointerSample) {
	s.Inside = true
	in.queue = append(in.queue, s)
}

// Press queues a left-button press at (x, y).
func (in *Injector) Press(x, y float64) {
	in.push(PointerSample{X: x, Y: y, Left: true})
}

// Move queues a pointer move to (x, y) with the left button held. Use it
// between Press and Release to simulate a drag.
func (in *Injector) Move(x, y float64) {
	in.push(PointerSample{X: x, Y: y, Left: true})
}

// Hover queues a pointer move to (x, y) with no button held.
func (in *Injector) Hover(x, y float64) {
	in.push(PointerSample{X: x, Y: y})
}

// Release queues a left-button release at (x, y).
func (in *Injector) Release(x, y float64) {
	in.push(PointerSample{X: x, Y: y})
}

// Scroll queues a wheel event at (x, y). delta is in lines, positive for up.
func (in *Injector) Scroll(x, y, delta float64) {
	in.push(PointerSample{X: x, Y: y, Wheel: Vec2{0, delta}, WheelUnit: ScrollLines})
}

// ScrollPixels queues a precise wheel event at (x, y) with a pixel delta.
func (in *Injector) ScrollPixels(x, y, delta float64) {
	in.push(PointerSample{X: x, Y: y, Wheel: Vec2{0, delta}, WheelUnit: ScrollPixels})
}

// Click queues a press followed by a release at the same point. Consumes two
// frames.
func (in *Injector) Click(x, y float64) {
	in.Press(x, y)
	in.Release(x, y)
}

// Drag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames and a release at
// (toX, toY). The sequence consumes frames frames; the minimum is 2.
func (in *Injector) Drag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.Press(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.Move(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.Release(toX, toY)
}

// Len returns the number of queued samples.
func (in *Injector) Len() int {
	return len(in.queue)
}

// next pops the oldest queued sample.
func (in *Injector) next() (PointerSample, bool) {
	if len(in.queue) == 0 {
		return PointerSample{}, false
	}
	s := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]
	return s, true
}
