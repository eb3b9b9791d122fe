package nodegraph

// EventType identifies a kind of pointer event delivered by the host.
type EventType uint8

const (
	EventPointerDown EventType = iota // a pointer button was pressed
	EventPointerUp                    // a pointer button was released
	EventPointerMove                  // the cursor moved
	EventScroll                       // the wheel scrolled
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventPointerMove:
		return "pointer-move"
	case EventScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// ScrollUnit tells whether a scroll delta is in lines or pixels.
type ScrollUnit uint8

const (
	ScrollLines  ScrollUnit = iota // wheel notches
	ScrollPixels                   // precise (touchpad) pixels
)

// Event is a single raw pointer event.
type Event struct {
	Type   EventType
	Button MouseButton
	// Scroll is the wheel delta for EventScroll; positive Y scrolls up.
	Scroll     Vec2
	ScrollUnit ScrollUnit
}

// Cursor is the pointer state at the time of an event.
type Cursor struct {
	Position  Vec2
	Available bool
}

// CursorAt returns an available cursor at (x, y).
func CursorAt(x, y float64) Cursor {
	return Cursor{Position: Vec2{x, y}, Available: true}
}

// Status reports whether a widget consumed an event.
type Status uint8

const (
	StatusIgnored  Status = iota // the event may be handled by someone else
	StatusCaptured               // the event was consumed
)

// Merge returns Captured if either status is Captured.
func (s Status) Merge(o Status) Status {
	if s == StatusCaptured || o == StatusCaptured {
		return StatusCaptured
	}
	return StatusIgnored
}

// InteractionType identifies the kind of canvas output event.
type InteractionType uint8

const (
	InteractionPan      InteractionType = iota // background drag
	InteractionZoom                            // wheel over the background
	InteractionNodeMove                        // node drag
)

// String returns the interaction name.
func (t InteractionType) String() string {
	switch t {
	case InteractionPan:
		return "pan"
	case InteractionZoom:
		return "zoom"
	case InteractionNodeMove:
		return "node-move"
	default:
		return "unknown"
	}
}

// InteractionEvent describes one output event of the canvas, for consumers
// that prefer a typed event stream (such as an ECS) over messages.
type InteractionEvent struct {
	Type InteractionType
	// Element is the index of the canvas child that produced the event, or
	// -1 for canvas-level events.
	Element int
	// DeltaX and DeltaY are screen-space deltas (pan, node-move).
	DeltaX, DeltaY float64
	// X and Y are the cursor position (zoom).
	X, Y float64
	// ScrollDelta is the normalized wheel delta in lines (zoom).
	ScrollDelta float64
}

// EntityStore is the interface for optional ECS integration.
// When set on a Shell, interaction events are forwarded to the store.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// Shell collects the messages published while handling one event batch.
type Shell[M any] struct {
	messages []M
	store    EntityStore
	element  int
}

// NewShell returns an empty shell. store may be nil.
func NewShell[M any](store EntityStore) *Shell[M] {
	return &Shell[M]{store: store, element: -1}
}

// Publish queues a message for the application.
func (s *Shell[M]) Publish(m M) {
	s.messages = append(s.messages, m)
}

// Messages returns the queued messages. The returned slice MUST NOT be
// retained across Reset.
func (s *Shell[M]) Messages() []M {
	return s.messages
}

// Reset clears the queued messages, keeping the buffer.
func (s *Shell[M]) Reset() {
	var zero M
	for i := range s.messages {
		s.messages[i] = zero
	}
	s.messages = s.messages[:0]
}

// emit forwards an interaction event to the entity store, tagging it with
// the element currently being dispatched to.
func (s *Shell[M]) emit(ev InteractionEvent) {
	if s.store == nil {
		return
	}
	if ev.Type == InteractionNodeMove {
		ev.Element = s.element
	} else {
		ev.Element = -1
	}
	s.store.EmitEvent(ev)
}
