package ecs

import (
	"github.com/phanxgames/nodegraph"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for canvas interaction
// events.
var InteractionEventType = events.NewEventType[nodegraph.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) nodegraph.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event nodegraph.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// Motion is the accumulated screen-space drag of one canvas element.
type Motion struct {
	Element int
	DX, DY  float64
	Moves   int
}

// MotionComponent stores a Motion on an entity.
var MotionComponent = donburi.NewComponentType[Motion]()

// MotionTracker keeps one entity per dragged canvas element and adds every
// node-move delta to it.
type MotionTracker struct {
	world    donburi.World
	entities map[int]donburi.Entity
}

// NewMotionTracker subscribes a tracker to InteractionEventType in world.
// Deltas are applied when the world's events are processed.
func NewMotionTracker(world donburi.World) *MotionTracker {
	t := &MotionTracker{world: world, entities: make(map[int]donburi.Entity)}
	InteractionEventType.Subscribe(world, t.onEvent)
	return t
}

func (t *MotionTracker) onEvent(w donburi.World, e nodegraph.InteractionEvent) {
	if e.Type != nodegraph.InteractionNodeMove || e.Element < 0 {
		return
	}
	ent, ok := t.entities[e.Element]
	if !ok {
		ent = w.Create(MotionComponent)
		t.entities[e.Element] = ent
		MotionComponent.SetValue(w.Entry(ent), Motion{Element: e.Element})
	}
	m := MotionComponent.Get(w.Entry(ent))
	m.DX += e.DeltaX
	m.DY += e.DeltaY
	m.Moves++
}

// Motion returns the accumulated motion of element, if it has moved.
func (t *MotionTracker) Motion(element int) (Motion, bool) {
	ent, ok := t.entities[element]
	if !ok || !t.world.Valid(ent) {
		return Motion{}, false
	}
	return *MotionComponent.Get(t.world.Entry(ent)), true
}
