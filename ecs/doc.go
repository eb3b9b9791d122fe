// Package ecs provides ECS adapters for nodegraph's interaction events.
//
// [NewDonburiStore] bridges canvas interaction events (pan, zoom, node
// move) into a [Donburi] world as typed events. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
// [NewMotionTracker] additionally folds node moves into one entity per
// canvas element.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	app.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
