// Package ecs bridges tempo timeline events into a [Donburi] world.
//
// [Bridge] forwards every event of a timeline to [TimelineEventType], where
// ECS systems consume them on their own schedule:
//
//	sub := ecs.Bridge(world, root)
//	defer sub.Remove()
//
//	ecs.TimelineEventType.Subscribe(world, func(w donburi.World, e tempo.Event) {
//		if e.Kind() == tempo.EventComplete { ... }
//	})
//	// once per frame:
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
