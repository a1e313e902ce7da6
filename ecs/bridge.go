package ecs

import (
	"github.com/phanxgames/tempo"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TimelineEventType is the Donburi event type for tempo timeline events.
var TimelineEventType = events.NewEventType[tempo.Event]()

// Bridge publishes every event emitted by tl to TimelineEventType in world.
// Events are queued until the world processes them. Remove the returned
// subscription to stop forwarding.
func Bridge(world donburi.World, tl *tempo.Timeline) tempo.Subscription {
	return tl.Events().All.Subscribe(func(e tempo.Event) {
		TimelineEventType.Publish(world, e)
	})
}

// BridgeTree bridges tl and every descendant present at the time of the
// call. The returned function removes all of the subscriptions.
func BridgeTree(world donburi.World, tl *tempo.Timeline) func() {
	var subs []tempo.Subscription
	var walk func(*tempo.Timeline)
	walk = func(t *tempo.Timeline) {
		subs = append(subs, Bridge(world, t))
		for _, c := range t.Children() {
			walk(c)
		}
	}
	walk(tl)
	return func() {
		for _, s := range subs {
			s.Remove()
		}
	}
}
