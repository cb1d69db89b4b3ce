// Package ecs provides ECS adapters for tween.
package ecs

import (
	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TimerEndedEventType is the Donburi event type for tween ended events.
// Subscribe to this in your ECS systems to react to animations that
// reached their terminal state.
var TimerEndedEventType = events.NewEventType[tween.EndedEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Ended
// events are published to TimerEndedEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) tween.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEnded(ev tween.EndedEvent) {
	TimerEndedEventType.Publish(s.world, ev)
}
