// Package ecs provides ECS adapters for tween's ended-event stream.
//
// The primary adapter is [NewDonburiSink], which bridges tween ended
// events (a timer reaching its terminal state) into a [Donburi] world as
// typed events. Subscribe to [TimerEndedEventType] in your ECS systems
// to react to finished animations.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	rt.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
