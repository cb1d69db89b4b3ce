package ecs

import (
	"testing"

	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEnded(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []tween.EndedEvent
	TimerEndedEventType.Subscribe(world, func(w donburi.World, e tween.EndedEvent) {
		received = append(received, e)
	})

	tm := &tween.Timer{Duration: 1}
	sink.EmitEnded(tween.EndedEvent{Unit: 42, Timer: tm})
	sink.EmitEnded(tween.EndedEvent{Unit: 7, Timer: tm})

	// Events are queued — process them.
	TimerEndedEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Unit != 42 || received[0].Timer != tm {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Unit != 7 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink tween.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	TimerEndedEventType.Subscribe(world, func(w donburi.World, e tween.EndedEvent) {
		count1++
	})
	TimerEndedEventType.Subscribe(world, func(w donburi.World, e tween.EndedEvent) {
		count2++
	})

	sink.EmitEnded(tween.EndedEvent{Unit: 1})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiSink_EndToEnd(t *testing.T) {
	world := donburi.NewWorld()

	rt := tween.NewRuntime(tween.FixedStep(1))
	rt.SetEventSink(NewDonburiSink(world))
	id := rt.Spawn(&tween.Timer{Duration: 0.5}, tween.Linear, nil)

	var got []tween.UnitID
	TimerEndedEventType.Subscribe(world, func(w donburi.World, e tween.EndedEvent) {
		got = append(got, e.Unit)
	})

	rt.Tick() // completes the half-second timer in one step
	TimerEndedEventType.ProcessEvents(world)

	if len(got) != 1 || got[0] != id {
		t.Fatalf("got ended units %v, want exactly [%d]", got, id)
	}
}
