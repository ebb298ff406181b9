package ecs

import (
	"github.com/phanxgames/invcanvas"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for invcanvas input events.
// Subscribe to this in your ECS systems to receive pointer, wheel, key and
// close events.
var InputEventType = events.NewEventType[invcanvas.InputEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Input events are published to InputEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) invcanvas.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event invcanvas.InputEvent) {
	InputEventType.Publish(s.world, event)
}
