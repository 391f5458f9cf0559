// Package ecs provides ECS adapters for folio.
package ecs

import (
	"github.com/phanxgames/folio"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PageEventType is the Donburi event type for folio page events.
var PageEventType = events.NewEventType[folio.PageEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Page events
// are published to PageEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) folio.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event folio.PageEvent) {
	PageEventType.Publish(s.world, event)
}
