package ecs

import (
	"testing"

	"github.com/phanxgames/folio"

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

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []folio.PageEvent
	PageEventType.Subscribe(world, func(w donburi.World, e folio.PageEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(folio.PageEvent{
		Type:   folio.EventNavigate,
		Target: "#about",
		Value:  570,
	})
	sink.EmitEvent(folio.PageEvent{
		Type:    folio.EventNotification,
		Target:  "error",
		Message: "Please fix the errors in the form",
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	PageEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != folio.EventNavigate || e0.Target != "#about" || e0.Value != 570 {
		t.Errorf("event 0: %+v", e0)
	}
	e1 := received[1]
	if e1.Type != folio.EventNotification || e1.Message != "Please fix the errors in the form" {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink folio.EventSink = NewDonburiSink(world)
	_ = sink
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	PageEventType.Subscribe(world, func(w donburi.World, e folio.PageEvent) {
		count1++
	})
	PageEventType.Subscribe(world, func(w donburi.World, e folio.PageEvent) {
		count2++
	})

	sink.EmitEvent(folio.PageEvent{Type: folio.EventMenuToggled, Value: 1})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiSink_FromPage(t *testing.T) {
	content, err := folio.LoadContent([]byte(`{"sections":[{"id":"about","title":"About"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	world := donburi.NewWorld()
	page := folio.NewPage(content, folio.WithLogOutput(nil))
	page.SetEventSink(NewDonburiSink(world))

	var got []folio.PageEvent
	PageEventType.Subscribe(world, func(w donburi.World, e folio.PageEvent) {
		got = append(got, e)
	})

	page.Notifier().Show(folio.NotifySuccess, "hello")
	PageEventType.ProcessEvents(world)

	if len(got) != 1 || got[0].Type != folio.EventNotification || got[0].Message != "hello" {
		t.Fatalf("events = %+v", got)
	}
}
