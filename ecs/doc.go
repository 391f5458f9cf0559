// Package ecs provides ECS adapters for folio's page events.
//
// [NewDonburiSink] forwards page events (loader hidden, section revealed,
// navigation, form results, notifications) into a [Donburi] world as typed
// events. Subscribe to [PageEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	page.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
