// Package ecs provides ECS adapters for the invcanvas input event stream.
//
// The primary adapter is [NewDonburiSink], which republishes every input
// event the manager dispatches (pointer, wheel, key, close) into a [Donburi]
// world as typed events. Subscribe to [InputEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	manager.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
