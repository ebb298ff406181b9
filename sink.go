package invcanvas

// EventSink is the interface for optional ECS integration.
// When set on a Manager, every dispatched input event is forwarded to it after
// the children have seen it.
type EventSink interface {
	EmitEvent(event InputEvent)
}

// InputEvent describes one dispatched input event. Positions are logical.
type InputEvent struct {
	Type   EventType
	X, Y   float64
	Button MouseButton
	// DeltaY is valid for EventWheel.
	DeltaY float64
	// Key and Code are valid for EventKeyDown and EventKeyUp.
	Key  string
	Code string
	// Handled reports whether a child claimed a wheel or key event.
	Handled bool
	// Frame is the number of frames completed when the event was dispatched.
	Frame uint64
}

func (m *Manager) emit(ev InputEvent) {
	if m.sink == nil {
		return
	}
	ev.Frame = m.frameCount
	m.sink.EmitEvent(ev)
}
