package invcanvas

// syntheticKind selects which InputHandler method a queued event calls.
type syntheticKind uint8

const (
	synthMove syntheticKind = iota
	synthPress
	synthRelease
	synthWheel
	synthKeyDown
	synthKeyUp
)

// syntheticEvent represents a single injected input event. Client
// coordinates are used, identical to real host input, so the event goes
// through the same coordinate transform.
type syntheticEvent struct {
	kind             syntheticKind
	clientX, clientY float64
	button           MouseButton
	deltaY           float64
	key, code        string
}

// InjectMove queues a pointer move to the given client coordinates. Queued
// events are consumed one per frame, at the start of the frame.
func (m *Manager) InjectMove(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticEvent{
		kind: synthMove, clientX: x, clientY: y,
	})
}

// InjectPress queues a button press at the given client coordinates.
func (m *Manager) InjectPress(x, y float64, button MouseButton) {
	m.injectQueue = append(m.injectQueue, syntheticEvent{
		kind: synthPress, clientX: x, clientY: y, button: button,
	})
}

// InjectRelease queues a button release at the given client coordinates.
func (m *Manager) InjectRelease(x, y float64, button MouseButton) {
	m.injectQueue = append(m.injectQueue, syntheticEvent{
		kind: synthRelease, clientX: x, clientY: y, button: button,
	})
}

// InjectClick is a convenience that queues a left press followed by a
// release at the same client coordinates. Consumes two frames.
func (m *Manager) InjectClick(x, y float64) {
	m.InjectPress(x, y, MouseButtonLeft)
	m.InjectRelease(x, y, MouseButtonLeft)
}

// InjectRightClick queues a secondary press and release. Consumes two frames.
func (m *Manager) InjectRightClick(x, y float64) {
	m.InjectPress(x, y, MouseButtonRight)
	m.InjectRelease(x, y, MouseButtonRight)
}

// InjectScroll queues a wheel event at the given client coordinates.
func (m *Manager) InjectScroll(x, y, deltaY float64) {
	m.injectQueue = append(m.injectQueue, syntheticEvent{
		kind: synthWheel, clientX: x, clientY: y, deltaY: deltaY,
	})
}

// InjectKey queues a key press followed by its release. Consumes two frames.
func (m *Manager) InjectKey(key, code string) {
	m.injectQueue = append(m.injectQueue,
		syntheticEvent{kind: synthKeyDown, key: key, code: code},
		syntheticEvent{kind: synthKeyUp, key: key, code: code},
	)
}

// PendingInjected returns the number of queued synthetic events.
func (m *Manager) PendingInjected() int {
	return len(m.injectQueue)
}

// processInjectedInput pops one event from the inject queue and dispatches it.
// Returns true if an event was consumed.
func (m *Manager) processInjectedInput() bool {
	if len(m.injectQueue) == 0 {
		return false
	}
	evt := m.injectQueue[0]
	copy(m.injectQueue, m.injectQueue[1:])
	m.injectQueue = m.injectQueue[:len(m.injectQueue)-1]

	pe := PointerEvent{ClientX: evt.clientX, ClientY: evt.clientY, Button: evt.button}
	switch evt.kind {
	case synthMove:
		m.PointerMove(pe)
	case synthPress:
		m.PointerMove(pe)
		m.PointerDown(pe)
	case synthRelease:
		m.PointerMove(pe)
		m.PointerUp(pe)
	case synthWheel:
		m.Wheel(WheelEvent{ClientX: evt.clientX, ClientY: evt.clientY, DeltaY: evt.deltaY})
	case synthKeyDown:
		m.KeyDown(KeyEvent{Key: evt.key, Code: evt.code})
	case synthKeyUp:
		m.KeyUp(KeyEvent{Key: evt.key, Code: evt.code})
	}
	return true
}
