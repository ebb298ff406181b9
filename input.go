package invcanvas

// PointerEvent is a pointer press, release or move in client (viewport)
// coordinates, as delivered by the host.
type PointerEvent struct {
	ClientX, ClientY float64
	Button           MouseButton
}

// WheelEvent is a wheel scroll at a client position.
type WheelEvent struct {
	ClientX, ClientY float64
	DeltaY           float64
}

// KeyEvent carries the key identity (the character or named key produced,
// e.g. "a", "A", "Escape") and the physical key code (e.g. "KeyA").
type KeyEvent struct {
	Key  string
	Code string
}

// InputHandler receives native input from a host. Wheel, KeyDown and KeyUp
// return true when some widget handled the event and the host should suppress
// its default behavior (page scroll, browser shortcuts and the like).
type InputHandler interface {
	PointerMove(ev PointerEvent)
	PointerDown(ev PointerEvent)
	PointerUp(ev PointerEvent)
	Wheel(ev WheelEvent) bool
	KeyDown(ev KeyEvent) bool
	KeyUp(ev KeyEvent) bool
}

// InputSource is implemented by hosts that produce native input. The manager
// binds itself on construction and unbinds on Destroy.
type InputSource interface {
	Bind(h InputHandler)
	Unbind()
}

var _ InputHandler = (*Manager)(nil)

// PointerMove caches the logical cursor position and marks input dirty.
func (m *Manager) PointerMove(ev PointerEvent) {
	x, y := m.ToLogical(ev.ClientX, ev.ClientY)
	m.cursor = Vec2{X: x, Y: y}
	m.needsInputUpdate = true
	m.emit(InputEvent{Type: EventPointerMove, X: x, Y: y, Button: ev.Button})
}

// PointerDown handles a button press. A primary-button press left of or above
// the primary widget's offset invokes OnClose and is not forwarded; anything
// else, including presses right of or below the window, is forwarded to every
// child in order. Secondary presses are always forwarded.
func (m *Manager) PointerDown(ev PointerEvent) {
	x, y := m.ToLogical(ev.ClientX, ev.ClientY)
	secondary := ev.Button == MouseButtonRight

	if !secondary && m.primary != nil && beforeOffset(m.primary, x, y) {
		if m.OnClose != nil {
			m.OnClose()
		}
		m.emit(InputEvent{Type: EventClose, X: x, Y: y, Button: ev.Button})
		return
	}

	for _, child := range m.children {
		child.MouseDown(x, y, secondary)
	}
	m.emit(InputEvent{Type: EventPointerDown, X: x, Y: y, Button: ev.Button})
}

// beforeOffset reports whether (x, y) lies left of or above w's offset.
func beforeOffset(w Widget, x, y float64) bool {
	xoff, yoff := w.Offset()
	return x < xoff || y < yoff
}

// PointerUp forwards a release to every child unconditionally.
func (m *Manager) PointerUp(ev PointerEvent) {
	x, y := m.ToLogical(ev.ClientX, ev.ClientY)
	for _, child := range m.children {
		child.MouseUp()
	}
	m.emit(InputEvent{Type: EventPointerUp, X: x, Y: y, Button: ev.Button})
}

// Wheel forwards a scroll to every child and reports whether any handled it.
// Every child sees the event even after one has handled it.
func (m *Manager) Wheel(ev WheelEvent) bool {
	x, y := m.ToLogical(ev.ClientX, ev.ClientY)
	handled := false
	for _, child := range m.children {
		if child.Scroll(x, y, ev.DeltaY) {
			handled = true
		}
	}
	m.emit(InputEvent{Type: EventWheel, X: x, Y: y, DeltaY: ev.DeltaY, Handled: handled})
	return handled
}

// KeyDown forwards a key press to every child and reports whether any
// handled it.
func (m *Manager) KeyDown(ev KeyEvent) bool {
	handled := false
	for _, child := range m.children {
		if child.KeyDown(ev.Key, ev.Code) {
			handled = true
		}
	}
	m.emit(InputEvent{Type: EventKeyDown, Key: ev.Key, Code: ev.Code, Handled: handled})
	return handled
}

// KeyUp forwards a key release to every child and reports whether any
// handled it.
func (m *Manager) KeyUp(ev KeyEvent) bool {
	handled := false
	for _, child := range m.children {
		if child.KeyUp(ev.Key, ev.Code) {
			handled = true
		}
	}
	m.emit(InputEvent{Type: EventKeyUp, Key: ev.Key, Code: ev.Code, Handled: handled})
	return handled
}
