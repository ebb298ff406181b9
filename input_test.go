package invcanvas

import "testing"

// newWindowManager returns a manager at scale 1 with a primary window at
// (100, 100) sized 200x150 and a second, overlapping child.
func newWindowManager() (*Manager, *recordingWidget, *recordingWidget, *int) {
	m, _, _ := newTestManager()
	primary := newWidget("primary", nil)
	primary.XOff, primary.YOff = 100, 100
	primary.Width, primary.Height = 200, 150
	other := newWidget("other", nil)
	m.AddChild(primary)
	m.AddChild(other)

	closes := 0
	m.OnClose = func() { closes++ }
	return m, primary, other, &closes
}

func TestPointerMoveCachesLogicalPosition(t *testing.T) {
	m, surf, _ := newTestManager()
	surf.dpr = 2
	m.SetScale(2)

	if m.NeedsInputUpdate() {
		t.Fatal("NeedsInputUpdate should start false")
	}
	m.PointerMove(PointerEvent{ClientX: 400, ClientY: 200})

	pos := m.CursorPosition()
	if !approxEqual(pos.X, 100, epsilon) || !approxEqual(pos.Y, 50, epsilon) {
		t.Errorf("CursorPosition = %v, want (100, 50)", pos)
	}
	if !m.NeedsInputUpdate() {
		t.Error("NeedsInputUpdate should be true after a move")
	}
	if !m.ConsumeInputUpdate() {
		t.Error("ConsumeInputUpdate should return true once")
	}
	if m.NeedsInputUpdate() {
		t.Error("ConsumeInputUpdate should clear the flag")
	}
}

func TestPointerDownOutsidePrimaryCloses(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"above-left", 50, 50},
		{"left", 50, 150},
		{"above", 150, 50},
		{"left of right edge", 99, 300},
		{"above far right", 500, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, primary, other, closes := newWindowManager()
			m.PointerDown(PointerEvent{ClientX: tt.x, ClientY: tt.y, Button: MouseButtonLeft})
			if *closes != 1 {
				t.Errorf("OnClose called %d times, want 1", *closes)
			}
			if len(primary.downs) != 0 || len(other.downs) != 0 {
				t.Errorf("outside click forwarded: primary %d, other %d", len(primary.downs), len(other.downs))
			}
		})
	}
}

func TestPointerDownInsidePrimaryForwardsToAll(t *testing.T) {
	m, primary, other, closes := newWindowManager()
	m.PointerDown(PointerEvent{ClientX: 150, ClientY: 120, Button: MouseButtonLeft})

	if *closes != 0 {
		t.Errorf("OnClose called %d times, want 0", *closes)
	}
	for _, w := range []*recordingWidget{primary, other} {
		if len(w.downs) != 1 {
			t.Fatalf("%s got %d downs, want 1", w.name, len(w.downs))
		}
		d := w.downs[0]
		if d.x != 150 || d.y != 120 || d.secondary {
			t.Errorf("%s down = %+v, want (150, 120, false)", w.name, d)
		}
	}
}

func TestPointerDownOnPrimaryEdgeIsInside(t *testing.T) {
	m, primary, _, closes := newWindowManager()
	m.PointerDown(PointerEvent{ClientX: 100, ClientY: 100})
	m.PointerDown(PointerEvent{ClientX: 300, ClientY: 250})
	if *closes != 0 || len(primary.downs) != 2 {
		t.Errorf("closes = %d, downs = %d; want 0, 2", *closes, len(primary.downs))
	}
}

func TestPointerDownRightOrBelowPrimaryForwards(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"right", 350, 150},
		{"below", 150, 300},
		{"below-right", 700, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, primary, other, closes := newWindowManager()
			m.PointerDown(PointerEvent{ClientX: tt.x, ClientY: tt.y, Button: MouseButtonLeft})
			if *closes != 0 {
				t.Errorf("OnClose called %d times, want 0", *closes)
			}
			if len(primary.downs) != 1 || len(other.downs) != 1 {
				t.Fatalf("press not forwarded: primary %d, other %d", len(primary.downs), len(other.downs))
			}
			if d := primary.downs[0]; d.x != tt.x || d.y != tt.y {
				t.Errorf("down = %+v, want (%v, %v)", d, tt.x, tt.y)
			}
		})
	}
}

func TestSecondaryPressAlwaysForwards(t *testing.T) {
	for _, pos := range []Vec2{{10, 10}, {150, 120}, {700, 500}} {
		m, primary, other, closes := newWindowManager()
		m.PointerDown(PointerEvent{ClientX: pos.X, ClientY: pos.Y, Button: MouseButtonRight})
		if *closes != 0 {
			t.Errorf("%v: OnClose called on secondary press", pos)
		}
		if len(primary.downs) != 1 || len(other.downs) != 1 {
			t.Fatalf("%v: secondary press not forwarded to all", pos)
		}
		if !primary.downs[0].secondary {
			t.Errorf("%v: secondary flag not set", pos)
		}
	}
}

func TestMiddlePressIsNotSecondary(t *testing.T) {
	m, primary, _, closes := newWindowManager()
	m.PointerDown(PointerEvent{ClientX: 150, ClientY: 120, Button: MouseButtonMiddle})
	if *closes != 0 || len(primary.downs) != 1 || primary.downs[0].secondary {
		t.Errorf("middle press: closes=%d downs=%+v", *closes, primary.downs)
	}
}

func TestPointerDownNilOnClose(t *testing.T) {
	m, primary, _, _ := newWindowManager()
	m.OnClose = nil
	m.PointerDown(PointerEvent{ClientX: 0, ClientY: 0}) // should not panic
	if len(primary.downs) != 0 {
		t.Error("outside click forwarded with nil OnClose")
	}
}

func TestSetPrimaryOverridesOutsideCheck(t *testing.T) {
	m, primary, other, closes := newWindowManager()
	other.XOff, other.YOff = 400, 400
	other.Width, other.Height = 100, 100
	m.SetPrimary(other)

	// Inside the old primary but outside the new one.
	m.PointerDown(PointerEvent{ClientX: 150, ClientY: 120})
	if *closes != 1 {
		t.Errorf("OnClose called %d times, want 1", *closes)
	}
	m.PointerDown(PointerEvent{ClientX: 450, ClientY: 450})
	if len(primary.downs) != 1 || len(other.downs) != 1 {
		t.Errorf("downs = %d/%d, want 1/1", len(primary.downs), len(other.downs))
	}
}

func TestPointerUpForwardsUnconditionally(t *testing.T) {
	m, primary, other, closes := newWindowManager()
	m.PointerUp(PointerEvent{ClientX: 0, ClientY: 0})
	if primary.ups != 1 || other.ups != 1 {
		t.Errorf("ups = %d/%d, want 1/1", primary.ups, other.ups)
	}
	if *closes != 0 {
		t.Error("release should never close")
	}
}

func TestWheelHandledAggregation(t *testing.T) {
	m, primary, other, _ := newWindowManager()

	if m.Wheel(WheelEvent{ClientX: 150, ClientY: 120, DeltaY: 100}) {
		t.Error("Wheel reported handled with no handling child")
	}

	// The first child handling must not stop the second from seeing it.
	primary.handleAll = true
	if !m.Wheel(WheelEvent{ClientX: 150, ClientY: 120, DeltaY: -50}) {
		t.Error("Wheel should report handled")
	}
	if len(other.scrolls) != 2 || other.scrolls[1] != -50 {
		t.Errorf("other scrolls = %v, want [100 -50]", other.scrolls)
	}
}

func TestKeyDispatch(t *testing.T) {
	m, primary, other, _ := newWindowManager()
	other.handleAll = true

	if !m.KeyDown(KeyEvent{Key: "e", Code: "KeyE"}) {
		t.Error("KeyDown should report handled")
	}
	if !m.KeyUp(KeyEvent{Key: "e", Code: "KeyE"}) {
		t.Error("KeyUp should report handled")
	}
	want := KeyEvent{Key: "e", Code: "KeyE"}
	for _, w := range []*recordingWidget{primary, other} {
		if len(w.keysDown) != 1 || w.keysDown[0] != want {
			t.Errorf("%s keysDown = %v", w.name, w.keysDown)
		}
		if len(w.keysUp) != 1 || w.keysUp[0] != want {
			t.Errorf("%s keysUp = %v", w.name, w.keysUp)
		}
	}

	other.handleAll = false
	if m.KeyDown(KeyEvent{Key: "Escape", Code: "Escape"}) {
		t.Error("KeyDown should report unhandled")
	}
}

func TestDispatchOrderFollowsChildOrder(t *testing.T) {
	var log []string
	m, _, _ := newTestManager()
	a := newWidget("a", &log)
	a.Width, a.Height = 800, 600
	b := newWidget("b", &log)
	m.AddChild(a)
	m.AddChild(b)

	m.PointerDown(PointerEvent{ClientX: 10, ClientY: 10})
	m.PointerUp(PointerEvent{})
	m.KeyDown(KeyEvent{Key: "a"})

	want := []string{"a:down", "b:down", "a:up", "b:up", "a:keydown", "b:keydown"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestInputAfterResetReachesNobody(t *testing.T) {
	m, primary, other, closes := newWindowManager()
	m.Reset()

	if len(m.Children()) != 0 || m.Primary() != nil {
		t.Fatal("Reset should empty children and primary")
	}

	m.PointerMove(PointerEvent{ClientX: 5, ClientY: 5})
	m.PointerDown(PointerEvent{ClientX: 5, ClientY: 5})
	m.PointerDown(PointerEvent{ClientX: 5, ClientY: 5, Button: MouseButtonRight})
	m.PointerUp(PointerEvent{ClientX: 5, ClientY: 5})
	if m.Wheel(WheelEvent{DeltaY: 10}) {
		t.Error("Wheel handled with no children")
	}
	if m.KeyDown(KeyEvent{Key: "a"}) || m.KeyUp(KeyEvent{Key: "a"}) {
		t.Error("key handled with no children")
	}

	if *closes != 0 {
		t.Errorf("OnClose called %d times with no primary", *closes)
	}
	if len(primary.downs)+primary.ups+len(other.downs)+other.ups != 0 {
		t.Error("removed children still received input")
	}
}

func TestEventSinkReceivesDispatchedEvents(t *testing.T) {
	m, primary, _, _ := newWindowManager()
	sink := &recordingSink{}
	m.SetEventSink(sink)
	primary.handleAll = true

	m.PointerMove(PointerEvent{ClientX: 150, ClientY: 120})
	m.PointerDown(PointerEvent{ClientX: 150, ClientY: 120})
	m.PointerDown(PointerEvent{ClientX: 5, ClientY: 5})
	m.PointerUp(PointerEvent{ClientX: 150, ClientY: 120})
	m.Wheel(WheelEvent{ClientX: 150, ClientY: 120, DeltaY: 3})
	m.KeyDown(KeyEvent{Key: "q", Code: "KeyQ"})
	m.KeyUp(KeyEvent{Key: "q", Code: "KeyQ"})

	want := []EventType{
		EventPointerMove, EventPointerDown, EventClose, EventPointerUp,
		EventWheel, EventKeyDown, EventKeyUp,
	}
	if len(sink.events) != len(want) {
		t.Fatalf("got %d events, want %d", len(sink.events), len(want))
	}
	for i, typ := range want {
		if sink.events[i].Type != typ {
			t.Errorf("event %d = %v, want %v", i, sink.events[i].Type, typ)
		}
	}
	if ev := sink.events[4]; ev.DeltaY != 3 || !ev.Handled {
		t.Errorf("wheel event = %+v", ev)
	}
	if ev := sink.events[5]; ev.Key != "q" || ev.Code != "KeyQ" {
		t.Errorf("key event = %+v", ev)
	}
}

func TestManagerBindsAndUnbindsInput(t *testing.T) {
	in := &fakeInput{}
	m := NewManager(newFakeSurface(100, 100), &fakeScheduler{}, in)
	if in.handler != InputHandler(m) {
		t.Fatal("NewManager should bind to the input source")
	}
	if err := m.Destroy(); err != nil {
		t.Fatal(err)
	}
	if in.handler != nil || in.unbinds != 1 {
		t.Errorf("Destroy should unbind once; handler=%v unbinds=%d", in.handler, in.unbinds)
	}
}
