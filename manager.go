package invcanvas

import (
	"io"
	"slices"
)

// DefaultMessageTicks is the number of frames a blocking message stays up
// for scripted messages that do not give a frame count.
const DefaultMessageTicks = 200

// Manager is the top-level object that owns the drawing surface, the child
// widgets, the cursor cache and the frame loop. It implements InputHandler;
// hosts deliver native input to it through an InputSource.
//
// All methods must be called from the host's frame goroutine.
type Manager struct {
	surface Surface
	input   InputSource
	frames  FrameScheduler
	sink    EventSink
	debug   bool

	// OnClose is invoked when the primary button is pressed outside the
	// primary widget. It may be nil.
	OnClose func()

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	// Children and hit-testing
	children []Widget
	primary  Widget

	// Transform state
	scale     float64
	transform [6]float64

	// Input state
	cursor           Vec2
	needsInputUpdate bool

	// Render state
	rendering    bool
	pending      bool
	forceRender  bool
	index        int
	frameCount   uint64
	message      string
	messageTicks int
	slides       []*slideAnim
	frameDelta   float64

	// Scripted input and capture
	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewManager creates a manager drawing to surface, scheduling frames on
// frames, and receiving input from input. input may be nil when the host
// calls the InputHandler methods itself.
func NewManager(surface Surface, frames FrameScheduler, input InputSource) *Manager {
	m := &Manager{
		surface:       surface,
		input:         input,
		frames:        frames,
		ScreenshotDir: "screenshots",
		frameDelta:    1.0 / 60,
	}
	m.SetScale(1)
	if input != nil {
		input.Bind(m)
	}
	return m
}

// AddChild appends w to the child list. The first widget added while no
// primary is set becomes the primary widget.
func (m *Manager) AddChild(w Widget) {
	if w == nil {
		return
	}
	w.SetScale(m.deviceScale())
	m.children = append(m.children, w)
	if m.primary == nil {
		m.primary = w
	}
	if m.debug {
		debugCheckChildCount(m)
	}
}

// RemoveChild removes w from the child list and cancels its slide, if any.
// If w was the primary widget the next remaining child, if any, becomes
// primary. It is safe to call from inside a widget callback: the list being
// dispatched or rendered is never modified in place.
func (m *Manager) RemoveChild(w Widget) {
	if i := slices.Index(m.children, w); i >= 0 {
		m.children = slices.Delete(slices.Clone(m.children), i, i+1)
	}
	m.slides = slices.DeleteFunc(m.slides, func(s *slideAnim) bool {
		return s.widget == w
	})
	if m.primary == w {
		m.primary = nil
		if len(m.children) > 0 {
			m.primary = m.children[0]
		}
	}
}

// Children returns the ordered child list. The returned slice MUST NOT be mutated.
func (m *Manager) Children() []Widget {
	return m.children
}

// Primary returns the widget used for outside-click detection, or nil.
func (m *Manager) Primary() Widget {
	return m.primary
}

// SetPrimary makes w the primary widget. w is added as a child if it is not
// one already; nil clears the primary.
func (m *Manager) SetPrimary(w Widget) {
	if w == nil {
		m.primary = nil
		return
	}
	found := false
	for _, c := range m.children {
		if c == w {
			found = true
			break
		}
	}
	if !found {
		m.AddChild(w)
	}
	m.primary = w
}

// Reset empties the child list and drops the primary widget. Input that
// arrives afterwards is forwarded to nobody.
func (m *Manager) Reset() {
	m.children = nil
	m.primary = nil
	m.slides = m.slides[:0]
}

// Destroy stops rendering, drops all children, detaches from the input
// source and closes the surface if it supports closing.
func (m *Manager) Destroy() error {
	m.StopRendering()
	m.Reset()
	if m.input != nil {
		m.input.Unbind()
		m.input = nil
	}
	if c, ok := m.surface.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Surface returns the manager's drawing surface.
func (m *Manager) Surface() Surface {
	return m.surface
}

// CursorPosition returns the last known pointer position in logical
// coordinates.
func (m *Manager) CursorPosition() Vec2 {
	return m.cursor
}

// NeedsInputUpdate reports whether the pointer moved since the flag was last
// consumed.
func (m *Manager) NeedsInputUpdate() bool {
	return m.needsInputUpdate
}

// ConsumeInputUpdate returns the dirty flag and clears it.
func (m *Manager) ConsumeInputUpdate() bool {
	v := m.needsInputUpdate
	m.needsInputUpdate = false
	return v
}

// SetForceRender sets the flag OR-ed into every child's render argument.
func (m *Manager) SetForceRender(force bool) {
	m.forceRender = force
}

// ForceRender reports the force-render flag.
func (m *Manager) ForceRender() bool {
	return m.forceRender
}

// SetEventSink sets the optional receiver of dispatched input events.
func (m *Manager) SetEventSink(sink EventSink) {
	m.sink = sink
}

// SetFrameDelta sets the seconds advanced per frame for animations. Hosts
// running at a fixed rate pass 1/TPS; the default is 1/60.
func (m *Manager) SetFrameDelta(dt float64) {
	if dt > 0 {
		m.frameDelta = dt
	}
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing stats and child count warnings are printed to stderr.
func (m *Manager) SetDebugMode(enabled bool) {
	m.debug = enabled
}
