package invcanvas

import (
	"image"
	"math"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// --- Surface ---

type fillCall struct {
	rect  Rect
	color Color
}

type textCall struct {
	text string
	x, y float64
}

type fakeSurface struct {
	w, h      int
	client    Rect
	viewW     float64
	viewH     float64
	dpr       float64
	transform [6]float64
	fills     []fillCall
	texts     []textCall
	resizes   int
	closed    bool
}

// newFakeSurface returns a surface whose client rect matches its backing
// store, so client coordinates equal device pixels.
func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{
		w:      w,
		h:      h,
		client: Rect{Width: float64(w), Height: float64(h)},
		viewW:  float64(w),
		viewH:  float64(h),
		dpr:    1,
	}
}

func (s *fakeSurface) Size() (int, int) { return s.w, s.h }
func (s *fakeSurface) Resize(w, h int) {
	s.w, s.h = w, h
	s.resizes++
}
func (s *fakeSurface) ClientRect() Rect { return s.client }
func (s *fakeSurface) Viewport() (float64, float64) { return s.viewW, s.viewH }
func (s *fakeSurface) DevicePixelRatio() float64 { return s.dpr }
func (s *fakeSurface) SetTransform(m [6]float64) { s.transform = m }
func (s *fakeSurface) FillRect(r Rect, c Color) { s.fills = append(s.fills, fillCall{r, c}) }
func (s *fakeSurface) FillText(t string, x, y float64, c Color) {
	s.texts = append(s.texts, textCall{t, x, y})
}
func (s *fakeSurface) Close() error {
	s.closed = true
	return nil
}

// snapshotSurface adds Snapshotter to fakeSurface.
type snapshotSurface struct {
	*fakeSurface
	snaps int
}

func (s *snapshotSurface) Snapshot() image.Image {
	s.snaps++
	return image.NewNRGBA(image.Rect(0, 0, 4, 4))
}

// --- FrameScheduler ---

// fakeScheduler queues frame callbacks until step runs them, like a host's
// animation-frame queue.
type fakeScheduler struct {
	queue    []func()
	requests int
}

func (f *fakeScheduler) RequestFrame(fn func()) {
	f.requests++
	f.queue = append(f.queue, fn)
}

// step runs the callbacks queued before the call. Returns how many ran.
func (f *fakeScheduler) step() int {
	q := f.queue
	f.queue = nil
	for _, fn := range q {
		fn()
	}
	return len(q)
}

// --- InputSource ---

type fakeInput struct {
	handler InputHandler
	unbinds int
}

func (f *fakeInput) Bind(h InputHandler) { f.handler = h }
func (f *fakeInput) Unbind() {
	f.handler = nil
	f.unbinds++
}

// --- Widget ---

type mouseDown struct {
	x, y      float64
	secondary bool
}

type recordingWidget struct {
	WindowBase
	name string
	log  *[]string

	downs     []mouseDown
	ups       int
	scrolls   []float64
	keysDown  []KeyEvent
	keysUp    []KeyEvent
	renders   []bool
	handleAll bool

	onRender  func(s Surface)
	onKeyDown func()
}

func newWidget(name string, log *[]string) *recordingWidget {
	return &recordingWidget{name: name, log: log}
}

func (w *recordingWidget) record(what string) {
	if w.log != nil {
		*w.log = append(*w.log, w.name+":"+what)
	}
}

func (w *recordingWidget) MouseDown(x, y float64, secondary bool) {
	w.downs = append(w.downs, mouseDown{x, y, secondary})
	w.record("down")
}

func (w *recordingWidget) MouseUp() {
	w.ups++
	w.record("up")
}

func (w *recordingWidget) Scroll(x, y, deltaY float64) bool {
	w.scrolls = append(w.scrolls, deltaY)
	w.record("scroll")
	return w.handleAll
}

func (w *recordingWidget) KeyDown(key, code string) bool {
	w.keysDown = append(w.keysDown, KeyEvent{key, code})
	w.record("keydown")
	if w.onKeyDown != nil {
		w.onKeyDown()
	}
	return w.handleAll
}

func (w *recordingWidget) KeyUp(key, code string) bool {
	w.keysUp = append(w.keysUp, KeyEvent{key, code})
	w.record("keyup")
	return w.handleAll
}

func (w *recordingWidget) Render(s Surface, shouldRender bool) {
	w.renders = append(w.renders, shouldRender)
	w.record("render")
	if w.onRender != nil {
		w.onRender(s)
	}
}

// --- EventSink ---

type recordingSink struct {
	events []InputEvent
}

func (r *recordingSink) EmitEvent(ev InputEvent) {
	r.events = append(r.events, ev)
}

// newTestManager builds a manager over a 800x600 fake surface.
func newTestManager() (*Manager, *fakeSurface, *fakeScheduler) {
	surf := newFakeSurface(800, 600)
	sched := &fakeScheduler{}
	return NewManager(surf, sched, nil), surf, sched
}
