package invcanvas

// Widget is a child of the Manager: typically an inventory window. The
// manager forwards input in logical coordinates and asks each widget to render
// once per frame. Scroll, KeyDown and KeyUp report whether the widget handled
// the event so the host can suppress its default behavior.
type Widget interface {
	MouseDown(x, y float64, secondary bool)
	MouseUp()
	Scroll(x, y, deltaY float64) bool
	KeyDown(key, code string) bool
	KeyUp(key, code string) bool
	Render(s Surface, shouldRender bool)

	// Scale is the device scale (manager scale × device pixel ratio) the
	// widget draws at.
	Scale() float64
	SetScale(scale float64)

	// Offset is the widget's top-left corner in logical coordinates.
	Offset() (x, y float64)
	SetOffset(x, y float64)

	// LayoutSize returns the declared pixel dimensions of the widget's layout.
	LayoutSize() (w, h float64)
}

// WindowBase carries the scale and offset bookkeeping every Widget needs.
// Embed it and implement the input and render methods.
type WindowBase struct {
	// XOff and YOff position the window in logical coordinates.
	XOff, YOff float64
	// Width and Height are the layout dimensions in logical pixels.
	Width, Height float64

	scale float64
}

// Scale returns the device scale last assigned by the manager, or 1.
func (w *WindowBase) Scale() float64 {
	if w.scale == 0 {
		return 1
	}
	return w.scale
}

// SetScale records the device scale.
func (w *WindowBase) SetScale(scale float64) { w.scale = scale }

// Offset returns the window's top-left corner.
func (w *WindowBase) Offset() (x, y float64) { return w.XOff, w.YOff }

// SetOffset moves the window.
func (w *WindowBase) SetOffset(x, y float64) { w.XOff, w.YOff = x, y }

// LayoutSize returns Width and Height.
func (w *WindowBase) LayoutSize() (float64, float64) { return w.Width, w.Height }

// Bounds returns the window rectangle in logical coordinates.
func (w *WindowBase) Bounds() Rect {
	return Rect{X: w.XOff, Y: w.YOff, Width: w.Width, Height: w.Height}
}
