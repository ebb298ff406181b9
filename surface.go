package invcanvas

import "image"

// Surface is the drawing target the manager owns. Hosts implement it on top of
// a real display (see package ebitenhost); tests use an in-memory fake.
//
// Drawing calls are expressed in logical coordinates and are mapped through
// the transform last passed to SetTransform.
type Surface interface {
	// Size returns the backing store size in device pixels.
	Size() (w, h int)
	// Resize changes the backing store size in device pixels.
	Resize(w, h int)
	// ClientRect returns where the surface is displayed, in viewport
	// coordinates. Pointer events arrive in the same space.
	ClientRect() Rect
	// Viewport returns the size of the host viewport (window inner size) in
	// device-independent pixels.
	Viewport() (w, h float64)
	// DevicePixelRatio returns device pixels per device-independent pixel.
	DevicePixelRatio() float64

	SetTransform(m [6]float64)
	FillRect(r Rect, c Color)
	FillText(s string, x, y float64, c Color)
}

// Snapshotter is implemented by surfaces that can read back the last frame.
// Manager.Screenshot needs it; other surfaces silently skip screenshots.
type Snapshotter interface {
	Snapshot() image.Image
}

// FrameScheduler runs a callback once, at the host's next frame. At most one
// callback is queued at a time by the manager.
type FrameScheduler interface {
	RequestFrame(fn func())
}
