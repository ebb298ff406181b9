// Package ebitenhost runs an invcanvas.Manager inside an Ebitengine window.
//
// The Host is at once the manager's Surface, its InputSource and its
// FrameScheduler: input is polled in Update, the scheduled frame callback runs
// in Draw, and drawing goes to the Ebitengine screen image.
//
//	host, err := ebitenhost.New(ebitenhost.RunConfig{Title: "Inventory", Width: 800, Height: 600})
//	if err != nil { ... }
//	mgr := invcanvas.NewManager(host, host, host)
//	mgr.AddChild(window)
//	mgr.StartRendering()
//	err = host.Run()
package ebitenhost

import (
	"bytes"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/invcanvas"
)

// defaultFontSize matches the 10px sans-serif a fresh 2D canvas context uses.
const defaultFontSize = 10

// RunConfig holds window and host options.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws the actual FPS/TPS in the top-left corner.
	ShowFPS bool
	// QuitOnEscape ends the game when Escape is pressed and no widget
	// handled it.
	QuitOnEscape bool
	// FontSize is the overlay text size in logical pixels. Zero uses 10.
	FontSize float64
}

// Host adapts Ebitengine to the invcanvas host ports.
type Host struct {
	cfg     RunConfig
	handler invcanvas.InputHandler

	screen    *ebiten.Image
	next      func()
	transform [6]float64

	// Backing store size (device pixels) and outside size (DIPs).
	width, height      int
	outsideW, outsideH int

	face *text.GoTextFace

	input      inputState
	updateFunc func() error
	started    bool
	closed     bool
}

var (
	_ invcanvas.Surface        = (*Host)(nil)
	_ invcanvas.InputSource    = (*Host)(nil)
	_ invcanvas.FrameScheduler = (*Host)(nil)
	_ invcanvas.Snapshotter    = (*Host)(nil)
	_ ebiten.Game              = (*Host)(nil)
)

// New creates a Host with the given configuration and loads the overlay font.
func New(cfg RunConfig) (*Host, error) {
	if cfg.FontSize <= 0 {
		cfg.FontSize = defaultFontSize
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: failed to parse font: %w", err)
	}
	return &Host{
		cfg:       cfg,
		transform: [6]float64{1, 0, 0, 1, 0, 0},
		outsideW:  cfg.Width,
		outsideH:  cfg.Height,
		face:      &text.GoTextFace{Source: source, Size: cfg.FontSize},
	}, nil
}

// SetUpdateFunc sets a callback run every tick after input has been
// dispatched. Returning ebiten.Termination (or any error) ends the game.
func (h *Host) SetUpdateFunc(fn func() error) {
	h.updateFunc = fn
}

// Run opens the window and blocks until the game ends.
func (h *Host) Run() error {
	ebiten.SetWindowTitle(h.cfg.Title)
	if h.cfg.Width > 0 && h.cfg.Height > 0 {
		ebiten.SetWindowSize(h.cfg.Width, h.cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// A canvas keeps its pixels until something draws over them or it is
	// resized; the overlay banner relies on that.
	ebiten.SetScreenClearedEveryFrame(false)
	return ebiten.RunGame(h)
}

// --- ebiten.Game ---

// Update polls input and forwards it to the bound handler.
func (h *Host) Update() error {
	if h.closed {
		return ebiten.Termination
	}
	if h.handler != nil {
		if h.pollInput() {
			return ebiten.Termination
		}
	}
	if h.updateFunc != nil {
		return h.updateFunc()
	}
	return nil
}

// Draw runs the pending frame callback, if any, against screen.
func (h *Host) Draw(screen *ebiten.Image) {
	h.screen = screen
	if fn := h.next; fn != nil {
		h.next = nil
		fn()
	}
	if h.cfg.ShowFPS {
		drawFPS(screen)
	}
}

// Layout reports the backing store size. Until the manager resizes the
// surface it follows the window at device resolution.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.started = true
	h.outsideW, h.outsideH = outsideWidth, outsideHeight
	if h.width == 0 || h.height == 0 {
		dpr := h.DevicePixelRatio()
		h.width = int(float64(outsideWidth) * dpr)
		h.height = int(float64(outsideHeight) * dpr)
	}
	return h.width, h.height
}

// --- invcanvas.FrameScheduler ---

// RequestFrame queues fn to run during the next Draw. A second request before
// that Draw replaces the first.
func (h *Host) RequestFrame(fn func()) {
	h.next = fn
}

// --- invcanvas.InputSource ---

// Bind starts delivering polled input to handler.
func (h *Host) Bind(handler invcanvas.InputHandler) {
	h.handler = handler
}

// Unbind stops delivering input.
func (h *Host) Unbind() {
	h.handler = nil
}

// Close ends the game at the next Update.
func (h *Host) Close() error {
	h.closed = true
	h.handler = nil
	h.next = nil
	return nil
}

// --- invcanvas.Surface ---

// Size returns the backing store size in device pixels.
func (h *Host) Size() (int, int) {
	return h.width, h.height
}

// Resize sets the backing store size. Like assigning a canvas's width, it
// also clears the current contents.
func (h *Host) Resize(w, hh int) {
	if w <= 0 || hh <= 0 {
		return
	}
	h.width, h.height = w, hh
	if h.screen != nil {
		h.screen.Clear()
	}
}

// ClientRect returns the screen rectangle in cursor coordinates. Ebitengine
// reports the cursor in layout (backing) pixels, so the rect spans exactly the
// backing store.
func (h *Host) ClientRect() invcanvas.Rect {
	return invcanvas.Rect{Width: float64(h.width), Height: float64(h.height)}
}

// Viewport returns the window's inner size in device-independent pixels.
func (h *Host) Viewport() (float64, float64) {
	return float64(h.outsideW), float64(h.outsideH)
}

// DevicePixelRatio returns the current monitor's device scale factor, or 1
// before the game loop has started.
func (h *Host) DevicePixelRatio() float64 {
	if !h.started {
		return 1
	}
	if mon := ebiten.Monitor(); mon != nil {
		if f := mon.DeviceScaleFactor(); f > 0 {
			return f
		}
	}
	return 1
}

// SetTransform sets the matrix applied to all subsequent drawing.
func (h *Host) SetTransform(m [6]float64) {
	h.transform = m
}

// FillRect fills r, in logical coordinates, with c.
func (h *Host) FillRect(r invcanvas.Rect, c invcanvas.Color) {
	if h.screen == nil {
		return
	}
	m := h.transform
	x := m[0]*r.X + m[2]*r.Y + m[4]
	y := m[1]*r.X + m[3]*r.Y + m[5]
	vector.DrawFilledRect(h.screen,
		float32(x), float32(y),
		float32(r.Width*m[0]), float32(r.Height*m[3]),
		c.RGBA(), false)
}

// FillText draws s with its baseline starting at (x, y) in logical
// coordinates.
func (h *Host) FillText(s string, x, y float64, c invcanvas.Color) {
	if h.screen == nil || s == "" {
		return
	}
	ascent := h.face.Metrics().HAscent
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-ascent)
	op.GeoM.Concat(geoM(h.transform))
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.Draw(h.screen, s, h.face, op)
}

// Snapshot reads back the current screen as straight-alpha NRGBA.
func (h *Host) Snapshot() image.Image {
	if h.screen == nil {
		return nil
	}
	bounds := h.screen.Bounds()
	w, hh := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*hh)
	h.screen.ReadPixels(pixels)

	// Convert premultiplied RGBA to straight-alpha NRGBA.
	img := image.NewNRGBA(image.Rect(0, 0, w, hh))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// geoM converts an [a, b, c, d, tx, ty] matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
