package invcanvas

// Banner geometry in logical units.
const (
	bannerY      = 8
	bannerHeight = 20
	bannerTextX  = 12
	bannerTextY  = 20 // baseline
)

// bannerColor is #20202020: a faint grey strip.
var bannerColor = Color{R: 0x20 / 255.0, G: 0x20 / 255.0, B: 0x20 / 255.0, A: 0x20 / 255.0}

// DisplayBlockingMessage shows message in a banner for the next ticks frames.
// While it is up, children are not rendered. A new call replaces any message
// still showing, so ticks <= 0 dismisses the current message and shows
// nothing. Pass DefaultMessageTicks for the usual duration.
func (m *Manager) DisplayBlockingMessage(message string, ticks int) {
	if ticks <= 0 {
		m.message, m.messageTicks = "", 0
		return
	}
	m.message = message
	m.messageTicks = ticks
}

// Message returns the overlay text and the frames it has left. Both are zero
// when no message is showing.
func (m *Manager) Message() (text string, ticks int) {
	return m.message, m.messageTicks
}

// drawMessage paints the banner across the full surface width.
func (m *Manager) drawMessage() {
	sw, _ := m.surface.Size()
	m.surface.FillRect(Rect{X: 0, Y: bannerY, Width: float64(sw), Height: bannerHeight}, bannerColor)
	m.surface.FillText(m.message, bannerTextX, bannerTextY, ColorWhite)
}
