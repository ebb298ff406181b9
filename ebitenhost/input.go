package ebitenhost

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/invcanvas"
)

// wheelPixelsPerNotch converts Ebitengine wheel notches to the pixel deltas
// widgets expect (positive scrolls down).
const wheelPixelsPerNotch = 100

// inputState holds scratch buffers reused across ticks.
type inputState struct {
	lastX, lastY int
	seen         bool
	keys         []ebiten.Key
}

var mouseButtons = [...]struct {
	eb  ebiten.MouseButton
	btn invcanvas.MouseButton
}{
	{ebiten.MouseButtonLeft, invcanvas.MouseButtonLeft},
	{ebiten.MouseButtonRight, invcanvas.MouseButtonRight},
	{ebiten.MouseButtonMiddle, invcanvas.MouseButtonMiddle},
}

// pollInput reads this tick's mouse, wheel and keyboard state and forwards
// it to the bound handler. Returns true if the host should quit.
func (h *Host) pollInput() bool {
	mx, my := ebiten.CursorPosition()
	cx, cy := float64(mx), float64(my)

	if !h.input.seen || mx != h.input.lastX || my != h.input.lastY {
		h.input.seen = true
		h.input.lastX, h.input.lastY = mx, my
		h.handler.PointerMove(invcanvas.PointerEvent{ClientX: cx, ClientY: cy})
	}

	for _, b := range mouseButtons {
		if h.handler == nil {
			return false
		}
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			h.handler.PointerDown(invcanvas.PointerEvent{ClientX: cx, ClientY: cy, Button: b.btn})
		}
		if h.handler == nil {
			return false
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			h.handler.PointerUp(invcanvas.PointerEvent{ClientX: cx, ClientY: cy, Button: b.btn})
		}
	}

	if h.handler == nil {
		return false
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		h.handler.Wheel(invcanvas.WheelEvent{ClientX: cx, ClientY: cy, DeltaY: -wy * wheelPixelsPerNotch})
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	quit := false

	h.input.keys = inpututil.AppendJustPressedKeys(h.input.keys[:0])
	for _, k := range h.input.keys {
		if h.handler == nil {
			return quit
		}
		handled := h.handler.KeyDown(invcanvas.KeyEvent{Key: keyName(k, shift), Code: keyCode(k)})
		if !handled && k == ebiten.KeyEscape && h.cfg.QuitOnEscape {
			quit = true
		}
	}
	h.input.keys = inpututil.AppendJustReleasedKeys(h.input.keys[:0])
	for _, k := range h.input.keys {
		if h.handler == nil {
			return quit
		}
		h.handler.KeyUp(invcanvas.KeyEvent{Key: keyName(k, shift), Code: keyCode(k)})
	}
	return quit
}

// keyCode returns the physical key code, using the DOM KeyboardEvent.code
// spelling: letters are "KeyA".."KeyZ", everything else keeps Ebitengine's
// name ("Digit1", "Escape", "ArrowUp", "ShiftLeft", ...).
func keyCode(k ebiten.Key) string {
	name := k.String()
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		return "Key" + name
	}
	return name
}

// keyName returns the key identity: the character produced for letters,
// digits and space, or the key's name otherwise.
func keyName(k ebiten.Key, shift bool) string {
	name := k.String()
	switch {
	case len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z':
		if shift {
			return name
		}
		return strings.ToLower(name)
	case strings.HasPrefix(name, "Digit") && len(name) == len("Digit0"):
		return name[len("Digit"):]
	case k == ebiten.KeySpace:
		return " "
	case k == ebiten.KeyShiftLeft || k == ebiten.KeyShiftRight:
		return "Shift"
	case k == ebiten.KeyControlLeft || k == ebiten.KeyControlRight:
		return "Control"
	case k == ebiten.KeyAltLeft || k == ebiten.KeyAltRight:
		return "Alt"
	case k == ebiten.KeyMetaLeft || k == ebiten.KeyMetaRight:
		return "Meta"
	}
	return name
}
