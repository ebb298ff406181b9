package invcanvas

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing. Only populated when debug mode is on.
type debugStats struct {
	frameTime  time.Duration
	childCount int
	overlay    bool
	message    string
	ticksLeft  int
}

// debugLog prints frame stats to stderr.
func (m *Manager) debugLog(stats debugStats) {
	if !m.debug {
		return
	}
	if stats.overlay {
		_, _ = fmt.Fprintf(os.Stderr,
			"[invcanvas] frame %d: overlay %q (%d ticks left) | %v\n",
			m.frameCount, stats.message, stats.ticksLeft, stats.frameTime)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[invcanvas] frame %d: children: %d | injected pending: %d | %v\n",
		m.frameCount, stats.childCount, len(m.injectQueue), stats.frameTime)
}

// debugCheckChildCount warns on stderr if the manager holds more children
// than an inventory screen plausibly needs.
const debugMaxChildCount = 32

func debugCheckChildCount(m *Manager) {
	if len(m.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[invcanvas] warning: %d children (threshold %d)\n",
			len(m.children), debugMaxChildCount)
	}
}
