package invcanvas

import "time"

// StartRendering marks the loop running and schedules the first frame. If a
// frame is already pending (for example right after StopRendering) no second
// one is queued; the pending frame will keep the loop going.
func (m *Manager) StartRendering() {
	m.rendering = true
	if !m.pending {
		m.schedule()
	}
}

// StopRendering marks the loop stopped. The frame that is already scheduled
// still runs, but it does not reschedule itself.
func (m *Manager) StopRendering() {
	m.rendering = false
}

// IsRendering reports whether the loop is running.
func (m *Manager) IsRendering() bool {
	return m.rendering
}

// FrameCount returns the number of frames executed since the manager was
// created.
func (m *Manager) FrameCount() uint64 {
	return m.frameCount
}

func (m *Manager) schedule() {
	m.pending = true
	m.frames.RequestFrame(m.frame)
}

// frame is the loop body. It runs once per host frame while rendering.
func (m *Manager) frame() {
	m.pending = false
	m.index = 0

	var stats debugStats
	var t0 time.Time
	if m.debug {
		t0 = time.Now()
	}

	if m.testRunner != nil {
		m.testRunner.step(m)
	}
	m.processInjectedInput()
	m.updateSlides(m.frameDelta)

	if m.messageTicks > 0 {
		m.drawMessage()
		stats.overlay = true
		stats.message = m.message
		m.messageTicks--
		stats.ticksLeft = m.messageTicks
		if m.messageTicks == 0 {
			m.message = ""
		}
	} else {
		shouldRender := len(m.children) > 0 || m.forceRender
		for _, child := range m.children {
			child.Render(m.surface, shouldRender)
			m.index++
		}
		stats.childCount = m.index
	}

	m.flushScreenshots()

	if m.debug {
		stats.frameTime = time.Since(t0)
		m.debugLog(stats)
	}
	m.frameCount++

	if m.rendering {
		m.schedule()
	}
}
