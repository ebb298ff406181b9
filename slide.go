package invcanvas

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Slide-in defaults: the window starts this many logical pixels below its
// resting place and settles over the duration.
const (
	slideDistance = 30.0
	slideDuration = 0.25 // seconds
)

// slideAnim moves one widget's y offset toward its resting position.
type slideAnim struct {
	widget  Widget
	baseY   float64
	current float64
	tween   *gween.Tween
}

// SlideInUp animates w upward into place: its y offset starts slideDistance
// below the current value and eases back over a quarter second, advanced once
// per frame. Starting a new slide on a widget replaces any running one.
func (m *Manager) SlideInUp(w Widget) {
	m.SlideInUpWith(w, slideDistance, slideDuration, ease.OutQuad)
}

// SlideInUpWith is SlideInUp with explicit distance, duration in seconds and
// easing function.
func (m *Manager) SlideInUpWith(w Widget, distance float64, duration float32, easeFn ease.TweenFunc) {
	if w == nil {
		return
	}
	_, y := w.Offset()
	for i, s := range m.slides {
		if s.widget == w {
			y = s.baseY
			m.slides = append(m.slides[:i], m.slides[i+1:]...)
			break
		}
	}
	x, _ := w.Offset()
	w.SetOffset(x, y+distance)
	m.slides = append(m.slides, &slideAnim{
		widget:  w,
		baseY:   y,
		current: distance,
		tween:   gween.New(float32(distance), 0, duration, easeFn),
	})
}

// slideOffset returns the extra y offset w currently carries from a slide,
// and records baseY as its new resting position. CenterLayout uses it so
// re-centering does not cancel a running slide.
func (m *Manager) slideOffset(w Widget, baseY float64) float64 {
	for _, s := range m.slides {
		if s.widget == w {
			s.baseY = baseY
			return s.current
		}
	}
	return 0
}

// Sliding reports whether w has a slide animation in progress.
func (m *Manager) Sliding(w Widget) bool {
	for _, s := range m.slides {
		if s.widget == w {
			return true
		}
	}
	return false
}

// updateSlides advances every running slide by dt seconds and drops finished
// ones.
func (m *Manager) updateSlides(dt float64) {
	if len(m.slides) == 0 {
		return
	}
	n := 0
	for _, s := range m.slides {
		off, finished := s.tween.Update(float32(dt))
		x, _ := s.widget.Offset()
		if finished {
			s.widget.SetOffset(x, s.baseY)
			continue
		}
		s.current = float64(off)
		s.widget.SetOffset(x, s.baseY+s.current)
		m.slides[n] = s
		n++
	}
	for i := n; i < len(m.slides); i++ {
		m.slides[i] = nil
	}
	m.slides = m.slides[:n]
}
