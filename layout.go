package invcanvas

// backdropColor dims whatever is behind the inventory windows.
var backdropColor = Color{R: 0, G: 0, B: 0, A: 0.5}

// Scale returns the logical scale factor last passed to SetScale.
func (m *Manager) Scale() float64 {
	return m.scale
}

// deviceScale is the logical scale multiplied by the device pixel ratio.
func (m *Manager) deviceScale() float64 {
	dpr := m.surface.DevicePixelRatio()
	if dpr <= 0 {
		dpr = 1
	}
	return m.scale * dpr
}

// SetScale sets the logical scale factor. The surface transform is reset to
// a pure scale of scale × devicePixelRatio and every child receives the same
// device scale. Non-positive values are ignored.
func (m *Manager) SetScale(scale float64) {
	if scale <= 0 {
		return
	}
	m.scale = scale
	ds := m.deviceScale()
	m.transform = scaleTransform(ds)
	m.surface.SetTransform(m.transform)

	for _, child := range m.children {
		child.SetScale(ds)
	}
}

// CenterLayout resizes the surface to fill the host viewport at device
// resolution and centers every child on it. Each child's offset is derived
// from its own declared layout size and device scale, so the primary window
// ends up in the middle of the surface.
func (m *Manager) CenterLayout() {
	vw, vh := m.surface.Viewport()
	dpr := m.surface.DevicePixelRatio()
	if dpr <= 0 {
		dpr = 1
	}
	m.surface.Resize(int(vw*dpr), int(vh*dpr))
	sw, sh := m.surface.Size()

	for _, child := range m.children {
		w, h := child.LayoutSize()
		scale := child.Scale()
		if scale == 0 {
			continue
		}
		startX := (float64(sw) - w*scale) / 2
		startY := (float64(sh) - h*scale) / 2
		oy := startY / scale
		child.SetOffset(startX/scale, oy+m.slideOffset(child, oy))
	}
}

// Clear prepares the surface for a new frame: it re-centers the layout,
// re-applies the current scale and dims the whole surface. Widgets call it at
// the top of Render; only the first widget rendered in a frame has any
// effect, so later windows draw on top of earlier ones.
func (m *Manager) Clear() {
	if m.index != 0 {
		return
	}
	m.CenterLayout()
	m.SetScale(m.scale)
	sw, sh := m.surface.Size()
	// Fill in logical units so the rect covers the device surface exactly.
	ds := m.deviceScale()
	m.surface.FillRect(Rect{Width: float64(sw) / ds, Height: float64(sh) / ds}, backdropColor)
}

// FrameIndex returns how many children have been rendered so far in the
// current frame.
func (m *Manager) FrameIndex() int {
	return m.index
}
