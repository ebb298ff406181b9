package invcanvas

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// scaleTransform returns a uniform scale matrix with no translation.
func scaleTransform(s float64) [6]float64 {
	return [6]float64{s, 0, 0, s, 0, 0}
}

// invertAffine computes the inverse of a 2D affine matrix.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// clientToSurface maps a viewport-space point to backing-store pixels of a
// surface displayed at client. The surface may be shown larger or smaller
// than its backing size; a degenerate client rect maps everything to 0.
func clientToSurface(client Rect, surfaceW, surfaceH int, cx, cy float64) (float64, float64) {
	var x, y float64
	if client.Width != 0 {
		x = (cx - client.X) / client.Width * float64(surfaceW)
	}
	if client.Height != 0 {
		y = (cy - client.Y) / client.Height * float64(surfaceH)
	}
	return x, y
}

// ToLogical converts a client (viewport) position to logical coordinates:
// first to raw surface pixels, then through the inverse of the active
// transform. Computed fresh on every call since the scale may change between
// frames.
func (m *Manager) ToLogical(clientX, clientY float64) (x, y float64) {
	w, h := m.surface.Size()
	sx, sy := clientToSurface(m.surface.ClientRect(), w, h, clientX, clientY)
	return transformPoint(invertAffine(m.transform), sx, sy)
}

// ToDevice converts logical coordinates to surface pixels using the active
// transform. It is the inverse of the second step of ToLogical.
func (m *Manager) ToDevice(x, y float64) (sx, sy float64) {
	return transformPoint(m.transform, x, y)
}

// Transform returns the active rendering transform as [a, b, c, d, tx, ty].
func (m *Manager) Transform() [6]float64 {
	return m.transform
}
