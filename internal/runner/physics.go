package runner

// Box is an axis-aligned bounding box in field coordinates. The simulation
// works in float cell units; rendering rounds to whole cells.
type Box struct {
	X, Y float64 // top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects reports overlap using strict inequalities on all four edges:
// boxes that merely touch do not overlap. Symmetric by construction.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Expand returns a copy grown by m on every side.
func (b Box) Expand(m float64) Box {
	return Box{X: b.X - m, Y: b.Y - m, W: b.W + 2*m, H: b.H + 2*m}
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}
