// Package physics provides axis-aligned rectangle geometry for collision
// detection.
package physics

// Rect is an axis-aligned rectangle in playfield units. X, Y is the top-left
// corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Overlaps reports whether two rectangles intersect. Touching edges count,
// matching the inclusive overlap test the paddles and walls rely on.
func (r Rect) Overlaps(o Rect) bool {
	if r.X > o.Right() || o.X > r.Right() {
		return false
	}
	if r.Y > o.Bottom() || o.Y > r.Bottom() {
		return false
	}
	return true
}

// Clamp restricts v to [lo, hi]. When hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampInt is Clamp for integers.
func ClampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Rescale maps a coordinate proportionally from a span of size from to a span
// of size to. A zero source span returns v unchanged.
func Rescale(v, from, to float64) float64 {
	if from == 0 {
		return v
	}
	return v * to / from
}
