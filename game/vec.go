package game

// Vec2 represents a 2D vector
type Vec2 struct {
	X float64
	Y float64
}

// Rect is an axis-aligned bounding box with a top-left origin.
// Width and height must be positive.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAround builds a rect of the given size centered on (cx, cy)
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the box midpoint
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
