package game

// Goal results returned by GoalContact
const (
	// GoalRight means the right player scored (ball left through the left edge)
	GoalRight = 1

	// GoalLeft means the left player scored (ball left through the right edge)
	GoalLeft = -1

	// GoalNone means the ball is still in play
	GoalNone = 0
)

// BoxesOverlap reports whether two axis-aligned boxes intersect
func BoxesOverlap(a, b Rect) bool {
	return !(a.Right() < b.Left() ||
		a.Left() > b.Right() ||
		a.Bottom() < b.Top() ||
		a.Top() > b.Bottom())
}

// WallContact reports whether a box touches the top or bottom wall
func WallContact(box Rect, windowHeight float64) bool {
	return box.Top() <= 0 || box.Bottom() >= windowHeight
}

// GoalContact reports whether a box has reached a goal edge. Boundary
// contact counts: a box with Left() == 0 or Right() == windowWidth has
// scored. Returns GoalNone for anything strictly inside.
func GoalContact(box Rect, windowWidth float64) int {
	if box.Left() <= 0 {
		return GoalRight
	}
	if box.Right() >= windowWidth {
		return GoalLeft
	}
	return GoalNone
}
