package vecmath

// Rect holds four values representing an axis-aligned rectangle
// anchored at its bottom-left corner: x-right, y-up, with non-negative
// width and height.
type Rect[T Float] struct {
	X T
	Y T
	W T
	H T
}

// RectFromPoints constructs the smallest rectangle covering both
// points.
func RectFromPoints[T Float](a, b Vec2[T]) Rect[T] {
	x := min(a.X, b.X)
	y := min(a.Y, b.Y)
	return Rect[T]{X: x, Y: y, W: max(a.X, b.X) - x, H: max(a.Y, b.Y) - y}
}

// Left returns the x-value of the left side.
func (r Rect[T]) Left() T {
	return r.X
}

// Right returns the x-value of the right side.
func (r Rect[T]) Right() T {
	return r.X + r.W
}

// Top returns the y-value of the top side.
func (r Rect[T]) Top() T {
	return r.Y + r.H
}

// Bot returns the y-value of the bottom side.
func (r Rect[T]) Bot() T {
	return r.Y
}

// Center returns the center point.
func (r Rect[T]) Center() Vec2[T] {
	return Vec2[T]{r.X + r.W/2, r.Y + r.H/2}
}

// TopLeft returns the top-left corner.
func (r Rect[T]) TopLeft() Vec2[T] {
	return Vec2[T]{r.Left(), r.Top()}
}

// TopRight returns the top-right corner.
func (r Rect[T]) TopRight() Vec2[T] {
	return Vec2[T]{r.Right(), r.Top()}
}

// BotLeft returns the bottom-left corner.
func (r Rect[T]) BotLeft() Vec2[T] {
	return Vec2[T]{r.Left(), r.Bot()}
}

// BotRight returns the bottom-right corner.
func (r Rect[T]) BotRight() Vec2[T] {
	return Vec2[T]{r.Right(), r.Bot()}
}

// Split4 divides the rectangle into four equal quadrants, ordered
// top-left, top-right, bottom-right, bottom-left.
func (r Rect[T]) Split4() [4]Rect[T] {
	halfW := r.W / 2
	halfH := r.H / 2
	midX := r.X + halfW
	midY := r.Y + halfH
	return [4]Rect[T]{
		{r.X, midY, halfW, halfH},
		{midX, midY, halfW, halfH},
		{midX, r.Y, halfW, halfH},
		{r.X, r.Y, halfW, halfH},
	}
}

// ContainsPoint reports whether the point lies within the rectangle,
// edges included.
func (r Rect[T]) ContainsPoint(pt Vec2[T]) bool {
	return r.Left() <= pt.X && pt.X <= r.Right() && r.Bot() <= pt.Y && pt.Y <= r.Top()
}

// ContainsRect reports whether in lies completely within r.
func (r Rect[T]) ContainsRect(in Rect[T]) bool {
	return r.Left() <= in.Left() && in.Right() <= r.Right() &&
		r.Bot() <= in.Bot() && in.Top() <= r.Top()
}

// Intersects reports whether the rectangles overlap, edge contact
// included.
func (r Rect[T]) Intersects(other Rect[T]) bool {
	return r.Left() <= other.Right() && other.Left() <= r.Right() &&
		r.Bot() <= other.Top() && other.Bot() <= r.Top()
}

// RectCast converts a Rect of one component type to another.
func RectCast[T, U Float](r Rect[U]) Rect[T] {
	return Rect[T]{T(r.X), T(r.Y), T(r.W), T(r.H)}
}
