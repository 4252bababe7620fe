// Package vecmath provides 2D/3D vector algebra and axis-aligned
// rectangles, generic over the floating-point type.
//
// All types are plain value types with no invariants of their own;
// operations return new values and never mutate their receivers.
// Rectangles are treated as canonically oriented x-right, y-up with
// non-negative width and height.
package vecmath

import "math"

// Float is the constraint for vector component types.
type Float interface {
	~float32 | ~float64
}

// Vec2 holds two values representing a 2D vector.
type Vec2[T Float] struct {
	X T
	Y T
}

// Add returns the vector sum a + b.
func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X - b.X, a.Y - b.Y}
}

// Scale returns the vector scaled by k.
func (a Vec2[T]) Scale(k T) Vec2[T] {
	return Vec2[T]{a.X * k, a.Y * k}
}

// Div returns the vector divided by k.
func (a Vec2[T]) Div(k T) Vec2[T] {
	return Vec2[T]{a.X / k, a.Y / k}
}

// Neg returns the negated vector.
func (a Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-a.X, -a.Y}
}

// Dot returns the dot product of a and b.
func (a Vec2[T]) Dot(b Vec2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the scalar (z-component) cross product of a and b.
func (a Vec2[T]) Cross(b Vec2[T]) T {
	return a.X*b.Y - a.Y*b.X
}

// Magnitude returns the length of the vector.
func (a Vec2[T]) Magnitude() T {
	return T(math.Sqrt(float64(a.Magnitude2())))
}

// Magnitude2 returns the squared length of the vector.
func (a Vec2[T]) Magnitude2() T {
	return a.Dot(a)
}

// Normalize returns a unit vector in the direction of a. The zero
// vector normalizes to itself.
func (a Vec2[T]) Normalize() Vec2[T] {
	if a.X == 0 && a.Y == 0 {
		return a
	}
	return a.Div(a.Magnitude())
}

// Distance returns the distance between the points a and b.
func (a Vec2[T]) Distance(b Vec2[T]) T {
	return a.Sub(b).Magnitude()
}

// Distance2 returns the squared distance between the points a and b.
func (a Vec2[T]) Distance2(b Vec2[T]) T {
	return a.Sub(b).Magnitude2()
}

// Vec2Cast converts a Vec2 of one component type to another.
func Vec2Cast[T, U Float](v Vec2[U]) Vec2[T] {
	return Vec2[T]{T(v.X), T(v.Y)}
}
