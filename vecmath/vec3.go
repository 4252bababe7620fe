package vecmath

import "math"

// Vec3 holds three values representing a 3D vector.
type Vec3[T Float] struct {
	X T
	Y T
	Z T
}

// Add returns the vector sum a + b.
func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the vector scaled by k.
func (a Vec3[T]) Scale(k T) Vec3[T] {
	return Vec3[T]{a.X * k, a.Y * k, a.Z * k}
}

// Div returns the vector divided by k.
func (a Vec3[T]) Div(k T) Vec3[T] {
	return Vec3[T]{a.X / k, a.Y / k, a.Z / k}
}

// Neg returns the negated vector.
func (a Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-a.X, -a.Y, -a.Z}
}

// Dot returns the dot product of a and b.
func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of a and b.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Magnitude returns the length of the vector.
func (a Vec3[T]) Magnitude() T {
	return T(math.Sqrt(float64(a.Magnitude2())))
}

// Magnitude2 returns the squared length of the vector.
func (a Vec3[T]) Magnitude2() T {
	return a.Dot(a)
}

// Normalize returns a unit vector in the direction of a. The zero
// vector normalizes to itself.
func (a Vec3[T]) Normalize() Vec3[T] {
	if a.X == 0 && a.Y == 0 && a.Z == 0 {
		return a
	}
	return a.Div(a.Magnitude())
}

// Distance returns the distance between the points a and b.
func (a Vec3[T]) Distance(b Vec3[T]) T {
	return a.Sub(b).Magnitude()
}

// Distance2 returns the squared distance between the points a and b.
func (a Vec3[T]) Distance2(b Vec3[T]) T {
	return a.Sub(b).Magnitude2()
}

// Vec3Cast converts a Vec3 of one component type to another.
func Vec3Cast[T, U Float](v Vec3[U]) Vec3[T] {
	return Vec3[T]{T(v.X), T(v.Y), T(v.Z)}
}
