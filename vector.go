package navmesh

import "github.com/arl/math32"

// Real is the set of scalar types a Vector2 can be built upon: 32-bit
// integer grid coordinates and 32-bit float world coordinates.
type Real interface {
	~int32 | ~float32
}

// Vector2 is a 2D vector or point, generic over its component type.
//
// Vector2[float32] is the currency of the mesh and agent APIs; Vector2[int32]
// is kept for callers working in integer grid space (e.g. a mesh generator
// rasterizing on a pixel grid) before converting to world coordinates.
type Vector2[T Real] struct {
	X, Y T
}

// Vec2i is a point in integer grid space.
type Vec2i = Vector2[int32]

// Vec2f is a point or vector in world space.
type Vec2f = Vector2[float32]

// Add returns v+rhs.
func (v Vector2[T]) Add(rhs Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X + rhs.X, v.Y + rhs.Y}
}

// Sub returns v-rhs.
func (v Vector2[T]) Sub(rhs Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X - rhs.X, v.Y - rhs.Y}
}

// Scale returns v scaled by s.
func (v Vector2[T]) Scale(s T) Vector2[T] {
	return Vector2[T]{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and rhs.
func (v Vector2[T]) Dot(rhs Vector2[T]) T {
	return v.X*rhs.X + v.Y*rhs.Y
}

// LengthSquared returns the squared Euclidean length of v.
func (v Vector2[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean length of v.
func (v Vector2[T]) Length() float32 {
	return math32.Sqrt(float32(v.LengthSquared()))
}

// Normalized returns v scaled to unit length. The result is undefined for a
// zero-length v, as in the source this is ported from.
func (v Vector2[T]) Normalized() Vec2f {
	l := v.Length()
	return Vec2f{float32(v.X) / l, float32(v.Y) / l}
}

// PerpCW returns v rotated 90 degrees clockwise.
func (v Vector2[T]) PerpCW() Vector2[T] {
	return Vector2[T]{v.Y, -v.X}
}

// PerpCCW returns v rotated 90 degrees counter-clockwise.
func (v Vector2[T]) PerpCCW() Vector2[T] {
	return Vector2[T]{-v.Y, v.X}
}

// Equal reports whether v and rhs have identical components.
func (v Vector2[T]) Equal(rhs Vector2[T]) bool {
	return v.X == rhs.X && v.Y == rhs.Y
}

// Circle is a circle defined by centre and radius, generic over the same
// scalar types as Vector2.
type Circle[T Real] struct {
	Pos    Vector2[T]
	Radius T
}

// FloatCircle is a circle in world space.
type FloatCircle = Circle[float32]
