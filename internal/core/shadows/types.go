package shadows

import "github.com/go-gl/mathgl/mgl64"

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// Vec2 returns the point as a mathgl vector.
func (p Point) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

// PointFromVec2 converts a mathgl vector back to a Point.
func PointFromVec2(v mgl64.Vec2) Point {
	return Point{X: v.X(), Y: v.Y()}
}

// Boundary is a wall segment that rays can hit. The A->B direction is kept
// as given; Ray.Cast parametrizes along it.
type Boundary struct {
	A, B Point
}

// NewBoundary creates a boundary from a to b.
func NewBoundary(a, b Point) Boundary {
	return Boundary{A: a, B: b}
}

// Ray is a half-line starting at Position and heading along Direction.
type Ray struct {
	Position  Point
	Direction Point
}

// NewRay creates a ray from an origin and a direction.
func NewRay(position, direction Point) Ray {
	return Ray{Position: position, Direction: direction}
}
