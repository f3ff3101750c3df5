package shadows

import "math/rand"

// BorderBoundaries returns the four edges of a width x height viewport.
func BorderBoundaries(width, height float64) []Boundary {
	return []Boundary{
		NewBoundary(Point{0, 0}, Point{0, height}),
		NewBoundary(Point{0, 0}, Point{width, 0}),
		NewBoundary(Point{0, height}, Point{width, height}),
		NewBoundary(Point{width, 0}, Point{width, height}),
	}
}

// RandomBoundaries returns count walls whose endpoints are drawn
// independently from [0, width] x [0, height].
func RandomBoundaries(rng *rand.Rand, count int, width, height float64) []Boundary {
	walls := make([]Boundary, 0, count)
	for i := 0; i < count; i++ {
		a := Point{randRange(rng, width), randRange(rng, height)}
		b := Point{randRange(rng, width), randRange(rng, height)}
		walls = append(walls, NewBoundary(a, b))
	}
	return walls
}

// GenerateBoundaries builds a fresh scene: the viewport border followed by
// count random walls.
func GenerateBoundaries(rng *rand.Rand, count int, width, height float64) []Boundary {
	walls := BorderBoundaries(width, height)
	return append(walls, RandomBoundaries(rng, count, width, height)...)
}

func randRange(rng *rand.Rand, max float64) float64 {
	return rng.Float64() * max
}
