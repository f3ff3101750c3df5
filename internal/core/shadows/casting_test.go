package shadows

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastHitsWallAhead(t *testing.T) {
	ray := NewRay(Point{0, 0}, Point{1, 0})
	wall := NewBoundary(Point{5, -5}, Point{5, 5})

	p, ok := ray.Cast(wall)
	require.True(t, ok)
	assert.Equal(t, Point{5, 0}, p)
}

func TestCastIgnoresWallBehind(t *testing.T) {
	ray := NewRay(Point{0, 0}, Point{1, 0})
	wall := NewBoundary(Point{-5, -5}, Point{-5, 5})

	_, ok := ray.Cast(wall)
	assert.False(t, ok)
}

func TestCastParallel(t *testing.T) {
	tests := []struct {
		name string
		ray  Ray
		wall Boundary
	}{
		{"offset", NewRay(Point{0, 0}, Point{1, 0}), NewBoundary(Point{0, 5}, Point{10, 5})},
		{"coincident", NewRay(Point{0, 5}, Point{1, 0}), NewBoundary(Point{0, 5}, Point{10, 5})},
		{"reversed wall", NewRay(Point{3, 3}, Point{0, -1}), NewBoundary(Point{7, 9}, Point{7, -9})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.ray.Cast(tt.wall)
			assert.False(t, ok)
		})
	}
}

func TestCastExcludesEndpoints(t *testing.T) {
	ray := NewRay(Point{0, 0}, Point{1, 0})

	_, ok := ray.Cast(NewBoundary(Point{5, 0}, Point{5, 10}))
	assert.False(t, ok, "hit exactly at A")

	_, ok = ray.Cast(NewBoundary(Point{5, -10}, Point{5, 0}))
	assert.False(t, ok, "hit exactly at B")
}

func TestCastMissesShortWall(t *testing.T) {
	ray := NewRay(Point{0, 0}, Point{1, 0})
	_, ok := ray.Cast(NewBoundary(Point{5, 1}, Point{5, 10}))
	assert.False(t, ok)
}

func TestCastDiagonal(t *testing.T) {
	ray := NewRay(Point{0, 0}, Point{math.Sqrt2 / 2, math.Sqrt2 / 2})
	wall := NewBoundary(Point{0, 10}, Point{10, 0})

	p, ok := ray.Cast(wall)
	require.True(t, ok)
	assert.InDelta(t, 5.0, p.X, 1e-9)
	assert.InDelta(t, 5.0, p.Y, 1e-9)
}

// Any returned point must lie on the wall's line strictly between A and B.
func TestCastPointLiesOnWall(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	hits := 0

	for i := 0; i < 2000; i++ {
		origin := Point{rng.Float64() * 100, rng.Float64() * 100}
		angle := rng.Float64() * 2 * math.Pi
		ray := NewRay(origin, Point{math.Cos(angle), math.Sin(angle)})
		wall := NewBoundary(
			Point{rng.Float64() * 100, rng.Float64() * 100},
			Point{rng.Float64() * 100, rng.Float64() * 100},
		)

		p, ok := ray.Cast(wall)
		if !ok {
			continue
		}
		hits++

		ab := Point{wall.B.X - wall.A.X, wall.B.Y - wall.A.Y}
		ap := Point{p.X - wall.A.X, p.Y - wall.A.Y}
		cross := ab.X*ap.Y - ab.Y*ap.X
		length := Distance(wall.A, wall.B)
		assert.InDelta(t, 0, cross/length, 1e-6, "point off the wall line")

		param := (ap.X*ab.X + ap.Y*ab.Y) / (length * length)
		assert.Greater(t, param, 0.0)
		assert.Less(t, param, 1.0)

		// The hit is ahead of the ray.
		ahead := (p.X-origin.X)*ray.Direction.X + (p.Y-origin.Y)*ray.Direction.Y
		assert.GreaterOrEqual(t, ahead, 0.0)
	}

	require.NotZero(t, hits, "random scenes should produce some hits")
}

func TestCastIsPure(t *testing.T) {
	ray := NewRay(Point{12, 7}, Point{0.6, 0.8})
	wall := NewBoundary(Point{0, 40}, Point{60, 20})

	p1, ok1 := ray.Cast(wall)
	p2, ok2 := ray.Cast(wall)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, NewRay(Point{12, 7}, Point{0.6, 0.8}), ray)
}

func TestNearestPicksClosestWall(t *testing.T) {
	origin := Point{0, 0}
	ray := NewRay(origin, Point{1, 0})
	near := NewBoundary(Point{5, -5}, Point{5, 5})
	far := NewBoundary(Point{10, -5}, Point{10, 5})
	behind := NewBoundary(Point{-2, -5}, Point{-2, 5})

	for _, walls := range [][]Boundary{
		{near, far, behind},
		{far, behind, near},
	} {
		p, ok := ray.Nearest(origin, walls)
		require.True(t, ok)
		assert.Equal(t, Point{5, 0}, p)
	}
}

func TestNearestNoWalls(t *testing.T) {
	ray := NewRay(Point{0, 0}, Point{1, 0})

	_, ok := ray.Nearest(ray.Position, nil)
	assert.False(t, ok)

	_, ok = ray.Nearest(ray.Position, []Boundary{NewBoundary(Point{-1, -1}, Point{-1, 1})})
	assert.False(t, ok)
}
