// Package lighting casts a fan of rays from a point light and draws the
// lit area as overlapping translucent strokes.
package lighting

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/raycast/internal/core/shadows"
	"chosenoffset.com/raycast/internal/render"
)

const (
	// DefaultRayCount samples the full circle every 0.1 degrees.
	DefaultRayCount = 3600

	// RayWidth is the stroke width of a single ray.
	RayWidth = 7
)

// RayColor is white at ~2% opacity. The glow comes from thousands of these
// overlapping.
var RayColor = color.NRGBA{R: 255, G: 255, B: 255, A: 5}

// Hit is the nearest intersection for one ray.
type Hit struct {
	Point shadows.Point
	Found bool
}

// Particle is the light source. It is rebuilt every frame at the cursor.
type Particle struct {
	Position shadows.Point
	Rays     []shadows.Ray

	rayCount int
}

// NewParticle creates a light at pos with no rays yet. A non-positive
// rayCount falls back to DefaultRayCount.
func NewParticle(pos shadows.Point, rayCount int) *Particle {
	if rayCount <= 0 {
		rayCount = DefaultRayCount
	}
	return &Particle{
		Position: pos,
		rayCount: rayCount,
	}
}

// SetRays fills the ray list with rayCount rays evenly spaced over
// [0, 360) degrees, all starting at the particle position.
func (p *Particle) SetRays() {
	step := 360.0 / float64(p.rayCount)

	p.Rays = make([]shadows.Ray, 0, p.rayCount)
	for i := 0; i < p.rayCount; i++ {
		angle := mgl64.DegToRad(float64(i) * step)
		p.Rays = append(p.Rays, shadows.NewRay(
			p.Position,
			shadows.Point{X: math.Cos(angle), Y: math.Sin(angle)},
		))
	}
}

// Cast finds the nearest wall hit for every ray, in ray order.
// It does not draw anything.
func (p *Particle) Cast(walls []shadows.Boundary) []Hit {
	hits := make([]Hit, len(p.Rays))
	for i, ray := range p.Rays {
		hits[i].Point, hits[i].Found = ray.Nearest(p.Position, walls)
	}
	return hits
}

// Draw strokes a line from the particle to every found hit.
func (p *Particle) Draw(r render.Renderer, dst render.Image, hits []Hit) {
	x0, y0 := float32(p.Position.X), float32(p.Position.Y)
	for _, hit := range hits {
		if !hit.Found {
			continue
		}
		r.StrokeLine(dst, x0, y0, float32(hit.Point.X), float32(hit.Point.Y), RayWidth, RayColor)
	}
}

// Update rebuilds the rays, draws the lit area and then outlines every
// wall on top of it.
func (p *Particle) Update(r render.Renderer, dst render.Image, walls []shadows.Boundary) {
	p.SetRays()
	p.Draw(r, dst, p.Cast(walls))

	for _, wall := range walls {
		wall.Show(r, dst)
	}
}
