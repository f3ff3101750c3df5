package shadows

// Cast returns the point where the ray hits the boundary.
//
// The boundary is parametrized by t (0 at A, 1 at B) and the ray by u.
// A hit needs 0 < t < 1 and u > 0, so segment endpoints and points at or
// behind the origin never count. Parallel lines are detected with an exact
// zero denominator; near-parallel rays are solved as-is.
func (r Ray) Cast(wall Boundary) (Point, bool) {
	a, b := wall.A, wall.B
	pos, dir := r.Position, r.Direction

	denominator := (a.X-b.X)*dir.Y - (a.Y-b.Y)*dir.X
	if denominator == 0 {
		return Point{}, false
	}

	t := ((a.X-pos.X)*dir.Y - (a.Y-pos.Y)*dir.X) / denominator
	// u grows in the direction of travel.
	u := ((a.X-b.X)*(a.Y-pos.Y) - (a.Y-b.Y)*(a.X-pos.X)) / denominator

	if t > 0 && t < 1 && u > 0 {
		av := a.Vec2()
		return PointFromVec2(av.Add(b.Vec2().Sub(av).Mul(t))), true
	}

	return Point{}, false
}

// Nearest casts the ray against every wall and returns the hit closest to
// from. The scan is linear; ties keep the earliest wall.
func (r Ray) Nearest(from Point, walls []Boundary) (Point, bool) {
	var closest Point
	found := false
	record := 0.0

	for _, wall := range walls {
		point, ok := r.Cast(wall)
		if !ok {
			continue
		}
		if d := Distance(point, from); !found || d < record {
			record = d
			closest = point
			found = true
		}
	}

	return closest, found
}
