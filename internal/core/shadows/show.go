package shadows

import (
	"golang.org/x/image/colornames"

	"chosenoffset.com/raycast/internal/render"
)

// BoundaryWidth is the stroke width used to outline walls.
const BoundaryWidth = 1

// Show draws the wall as a thin white line.
func (b Boundary) Show(r render.Renderer, dst render.Image) {
	r.StrokeLine(dst,
		float32(b.A.X), float32(b.A.Y),
		float32(b.B.X), float32(b.B.Y),
		BoundaryWidth, colornames.White)
}
