package game

import (
	"golang.org/x/image/colornames"

	"chosenoffset.com/raycast/internal/core/shadows"
	"chosenoffset.com/raycast/internal/render"
	"chosenoffset.com/raycast/internal/render/lighting"
)

// Draw clears the frame and lights the scene from the cursor.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(colornames.Black)

	light := lighting.NewParticle(g.cursor(), g.Config.RayCount)
	light.Update(g.Renderer, screen, g.Walls)
}

func (g *Game) cursor() shadows.Point {
	x, y := g.InputMgr.GetCursorPosition()
	return shadows.Point{X: float64(x), Y: float64(y)}
}
