package game

import (
	"log"
	"math/rand"

	"chosenoffset.com/raycast/internal/core/shadows"
	"chosenoffset.com/raycast/internal/render"
	"chosenoffset.com/raycast/internal/simulation"
)

// RegenerateKey rebuilds the walls when pressed.
const RegenerateKey = render.KeySpace

// Game holds the scene state and drives one light per frame.
type Game struct {
	// Current viewport size, refreshed by Layout.
	ScreenWidth  int
	ScreenHeight int

	// Walls is replaced wholesale by Regenerate and read-only otherwise.
	Walls []shadows.Boundary

	Config   *simulation.Config
	Renderer render.Renderer
	InputMgr render.InputManager
	Rand     *rand.Rand
}

// NewGame creates a scene with no walls. A nil config uses the defaults.
func NewGame(r render.Renderer, input render.InputManager, config *simulation.Config, rng *rand.Rand, width, height int) *Game {
	if config == nil {
		config = simulation.DefaultConfig()
	}
	return &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		Config:       config,
		Renderer:     r,
		InputMgr:     input,
		Rand:         rng,
	}
}

// Update handles input. The regenerate key is edge triggered, so holding it
// rebuilds the scene once.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(RegenerateKey) {
		g.Regenerate()
	}
	return nil
}

// Regenerate replaces the walls with the viewport border plus a new set of
// random walls. The viewport size is read at call time.
func (g *Game) Regenerate() {
	w, h := float64(g.ScreenWidth), float64(g.ScreenHeight)
	g.Walls = shadows.GenerateBoundaries(g.Rand, g.Config.ObstacleCount, w, h)
	log.Printf("Regenerated scene: %d walls in %dx%d viewport", len(g.Walls), g.ScreenWidth, g.ScreenHeight)
}

// Layout tracks the window size so the border follows resizes on the next
// regeneration.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ScreenWidth = outsideWidth
	g.ScreenHeight = outsideHeight
	return outsideWidth, outsideHeight
}
