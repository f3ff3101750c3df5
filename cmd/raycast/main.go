package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"chosenoffset.com/raycast/internal/game"
	ebitenrender "chosenoffset.com/raycast/internal/render/ebiten"
	"chosenoffset.com/raycast/internal/simulation"
)

func main() {
	screenWidth := 1800
	screenHeight := 1200

	configPath := flag.String("config", "simulation.json", "path to the simulation config (defaults are used if it does not exist)")
	flag.Parse()

	config, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	scene := game.NewGame(renderer, inputMgr, config, rng, screenWidth, screenHeight)

	// Set up the window
	engine.SetWindowSize(screenWidth, screenHeight)
	engine.SetWindowTitle("Ray Casting")
	engine.SetWindowResizable(true)

	log.Printf("Starting ray caster: %d rays, %d walls per scene (press Space to regenerate)",
		config.RayCount, config.ObstacleCount)
	if err := engine.RunGame(scene); err != nil {
		log.Fatal(err)
	}
}
