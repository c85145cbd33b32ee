// Command gravsim-view runs the Barnes-Hut simulation live in a raylib
// window: a pan/zoom 2D camera over the [-1,1]^2 domain, particles
// colored by recent collision activity, and a HUD reporting particle
// count and frame timing. Pause and recording are toggled at runtime;
// a recording started in the viewer is exported to disk on exit.
package main

import (
	"flag"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gravsim/internal/config"
	"gravsim/internal/input"
	"gravsim/internal/renderer"
	"gravsim/internal/simulation"
)

func main() {
	cfg := parseFlags()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("gravsim-view: invalid configuration: %v", err)
	}

	const screenWidth, screenHeight = 1000, 800

	rl.InitWindow(screenWidth, screenHeight, "Barnes-Hut N-Body Simulation")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	sim := simulation.New(cfg.Specs, cfg.Seed)
	sim.Init()

	cam := renderer.NewCamera2D(screenWidth, screenHeight)
	particleRenderer := renderer.NewParticleRenderer(cam)
	uiRenderer := renderer.NewUIRenderer(screenWidth, screenHeight)

	controller := input.NewInputController()
	inputConfig := input.DefaultInputConfig(screenWidth, screenHeight)
	state := &input.SimulationState{Recording: cfg.Specs.IsRecording}

	loop := renderer.NewRenderLoop()
	loop.SetTargetFPS(60)

	loop.SetBeginCallback(func() {
		controller.UpdateFromRaylib()
	})

	loop.SetUpdateCallback(func(dt float64) {
		controller.ProcessInput(cam, state, inputConfig, float32(dt))
		if !state.Paused {
			sim.Specs.IsRecording = state.Recording
			sim.RunFrame()
		}
	})

	loop.SetRenderCallback(func(dt float64) {
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		particleRenderer.DrawDomainBounds()
		particleRenderer.Draw(sim.Container.Particles)

		uiRenderer.UpdateState(renderer.UIState{
			ParticleCount: len(sim.Container.Particles),
			TargetFPS:     loop.GetTargetFPS(),
			ActualFPS:     loop.GetActualFPS(),
			FrameTime:     loop.GetLastFrameTime(),
			Paused:        state.Paused,
			Recording:     state.Recording,
		})
		uiRenderer.Draw()

		rl.EndDrawing()
	})

	loop.Start()
	for loop.IsRunning() && !rl.WindowShouldClose() {
		loop.ExecuteFrame()
	}
	loop.Stop()

	if sim.Recorder.FrameCount() > 0 {
		if err := sim.Recorder.Export(cfg.OutputPath); err != nil {
			log.Printf("gravsim-view: exporting recording: %v", err)
		}
	}
}

func parseFlags() *config.Config {
	cfg := config.DefaultConfig()

	particles := flag.Uint("particles", uint(cfg.Specs.NParticles), "number of particles")
	spawnRadius := flag.Float64("spawn-radius", float64(cfg.Specs.SpawnRadius), "initial spawn disk radius in [0,1]")
	record := flag.Bool("record", false, "start with recording enabled")
	outputPath := flag.String("out", cfg.OutputPath, "recording output path, written on exit if recording was ever enabled")
	seed := flag.Int64("seed", cfg.Seed, "RNG seed; identical seed and flags reproduce identical initial conditions")

	flag.Parse()

	cfg.Specs.NParticles = uint32(*particles)
	cfg.Specs.SpawnRadius = float32(*spawnRadius)
	cfg.Specs.IsRecording = *record
	cfg.OutputPath = *outputPath
	cfg.Seed = *seed

	return cfg
}
