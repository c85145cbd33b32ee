// Command gravsim runs a Barnes-Hut N-body particle simulation and
// optionally records per-frame snapshots to a text file for offline
// visualization.
package main

import (
	"flag"
	"log"
	"time"

	"gravsim/internal/config"
	"gravsim/internal/simulation"
)

func main() {
	cfg := parseFlags()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("gravsim: invalid configuration: %v", err)
	}

	sim := simulation.New(cfg.Specs, cfg.Seed)

	start := time.Now()
	sim.Init()
	if cfg.Verbose {
		log.Printf("gravsim: initialized %d particles in %s", cfg.Specs.NParticles, time.Since(start))
	}

	start = time.Now()
	sim.Run()
	if cfg.Verbose {
		log.Printf("gravsim: ran %d frames x %d sub-steps in %s", cfg.Specs.NSteps, cfg.Specs.NSubSteps, time.Since(start))
	}

	if !cfg.Specs.IsRecording {
		return
	}

	if err := sim.Recorder.Export(cfg.OutputPath); err != nil {
		log.Fatalf("gravsim: exporting recording: %v", err)
	}
}

func parseFlags() *config.Config {
	cfg := config.DefaultConfig()

	framerate := flag.Uint("framerate", uint(1.0/cfg.Specs.Dt), "frames per second; sets dt = 1/framerate")
	simTime := flag.Float64("sim-time", float64(cfg.Specs.SimTime), "total simulated seconds")
	nSubSteps := flag.Uint("sub-steps", uint(cfg.Specs.NSubSteps), "physics sub-steps per recorded frame")
	nCollisionSteps := flag.Uint("collision-steps", uint(cfg.Specs.NCollisionSteps), "max collision-resolution iterations per sub-step")
	nUpdateCacheSteps := flag.Uint("cache-refresh", uint(cfg.Specs.NUpdateCacheSteps), "collision iterations between broad-phase cache refreshes")
	nParticles := flag.Uint("particles", uint(cfg.Specs.NParticles), "number of particles")
	normalDist := flag.Bool("normal-distribution", cfg.Specs.ParticleDistribution == simulation.NormalDistribution, "seed initial positions from a normal distribution instead of uniform")
	spawnRadius := flag.Float64("spawn-radius", float64(cfg.Specs.SpawnRadius), "initial spawn disk radius in [0,1]")
	record := flag.Bool("record", cfg.Specs.IsRecording, "enable frame recording")
	outputPath := flag.String("out", cfg.OutputPath, "recording output path")
	seed := flag.Int64("seed", cfg.Seed, "RNG seed; identical seed and flags reproduce identical recordings")
	verbose := flag.Bool("verbose", cfg.Verbose, "log timing information to stderr")

	flag.Parse()

	cfg.Specs.SetFramerate(uint32(*framerate))
	cfg.Specs.SetSimTime(float32(*simTime))
	cfg.Specs.SetNSubSteps(uint32(*nSubSteps))
	cfg.Specs.NCollisionSteps = uint32(*nCollisionSteps)
	cfg.Specs.NUpdateCacheSteps = uint32(*nUpdateCacheSteps)
	cfg.Specs.NParticles = uint32(*nParticles)
	if *normalDist {
		cfg.Specs.ParticleDistribution = simulation.NormalDistribution
	} else {
		cfg.Specs.ParticleDistribution = simulation.UniformDistribution
	}
	cfg.Specs.SpawnRadius = float32(*spawnRadius)
	cfg.Specs.IsRecording = *record
	cfg.OutputPath = *outputPath
	cfg.Seed = *seed
	cfg.Verbose = *verbose

	return cfg
}
