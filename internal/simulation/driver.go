package simulation

import (
	"math/rand"

	"gravsim/internal/recorder"
)

// defaultRadius and defaultMass are the fixed per-particle shape used by
// every particle spawned in InitParticles. The original demo never varies
// these at runtime; a size/mass distribution is future scope, not a
// contract this driver commits to.
const (
	defaultRadius = 0.0015
	defaultMass   = 1.0
)

// Simulation is the outer driver: it owns a Container and a
// SimulationSpecs, and advances the pipeline described in §4.9 one
// recorded frame at a time.
type Simulation struct {
	Container *Container
	Specs     *SimulationSpecs
	Recorder  *recorder.Recorder
}

// New constructs a simulation with a fresh container seeded from rng. Pass
// the same seed across two runs with identical specs to reproduce
// byte-identical recordings (see recorder.Recorder.Export).
func New(specs *SimulationSpecs, seed int64) *Simulation {
	rng := rand.New(rand.NewSource(seed))
	return &Simulation{
		Container: NewContainer(rng),
		Specs:     specs,
		Recorder:  recorder.New(),
	}
}

// Init samples the initial particle population per §4.2.
func (s *Simulation) Init() {
	s.Container.InitParticles(s.Specs, defaultRadius, defaultMass)
}

// Run drives NSteps recorded frames of NSubSteps sub-steps each, following
// the per-sub-step pipeline from §4.9. If IsRecording is set, a snapshot
// is appended to the recorder after every frame's sub-steps complete.
func (s *Simulation) Run() {
	for frame := uint32(0); frame < s.Specs.NSteps; frame++ {
		s.RunFrame()
	}
}

// RunFrame advances exactly one recorded frame: NSubSteps sub-steps,
// followed by a snapshot if recording is enabled. Exposed separately from
// Run so callers driving a live view (see cmd/gravsim-view) can render
// between frames.
func (s *Simulation) RunFrame() {
	for sub := uint32(0); sub < s.Specs.NSubSteps; sub++ {
		s.subStep()
	}
	if s.Specs.IsRecording {
		s.Recorder.Snapshot(s.Container.Particles, s.Specs.NSubSteps)
	}
}

// subStep runs the seven ordered stages of one physics sub-step.
func (s *Simulation) subStep() {
	c := s.Container
	dt := s.Specs.SubStepDt

	c.Integrate(dt)
	c.WallCollide()
	c.BuildTree()
	c.PropagateMass()
	c.ApplyGravity()
	c.ResolveCollisions(s.Specs.NCollisionSteps, s.Specs.NUpdateCacheSteps)
	c.WallCollide()
}
