package simulation

// Distribution selects the 2D sampling shape used when seeding initial
// particle positions.
type Distribution int

const (
	UniformDistribution Distribution = 0
	NormalDistribution  Distribution = 1
)

// SimulationSpecs is the simulation-level configuration: frame timing,
// sub-stepping, collision-resolution tuning, and initial population shape.
// n_steps and sub_step_dt are derived fields recomputed by UpdateDependents
// whenever Dt, SimTime, or NSubSteps changes; callers that set those fields
// directly (rather than via the Set* methods) must call UpdateDependents
// themselves.
type SimulationSpecs struct {
	Dt         float32 // seconds per frame
	SimTime    float32 // total simulated seconds
	NSubSteps  uint32  // inner sub-steps per recorded frame

	NCollisionSteps   uint32 // max outer iterations of collision resolution
	NUpdateCacheSteps uint32 // collision iterations between collision-cache refreshes

	NParticles           uint32
	ParticleDistribution Distribution
	SpawnRadius          float32

	IsRecording bool

	// derived
	NSteps    uint32
	SubStepDt float32
}

// DefaultSimulationSpecs matches the original demo's defaults.
func DefaultSimulationSpecs() *SimulationSpecs {
	s := &SimulationSpecs{
		Dt:        0.1,
		SimTime:   10.0,
		NSubSteps: 5,

		NCollisionSteps:   3,
		NUpdateCacheSteps: 1,

		NParticles:           100,
		ParticleDistribution: UniformDistribution,
		SpawnRadius:          0.5,

		IsRecording: false,
	}
	s.UpdateDependents()
	return s
}

// UpdateDependents recomputes NSteps and SubStepDt from Dt, SimTime, and
// NSubSteps. Call after mutating any of those three fields directly.
func (s *SimulationSpecs) UpdateDependents() {
	s.NSteps = uint32(s.SimTime / s.Dt)
	s.SubStepDt = s.Dt / float32(s.NSubSteps)
}

// SetDt sets the per-frame timestep and recomputes dependents.
func (s *SimulationSpecs) SetDt(dt float32) {
	s.Dt = dt
	s.UpdateDependents()
}

// SetFramerate is convenience for SetDt(1/framerate).
func (s *SimulationSpecs) SetFramerate(framerate uint32) {
	s.Dt = 1.0 / float32(framerate)
	s.UpdateDependents()
}

// SetSimTime sets the total simulated duration and recomputes dependents.
func (s *SimulationSpecs) SetSimTime(simTime float32) {
	s.SimTime = simTime
	s.UpdateDependents()
}

// SetNSubSteps sets the inner sub-step count and recomputes dependents.
func (s *SimulationSpecs) SetNSubSteps(n uint32) {
	s.NSubSteps = n
	s.UpdateDependents()
}

// SpawnRadiusSquared is cached nowhere; it is cheap enough to recompute at
// the one call site that needs it (initialization's rejection sampling).
func (s *SimulationSpecs) SpawnRadiusSquared() float32 {
	return s.SpawnRadius * s.SpawnRadius
}

// Clone returns a deep copy. SimulationSpecs holds no pointers or slices, so
// a value copy already is a deep copy; the method exists for symmetry with
// config.Config's Clone and to make copy-on-pass-to-goroutine sites read
// the same way throughout the codebase.
func (s *SimulationSpecs) Clone() *SimulationSpecs {
	clone := *s
	return &clone
}
