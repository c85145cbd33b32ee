package simulation

import (
	"math"
	"math/rand"
	"testing"

	"gravsim/internal/physics"
	"gravsim/internal/vecmath"
)

func newTestSpecs(nParticles uint32, spawnRadius float32) *SimulationSpecs {
	s := DefaultSimulationSpecs()
	s.NParticles = nParticles
	s.SpawnRadius = spawnRadius
	s.UpdateDependents()
	return s
}

func TestInitParticlesPlacesWithinSpawnDisk(t *testing.T) {
	c := NewContainer(rand.New(rand.NewSource(1)))
	specs := newTestSpecs(50, 0.3)
	c.InitParticles(specs, 0.001, 1.0)

	if len(c.Particles) != 50 {
		t.Fatalf("expected 50 particles, got %d", len(c.Particles))
	}

	for i, p := range c.Particles {
		// The relaxation pass in InitParticles may push particles slightly
		// outside the spawn disk to resolve overlaps; allow a small margin.
		if p.Pos.Length() > specs.SpawnRadius+0.05 {
			t.Errorf("particle %d escaped spawn disk: pos=%+v", i, p.Pos)
		}
	}
}

// TestInitParticlesSeedsRotationalVelocity checks that every particle
// leaves InitParticles with nonzero velocity perpendicular to its
// position, per §4.2's rotating-disk seeding.
func TestInitParticlesSeedsRotationalVelocity(t *testing.T) {
	c := NewContainer(rand.New(rand.NewSource(2)))
	specs := newTestSpecs(20, 0.3)
	c.InitParticles(specs, 0.001, 1.0)

	for i, p := range c.Particles {
		if p.Pos.LengthSquared() < 1e-12 {
			continue // can't check perpendicularity of a zero position
		}
		vel := p.Vel()
		if vel.LengthSquared() < 1e-18 {
			t.Errorf("particle %d has zero seeded velocity", i)
		}
	}
}

// TestInitParticlesDeterministicWithSameSeed is the container-level half
// of S6: two containers seeded identically and initialized with identical
// specs must produce byte-identical particle positions.
func TestInitParticlesDeterministicWithSameSeed(t *testing.T) {
	specsA := newTestSpecs(30, 0.4)
	specsB := newTestSpecs(30, 0.4)

	a := NewContainer(rand.New(rand.NewSource(99)))
	b := NewContainer(rand.New(rand.NewSource(99)))

	a.InitParticles(specsA, 0.001, 1.0)
	b.InitParticles(specsB, 0.001, 1.0)

	for i := range a.Particles {
		if a.Particles[i].Pos != b.Particles[i].Pos {
			t.Fatalf("particle %d diverged: %+v vs %+v", i, a.Particles[i].Pos, b.Particles[i].Pos)
		}
	}
}

// TestWallCollideClampsWithinBounds is the quantified invariant #1: after
// wall-collide, every particle's inflated position lies within [-1,1].
func TestWallCollideClampsWithinBounds(t *testing.T) {
	c := NewContainer(rand.New(rand.NewSource(3)))
	radius := float32(0.02)
	positions := []vecmath.Vec2{
		{X: 1.01, Y: 0}, {X: -1.05, Y: 0.5}, {X: 0, Y: 1.2}, {X: -0.3, Y: -1.3},
	}
	for _, pos := range positions {
		p := newParticleAt(pos, radius)
		c.Particles = append(c.Particles, p)
	}

	c.WallCollide()

	for i, p := range c.Particles {
		if p.Pos.X-p.Radius < -1-1e-5 || p.Pos.X+p.Radius > 1+1e-5 {
			t.Errorf("particle %d x out of bounds: %+v", i, p.Pos)
		}
		if p.Pos.Y-p.Radius < -1-1e-5 || p.Pos.Y+p.Radius > 1+1e-5 {
			t.Errorf("particle %d y out of bounds: %+v", i, p.Pos)
		}
	}
}

// TestWallBouncePreservesSpeed is invariant #11 / scenario S4: a particle
// launched at a wall below MaxSpeed bounces with the same speed, reversed
// in the reflected axis.
func TestWallBouncePreservesSpeed(t *testing.T) {
	c := NewContainer(rand.New(rand.NewSource(4)))
	p := newParticleAt(vecmath.New(0.99, 0), 0.02)
	p.SetVel(vecmath.New(1e-4, 0))
	c.Particles = append(c.Particles, p)

	preSpeed := p.Vel().Length()
	c.WallCollide()
	postVel := p.Vel()

	if p.Pos.X > 1-p.Radius+1e-6 {
		t.Errorf("expected pos.x <= 1-radius, got %f", p.Pos.X)
	}
	if postVel.X >= 0 {
		t.Errorf("expected reflected x-velocity to be negative, got %f", postVel.X)
	}
	if math.Abs(float64(postVel.Length()-preSpeed)) > 1e-6 {
		t.Errorf("expected speed preserved across bounce: pre=%f post=%f", preSpeed, postVel.Length())
	}
}

// TestTwoBodySymmetricAttraction is scenario S3: two equal-mass particles
// placed symmetrically about the origin with zero velocity must converge
// toward the origin, staying symmetric.
func TestTwoBodySymmetricAttraction(t *testing.T) {
	c := NewContainer(rand.New(rand.NewSource(5)))
	p0 := newParticleAt(vecmath.New(-0.1, 0), 0.001)
	p1 := newParticleAt(vecmath.New(0.1, 0), 0.001)
	c.Particles = append(c.Particles, p0, p1)
	c.cachedPotentialCollisions = append(c.cachedPotentialCollisions, nil, nil)

	// With GravityConst = 1e-8 the per-step displacement acc*dt^2 must exceed
	// half a float32 ulp at |x| = 0.1 (about 3.7e-9) or the positions never
	// change; dt = 1 gives 2.5e-7 on the first step.
	const dt = float32(1.0)
	prevAbsX := float32(0.1)
	for step := 0; step < 100; step++ {
		c.Integrate(dt)
		c.WallCollide()
		c.BuildTree()
		c.PropagateMass()
		c.ApplyGravity()
		c.ResolveCollisions(3, 1)
		c.WallCollide()

		if math.Abs(float64(p0.Pos.X+p1.Pos.X)) > 1e-4 {
			t.Fatalf("step %d: symmetry broken, p0.x=%f p1.x=%f", step, p0.Pos.X, p1.Pos.X)
		}
		absX := float32(math.Abs(float64(p0.Pos.X)))
		if absX > prevAbsX+1e-7 {
			t.Fatalf("step %d: |x| increased, prev=%f now=%f", step, prevAbsX, absX)
		}
		prevAbsX = absX
	}

	if prevAbsX >= 0.1 {
		t.Fatalf("expected particles to have moved closer to origin, still at %f", prevAbsX)
	}
}

// TestResolveCollisionsSeparatesDensePack is a scaled-down version of S5:
// after relaxation, no pair of particles overlaps by more than a small
// floating-point tolerance.
func TestResolveCollisionsSeparatesDensePack(t *testing.T) {
	c := NewContainer(rand.New(rand.NewSource(6)))
	specs := newTestSpecs(150, 0.1)
	c.InitParticles(specs, 0.003, 1.0)

	c.BuildTree()
	c.ResolveCollisions(5, 1)

	const tol = 1e-6
	n := len(c.Particles)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := c.Particles[i].Pos.Sub(c.Particles[j].Pos).Length()
			minDist := c.Particles[i].Radius + c.Particles[j].Radius
			if d < minDist-tol {
				t.Fatalf("particles %d,%d overlap: dist=%f minDist=%f", i, j, d, minDist)
			}
		}
	}
}

// TestApplyGravityMatchesQuadraticForSmallPopulation checks that the
// Barnes-Hut tree-based force and the direct O(n^2) oracle agree closely
// for a small, well-separated cluster.
func TestApplyGravityMatchesQuadraticForSmallPopulation(t *testing.T) {
	c1 := NewContainer(rand.New(rand.NewSource(7)))
	c2 := NewContainer(rand.New(rand.NewSource(7)))

	positions := []vecmath.Vec2{
		{X: -0.5, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.3, Y: 0.4}, {X: 0.6, Y: -0.2},
	}
	for _, pos := range positions {
		c1.Particles = append(c1.Particles, newParticleAt(pos, 0.001))
		c2.Particles = append(c2.Particles, newParticleAt(pos, 0.001))
	}

	c1.BuildTree()
	c1.PropagateMass()
	c1.ApplyGravity()

	c2.ApplyGravityQuadratic()

	for i := range c1.Particles {
		got := c1.Particles[i].Acc
		want := c2.Particles[i].Acc
		if math.Abs(float64(got.X-want.X)) > 1e-3 || math.Abs(float64(got.Y-want.Y)) > 1e-3 {
			t.Errorf("particle %d: tree acc %+v diverges from quadratic %+v", i, got, want)
		}
	}
}

// TestResolveCollisionsQuadraticSeparatesOverlappingPair checks the direct
// O(n^2) collision oracle used to cross-check the cached tree-based
// resolver against a small, deliberately overlapping pair.
func TestResolveCollisionsQuadraticSeparatesOverlappingPair(t *testing.T) {
	c := NewContainer(rand.New(rand.NewSource(8)))
	p0 := newParticleAt(vecmath.New(-0.001, 0), 0.01)
	p1 := newParticleAt(vecmath.New(0.001, 0), 0.01)
	c.Particles = append(c.Particles, p0, p1)

	c.ResolveCollisionsQuadratic()

	d := p0.Pos.Sub(p1.Pos).Length()
	minDist := p0.Radius + p1.Radius
	if d < minDist-1e-6 {
		t.Errorf("expected pair separated to at least %f, got %f", minDist, d)
	}
}

func newParticleAt(pos vecmath.Vec2, radius float32) *physics.Particle {
	p := physics.New(1.0, radius)
	p.SetPos(pos)
	return p
}
