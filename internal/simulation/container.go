package simulation

import (
	"math"
	"math/rand"

	"gravsim/internal/physics"
	"gravsim/internal/quadtree"
	"gravsim/internal/vecmath"
)

// GravityConst is the softened gravitational coupling used by
// ApplyGravity. It is tuned (alongside Theta/Eps in the quadtree package)
// for the [-1,1]^2 domain and MaxSpeed clamp physics.MaxSpeed assumes.
const GravityConst = 1e-8

// minQuiescentDelta is the early-exit threshold for ResolveCollisions:
// once fewer than this many particles stop colliding between outer
// iterations, further iterations would not measurably reduce overlap.
const minQuiescentDelta = 10

// seedAngularVelocity scales the perpendicular-velocity seeding applied to
// every particle at the end of InitParticles, turning the initial static
// disk into a slowly rotating one.
const seedAngularVelocity = 1e-4

// relaxationCollisionSteps and relaxationCacheSteps tune the one-time
// collision pass InitParticles runs to separate overlaps introduced by
// rejection sampling.
const (
	relaxationCollisionSteps = 5
	relaxationCacheSteps     = 1
)

// boundInflation is the radius multiplier used to build a particle's
// broad-phase query bound: wide enough that the cached candidate list
// stays valid across several collision iterations before a refresh.
const boundInflation = 4

// Container owns the particle population, their collision candidate
// cache, and the quadtree all three other stages (gravity, collision,
// Morton sort) are built on top of. Particle indices are assigned once,
// during InitParticles, and never reused or invalidated afterward.
type Container struct {
	Particles                 []*physics.Particle
	cachedPotentialCollisions [][]int
	tree                      *quadtree.QuadTree
	order                     []int
	rng                       *rand.Rand
}

// NewContainer returns an empty container. rng seeds every random draw the
// container makes (initial placement, perturbation on coincident
// collisions); passing the same seeded rng across two otherwise-identical
// runs is what makes their recordings byte-identical.
func NewContainer(rng *rand.Rand) *Container {
	return &Container{
		tree: quadtree.New(),
		rng:  rng,
	}
}

func (c *Container) particlePos(i int) vecmath.Vec2 { return c.Particles[i].Pos }
func (c *Container) particleMass(i int) float32     { return c.Particles[i].Mass }

// particleBound returns the broad-phase query bound for particle i:
// its position inflated by boundInflation times its radius on every side.
func (c *Container) particleBound(i int) quadtree.Bound {
	p := c.Particles[i]
	r := p.Radius * boundInflation
	return quadtree.NewBound(
		vecmath.New(p.Pos.X-r, p.Pos.Y-r),
		vecmath.New(p.Pos.X+r, p.Pos.Y+r),
	)
}

// InitParticles populates the container with specs.NParticles particles
// sampled by rejection into the spawn disk, relaxes them apart with one
// collision-resolution pass, and seeds a small rotational velocity on
// every particle.
func (c *Container) InitParticles(specs *SimulationSpecs, radius, mass float32) {
	spawnRadius := specs.SpawnRadius
	spawnRadiusSquared := specs.SpawnRadiusSquared()

	c.Particles = make([]*physics.Particle, 0, specs.NParticles)
	c.cachedPotentialCollisions = make([][]int, 0, specs.NParticles)

	for i := uint32(0); i < specs.NParticles; i++ {
		pos := c.sampleSpawnPos(specs.ParticleDistribution, spawnRadius, spawnRadiusSquared)

		p := physics.New(mass, radius)
		p.SetPos(pos)

		c.Particles = append(c.Particles, p)
		c.cachedPotentialCollisions = append(c.cachedPotentialCollisions, nil)
	}

	c.BuildTree()
	c.ResolveCollisions(relaxationCollisionSteps, relaxationCacheSteps)

	for _, p := range c.Particles {
		p.SetVel(p.Pos.Perp().Scale(seedAngularVelocity))
	}
}

func (c *Container) sampleSpawnPos(dist Distribution, spawnRadius, spawnRadiusSquared float32) vecmath.Vec2 {
	draw := func() vecmath.Vec2 {
		if dist == NormalDistribution {
			return vecmath.RandNormal(c.rng).Scale(spawnRadius)
		}
		return vecmath.RandUniform(c.rng).Scale(spawnRadius)
	}

	pos := draw()
	for pos.LengthSquared() > spawnRadiusSquared {
		pos = draw()
	}
	return pos
}

// BuildTree resets the quadtree, sorts particles in place by Morton key of
// their position, and inserts them in that order. Called once per
// sub-step, before gravity.
func (c *Container) BuildTree() {
	c.tree.Reset()

	if cap(c.order) < len(c.Particles) {
		c.order = make([]int, len(c.Particles))
	}
	c.order = c.order[:len(c.Particles)]
	for i := range c.order {
		c.order[i] = i
	}

	quadtree.SortByMorton(c.order, c.particlePos)

	for _, idx := range c.order {
		p := c.Particles[idx]
		c.tree.InsertParticle(idx, p.Pos, p.Mass, c.particleMass)
	}
}

// PropagateMass recomputes every internal tree node's mass aggregates from
// its children. Must run after BuildTree and before ApplyGravity.
func (c *Container) PropagateMass() {
	c.tree.PropagateMass()
}

// ApplyGravity walks the tree once per particle (Barnes-Hut approximation)
// and applies the resulting force scaled by GravityConst.
func (c *Container) ApplyGravity() {
	for _, p := range c.Particles {
		force := c.tree.GravityForce(p.Pos).Scale(GravityConst)
		p.ApplyForce(force)
	}
}

// ApplyGravityQuadratic computes gravity by direct O(n^2) pairwise
// summation instead of the tree walk. It exists purely as a
// cross-validation oracle for ApplyGravity's Barnes-Hut approximation, not
// for use in the live per-sub-step pipeline.
func (c *Container) ApplyGravityQuadratic() {
	n := len(c.Particles)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pi, pj := c.Particles[i], c.Particles[j]
			delta := pj.Pos.Sub(pi.Pos)
			d2 := delta.LengthSquared()
			if d2 == 0 {
				continue
			}
			force := delta.Normalize().Scale(GravityConst * pi.Mass * pj.Mass / d2)
			pi.ApplyForce(force)
			pj.ApplyForce(force.Neg())
		}
	}
}

// resolvePair applies the positional collision correction between
// particles i and j if their disks overlap, per the spec's Gauss-Seidel
// projection: corrections are written immediately so later pairs in the
// same pass see the updated positions.
func (c *Container) resolvePair(i, j int) {
	pi, pj := c.Particles[i], c.Particles[j]

	delta := pj.Pos.Sub(pi.Pos)
	dist2 := delta.LengthSquared()
	minDist := pi.Radius + pj.Radius

	if dist2 == 0 {
		delta = vecmath.RandUniform(c.rng)
		dist2 = delta.LengthSquared()
	}

	if dist2 >= minDist*minDist {
		return
	}

	dist := float32(math.Sqrt(float64(dist2)))
	n := delta.Div(dist)
	penetration := minDist - dist
	corr := n.Scale(penetration * 0.5)

	pi.Pos = pi.Pos.Sub(corr)
	pj.Pos = pj.Pos.Add(corr)

	pi.NCollisions++
	pj.NCollisions++
	pi.NTotalCollisions++
	pj.NTotalCollisions++
}

// ResolveCollisions runs up to nCollisionSteps outer Gauss-Seidel passes
// over a shrinking working set of active particle indices, refreshing
// each active particle's cached candidate list from the tree every
// nUpdateCacheSteps passes. It stops early once fewer than
// minQuiescentDelta particles go quiescent between passes.
func (c *Container) ResolveCollisions(nCollisionSteps, nUpdateCacheSteps uint32) {
	n := len(c.Particles)
	for _, p := range c.Particles {
		p.NCollisions = 0
	}

	active := make([]int, n)
	for i := range active {
		active[i] = i
	}

	for step := uint32(0); step < nCollisionSteps; step++ {
		if nUpdateCacheSteps == 0 || step%nUpdateCacheSteps == 0 {
			for _, i := range active {
				c.cachedPotentialCollisions[i] = c.tree.QueryBound(c.particleBound(i), c.cachedPotentialCollisions[i][:0])
			}
		}

		for _, i := range active {
			c.Particles[i].NCollisions = 0
			for _, j := range c.cachedPotentialCollisions[i] {
				if j == i {
					continue
				}
				c.resolvePair(i, j)
			}
		}

		nextActive := active[:0]
		for _, i := range active {
			if c.Particles[i].NCollisions > 0 {
				nextActive = append(nextActive, i)
			}
		}

		delta := len(active) - len(nextActive)
		active = nextActive
		if delta < minQuiescentDelta {
			break
		}
	}
}

// ResolveCollisionsQuadratic resolves every pair directly, bypassing the
// tree-cached broad phase. It exists as a cross-validation oracle for
// ResolveCollisions, not the live pipeline.
func (c *Container) ResolveCollisionsQuadratic() {
	n := len(c.Particles)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c.resolvePair(i, j)
		}
	}
}

// WallCollide reflects every particle whose disk has crossed the domain
// boundary [-1,1]^2, on x then y independently. SetVel rewrites PrevPos,
// so the reflection changes the sign of the implicit Verlet velocity
// without injecting energy.
func (c *Container) WallCollide() {
	for _, p := range c.Particles {
		vel := p.Vel()

		if p.Pos.X-p.Radius < -1 {
			p.Pos.X = -1 + p.Radius
			p.SetVel(vecmath.New(absf32(vel.X), vel.Y))
		} else if p.Pos.X+p.Radius > 1 {
			p.Pos.X = 1 - p.Radius
			p.SetVel(vecmath.New(-absf32(vel.X), vel.Y))
		}

		vel = p.Vel()
		if p.Pos.Y-p.Radius < -1 {
			p.Pos.Y = -1 + p.Radius
			p.SetVel(vecmath.New(vel.X, absf32(vel.Y)))
		} else if p.Pos.Y+p.Radius > 1 {
			p.Pos.Y = 1 - p.Radius
			p.SetVel(vecmath.New(vel.X, -absf32(vel.Y)))
		}
	}
}

// ApplyGlobalGravity applies a uniform downward force scaled by
// physics.GlobalGravityConstant. Unused by the live driver pipeline (see
// §4.9): the original demo's container exposed it but never called it from
// the frame loop, and the spec keeps it reserved rather than wired in.
func (c *Container) ApplyGlobalGravity() {
	for _, p := range c.Particles {
		p.ApplyForce(vecmath.New(0, physics.GlobalGravityConstant).Scale(p.Mass))
	}
}

// Integrate advances every particle by one sub-step of size dt.
func (c *Container) Integrate(dt float32) {
	for _, p := range c.Particles {
		p.Integrate(dt)
	}
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
