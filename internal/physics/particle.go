// Package physics implements the per-particle state and the Verlet
// position-difference integrator. Velocity is never stored explicitly: it
// is always recovered as Pos - PrevPos, and the only sanctioned way to
// change it is SetVel, which rewrites PrevPos.
package physics

import "gravsim/internal/vecmath"

// MaxSpeed bounds the per-sub-step displacement. Verlet has no velocity
// field to clamp directly, so an unstable collision correction could
// otherwise inject an arbitrarily large jump; clamping here keeps the
// quadtree's fixed depth cap and the wall resolver's single-pass reflection
// sound.
const MaxSpeed = 1e-3

// DampingConstant and GlobalGravityConstant are carried over from the
// original simulation's constants but are not read anywhere in the live
// integration path. DampingConstant fed an earlier revision's velocity
// damping; GlobalGravityConstant fed an earlier revision's uniform downward
// pull. Both are reserved, matching the original's own comment.
const (
	DampingConstant       = 0.999
	GlobalGravityConstant = -1.0
)

// Particle is a single point mass. Indices into the owning Container's
// particle slice are stable for the lifetime of a run: particles are
// created once during initialization and never destroyed or reallocated,
// which is what lets the quadtree and collision cache hold raw indices
// without revalidation.
type Particle struct {
	PrevPos Vec2
	Pos     Vec2
	PrevAcc Vec2
	Acc     Vec2

	Mass   float32
	Radius float32

	// NCollisions counts broad-phase contacts resolved in the current
	// collision-resolution pass; it is reset every pass (see
	// internal/simulation's ResolveCollisions).
	NCollisions uint32
	// NTotalCollisions accumulates across every sub-step of one recorded
	// frame; the recorder divides it by n_sub_steps and resets it when a
	// frame is snapshotted.
	NTotalCollisions uint32
}

// Vec2 is an alias kept local to this package so particle.go reads
// naturally; it is exactly vecmath.Vec2.
type Vec2 = vecmath.Vec2

// New returns a particle at the origin with zero velocity, the given mass
// and radius. Mass and radius must both be positive; that invariant is the
// caller's responsibility, as with every configuration-shaped input in this
// package: a non-positive mass or radius is a programming bug, not a
// runtime condition.
func New(mass, radius float32) *Particle {
	return &Particle{
		Mass:   mass,
		Radius: radius,
	}
}

// SetPos places the particle at p with zero implicit velocity by setting
// both Pos and PrevPos to p.
func (p *Particle) SetPos(pos Vec2) {
	p.Pos = pos
	p.PrevPos = pos
}

// Vel returns the implicit Verlet velocity, Pos - PrevPos (one sub-step of
// displacement).
func (p *Particle) Vel() Vec2 {
	return p.Pos.Sub(p.PrevPos)
}

// SetVel rewrites PrevPos so that Vel() reports v. This is the only
// sanctioned way to seed or alter velocity; there is no explicit velocity
// field to assign to.
func (p *Particle) SetVel(v Vec2) {
	p.PrevPos = p.Pos.Sub(v)
}

// ApplyForce accumulates f/mass into the current-step acceleration.
// Multiple forces (gravity, collision correction does not go through this
// path) may accumulate before the next Integrate call.
func (p *Particle) ApplyForce(f Vec2) {
	p.Acc = p.Acc.Add(f.Div(p.Mass))
}

// Integrate advances the particle by one sub-step of size dt using
// position-difference (Verlet) integration:
//
//  1. vel = Pos - PrevPos
//  2. if |vel|^2 exceeds MaxSpeed^2, rescale vel to length MaxSpeed
//  3. newPos = Pos + vel + Acc*dt^2
//  4. PrevPos, Pos = Pos, newPos
//  5. PrevAcc, Acc = Acc, zero
func (p *Particle) Integrate(dt float32) {
	vel := p.Vel()
	if vel.LengthSquared() > MaxSpeed*MaxSpeed {
		vel = vel.Normalize().Scale(MaxSpeed)
	}

	newPos := p.Pos.Add(vel).Add(p.Acc.Scale(dt * dt))

	p.PrevPos = p.Pos
	p.Pos = newPos

	p.PrevAcc = p.Acc
	p.Acc = vecmath.Zero
}
