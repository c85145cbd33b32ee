// Package vecmath implements the 2D vector algebra shared by the physics
// core: addition, scaling, dot products, and the two random constructors
// used for disk-rejection sampling and coincident-collision perturbation.
package vecmath

import (
	"math"
	"math/rand"
)

// Vec2 is a pair of 32-bit floats. All operations are value receivers; a
// Vec2 is small enough to pass and return by copy throughout the physics
// core.
type Vec2 struct {
	X, Y float32
}

// Zero is the additive identity.
var Zero = Vec2{}

// New returns the vector (x, y).
func New(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns v / s. The caller must ensure s != 0.
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Perp returns v rotated a quarter turn counter-clockwise: (x,y) -> (-y,x).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// LengthSquared returns |v|^2, avoiding the sqrt when only comparison is
// needed (e.g. the Barnes-Hut opening test, collision broad phase).
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns |v|.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// Normalize returns v scaled to unit length. Undefined when v is the zero
// vector; callers must guard against that themselves (the particle speed
// clamp only normalizes a velocity longer than the limit, and the quadratic
// gravity oracle skips zero distance before calling this).
func (v Vec2) Normalize() Vec2 {
	return v.Div(v.Length())
}

// RandUniform draws a vector with each component uniform in [-1, 1).
func RandUniform(rng *rand.Rand) Vec2 {
	return Vec2{
		X: rng.Float32()*2 - 1,
		Y: rng.Float32()*2 - 1,
	}
}

// RandNormal draws a vector with each component from a standard normal
// distribution.
func RandNormal(rng *rand.Rand) Vec2 {
	return Vec2{
		X: float32(rng.NormFloat64()),
		Y: float32(rng.NormFloat64()),
	}
}
