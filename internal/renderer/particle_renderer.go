package renderer

import (
	"errors"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gravsim/internal/physics"
	"gravsim/internal/vecmath"
)

// minParticlePixels is the floor on a drawn particle's screen radius: at
// low zoom a particle's true radius (fractions of the [-1,1] domain)
// would round away to nothing, making a dense simulation invisible.
const minParticlePixels = 1.5

// quiescentColor and activeColor bound the collision-count color ramp:
// particles with zero recent collisions draw quiescentColor, particles at
// or above collisionColorSaturation draw activeColor, interpolated
// between.
var (
	quiescentColor = rl.Color{R: 120, G: 170, B: 255, A: 255}
	activeColor    = rl.Color{R: 255, G: 90, B: 70, A: 255}
)

const collisionColorSaturation = 4

// ParticleRenderer draws the current particle population as filled
// circles, colored by how many collisions each particle resolved in its
// most recent pass (physics.Particle.NCollisions), sized from its radius
// and the active camera's zoom.
type ParticleRenderer struct {
	camera *Camera2D
}

// NewParticleRenderer returns a renderer bound to camera.
func NewParticleRenderer(camera *Camera2D) *ParticleRenderer {
	return &ParticleRenderer{camera: camera}
}

// Draw renders every particle. Must be called between rl.BeginDrawing and
// rl.EndDrawing.
func (r *ParticleRenderer) Draw(particles []*physics.Particle) {
	for _, p := range particles {
		x, y := r.camera.WorldToScreen(p.Pos)
		radius := r.camera.WorldLength(p.Radius)
		if radius < minParticlePixels {
			radius = minParticlePixels
		}
		rl.DrawCircle(int32(x), int32(y), radius, collisionColor(p.NCollisions))
	}
}

// collisionColor linearly interpolates between quiescentColor and
// activeColor by how saturated n is against collisionColorSaturation.
func collisionColor(n uint32) rl.Color {
	t := math.Min(float64(n)/float64(collisionColorSaturation), 1.0)
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return rl.Color{
		R: lerp(quiescentColor.R, activeColor.R),
		G: lerp(quiescentColor.G, activeColor.G),
		B: lerp(quiescentColor.B, activeColor.B),
		A: 255,
	}
}

// DrawDomainBounds draws the [-1,1]^2 simulation boundary as a rectangle
// outline, so the viewer can see particles approaching a wall before they
// bounce.
func (r *ParticleRenderer) DrawDomainBounds() {
	x0, y0 := r.camera.WorldToScreen(vecmath.New(-1, 1))
	x1, y1 := r.camera.WorldToScreen(vecmath.New(1, -1))
	if x1 <= x0 || y1 <= y0 {
		return
	}
	rl.DrawRectangleLines(int32(x0), int32(y0), int32(x1-x0), int32(y1-y0), rl.Gray)
}

// SetCamera swaps the camera the renderer projects through, letting a
// viewer resize mid-run without reconstructing the renderer.
func (r *ParticleRenderer) SetCamera(camera *Camera2D) error {
	if camera == nil {
		return errors.New("renderer: camera must not be nil")
	}
	r.camera = camera
	return nil
}
