package renderer

import "gravsim/internal/vecmath"

// Camera2D maps the simulation's fixed [-1,1]^2 domain onto a screen
// rectangle, supporting pan (moving Center) and zoom (scaling Zoom).
// Unlike the teacher's 3D orbit camera, there is no view/projection matrix
// to cache: the domain never rotates, so WorldToScreen is a direct affine
// transform recomputed on every call.
type Camera2D struct {
	Center vecmath.Vec2 // world-space point mapped to the screen center
	Zoom   float32      // screen pixels per world unit

	ScreenWidth  int
	ScreenHeight int
}

// NewCamera2D returns a camera centered on the origin, framing the full
// [-1,1]^2 domain within the given screen size.
func NewCamera2D(screenWidth, screenHeight int) *Camera2D {
	return &Camera2D{
		Center:       vecmath.Zero,
		Zoom:         float32(minInt(screenWidth, screenHeight)) / 2,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// WorldToScreen projects a world-space position to screen pixel
// coordinates, with +y world pointing up the screen (hence the Y flip:
// screen y grows downward).
func (c *Camera2D) WorldToScreen(pos vecmath.Vec2) (float32, float32) {
	relX := (pos.X - c.Center.X) * c.Zoom
	relY := (pos.Y - c.Center.Y) * c.Zoom
	sx := float32(c.ScreenWidth)/2 + relX
	sy := float32(c.ScreenHeight)/2 - relY
	return sx, sy
}

// WorldLength converts a world-space length (e.g. a particle radius) to
// screen pixels at the current zoom.
func (c *Camera2D) WorldLength(length float32) float32 {
	return length * c.Zoom
}

// Pan shifts the view so on-screen content moves by the screen-pixel delta
// (dyScreen positive is down the screen): the camera center moves the
// opposite way by the delta converted to world units at the current zoom.
func (c *Camera2D) Pan(dxScreen, dyScreen float32) {
	c.Center.X -= dxScreen / c.Zoom
	c.Center.Y += dyScreen / c.Zoom
}

// ZoomBy scales Zoom by factor, clamped to a sane range so the domain
// can't be zoomed out to nothing or in past floating-point usefulness.
func (c *Camera2D) ZoomBy(factor float32) {
	c.Zoom *= factor
	const minZoom, maxZoom = 1, 1e6
	if c.Zoom < minZoom {
		c.Zoom = minZoom
	}
	if c.Zoom > maxZoom {
		c.Zoom = maxZoom
	}
}

// Reset recenters the camera on the origin and reframes the full domain.
func (c *Camera2D) Reset() {
	c.Center = vecmath.Zero
	c.Zoom = float32(minInt(c.ScreenWidth, c.ScreenHeight)) / 2
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
