package renderer

import (
	"math"
	"testing"

	"gravsim/internal/vecmath"
)

func TestNewCamera2DFramesDomain(t *testing.T) {
	cam := NewCamera2D(800, 600)

	if cam.Center != vecmath.Zero {
		t.Errorf("expected camera centered on origin, got %+v", cam.Center)
	}
	if cam.Zoom != 300 {
		t.Errorf("expected zoom 300 (half of min screen dimension), got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentersOrigin(t *testing.T) {
	cam := NewCamera2D(800, 600)

	x, y := cam.WorldToScreen(vecmath.Zero)
	if x != 400 || y != 300 {
		t.Errorf("expected origin to map to screen center (400,300), got (%f,%f)", x, y)
	}
}

func TestWorldToScreenFlipsY(t *testing.T) {
	cam := NewCamera2D(800, 600)

	_, yUp := cam.WorldToScreen(vecmath.New(0, 0.1))
	_, yDown := cam.WorldToScreen(vecmath.New(0, -0.1))

	if yUp >= 300 || yDown <= 300 {
		t.Errorf("expected +y world to map above screen center and -y below, got yUp=%f yDown=%f", yUp, yDown)
	}
}

func TestPanMovesCenterInWorldUnits(t *testing.T) {
	cam := NewCamera2D(800, 600)
	cam.Pan(cam.Zoom, 0) // one world unit of screen-space pan

	if math.Abs(float64(cam.Center.X+1)) > 1e-6 {
		t.Errorf("expected center.x to shift by -1 world unit, got %f", cam.Center.X)
	}
}

func TestZoomByClampsToRange(t *testing.T) {
	cam := NewCamera2D(800, 600)

	cam.ZoomBy(1e9)
	if cam.Zoom > 1e6 {
		t.Errorf("expected zoom clamped to max, got %f", cam.Zoom)
	}

	cam.ZoomBy(1e-12)
	if cam.Zoom < 1 {
		t.Errorf("expected zoom clamped to min, got %f", cam.Zoom)
	}
}

func TestResetRecentersCamera(t *testing.T) {
	cam := NewCamera2D(800, 600)
	cam.Pan(100, 50)
	cam.ZoomBy(2)

	cam.Reset()

	if cam.Center != vecmath.Zero {
		t.Errorf("expected reset to recenter on origin, got %+v", cam.Center)
	}
	if cam.Zoom != 300 {
		t.Errorf("expected reset to restore framing zoom, got %f", cam.Zoom)
	}
}
