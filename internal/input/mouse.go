package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PanDrag represents a screen-pixel pan request from a left-button drag.
type PanDrag struct {
	Active bool
	DX     float32
	DY     float32
}

// MouseHandler handles mouse input
type MouseHandler struct {
	buttonStates map[rl.MouseButton]bool
	deltaX       float32
	deltaY       float32
	wheelDelta   float32
}

// NewMouseHandler creates a new mouse handler
func NewMouseHandler() *MouseHandler {
	return &MouseHandler{
		buttonStates: make(map[rl.MouseButton]bool),
	}
}

// SetButtonDown sets the state of a mouse button (for testing)
func (m *MouseHandler) SetButtonDown(button rl.MouseButton, down bool) {
	m.buttonStates[button] = down
}

// SetMouseDelta sets the mouse delta (for testing)
func (m *MouseHandler) SetMouseDelta(x, y float32) {
	m.deltaX = x
	m.deltaY = y
}

// SetWheelDelta sets the mouse wheel delta (for testing)
func (m *MouseHandler) SetWheelDelta(delta float32) {
	m.wheelDelta = delta
}

// IsButtonDown checks if a mouse button is held down
func (m *MouseHandler) IsButtonDown(button rl.MouseButton) bool {
	return m.buttonStates[button]
}

// GetMouseDelta gets the mouse movement delta
func (m *MouseHandler) GetMouseDelta() (float32, float32) {
	return m.deltaX, m.deltaY
}

// GetWheelDelta gets the mouse wheel movement delta
func (m *MouseHandler) GetWheelDelta() float32 {
	return m.wheelDelta
}

// ProcessPan processes a left-button drag into a screen-pixel pan
// request.
func (m *MouseHandler) ProcessPan() *PanDrag {
	if !m.IsButtonDown(rl.MouseLeftButton) {
		return &PanDrag{}
	}
	dx, dy := m.GetMouseDelta()
	return &PanDrag{Active: true, DX: dx, DY: dy}
}

// ProcessZoom converts the wheel delta into a multiplicative zoom factor:
// zoomStep for a positive delta, 1/zoomStep for a negative one, and 1 when
// the wheel did not move. Only the sign of the delta is used, so a frame
// with several notches still scales by a single step.
func (m *MouseHandler) ProcessZoom(zoomStep float32) float32 {
	wheel := m.GetWheelDelta()
	if wheel == 0 {
		return 1
	}
	if wheel > 0 {
		return zoomStep
	}
	return 1 / zoomStep
}

// UpdateFromRaylib updates mouse state from raylib (for production use)
func (m *MouseHandler) UpdateFromRaylib() {
	m.buttonStates[rl.MouseLeftButton] = rl.IsMouseButtonDown(rl.MouseLeftButton)

	delta := rl.GetMouseDelta()
	m.deltaX = delta.X
	m.deltaY = delta.Y

	m.wheelDelta = rl.GetMouseWheelMove()
}
