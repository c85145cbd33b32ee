package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gravsim/internal/renderer"
)

// SimulationState holds the input-affected simulation state: whether the
// viewer is paused and whether the run is being recorded.
type SimulationState struct {
	Paused    bool
	Recording bool
}

// InputConfig holds input configuration settings.
type InputConfig struct {
	PanSpeed     float32
	ZoomStep     float32
	ScreenWidth  int
	ScreenHeight int
}

// DefaultInputConfig returns reasonable pan/zoom sensitivities for an
// 800x600-class window.
func DefaultInputConfig(screenWidth, screenHeight int) *InputConfig {
	return &InputConfig{
		PanSpeed:     300, // screen pixels/sec at full key hold
		ZoomStep:     1.1,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// InputController coordinates keyboard and mouse input against a
// Camera2D and the viewer's pause/record state.
type InputController struct {
	keyboard *KeyboardHandler
	mouse    *MouseHandler
}

// NewInputController creates a new input controller
func NewInputController() *InputController {
	return &InputController{
		keyboard: NewKeyboardHandler(),
		mouse:    NewMouseHandler(),
	}
}

// ProcessInput applies one frame of input to camera and state: keyboard
// pan, mouse-drag pan, wheel zoom, and the pause/record toggles.
func (c *InputController) ProcessInput(camera *renderer.Camera2D, state *SimulationState, config *InputConfig, dt float32) {
	actions := c.keyboard.ProcessActions()
	if actions.TogglePause {
		state.Paused = !state.Paused
	}
	if actions.ToggleRecording {
		state.Recording = !state.Recording
	}

	movement := c.keyboard.ProcessMovement(config.PanSpeed * dt)
	if movement.X != 0 || movement.Y != 0 {
		camera.Pan(-movement.X, movement.Y)
	}

	drag := c.mouse.ProcessPan()
	if drag.Active {
		camera.Pan(-drag.DX, -drag.DY)
	}

	zoomFactor := c.mouse.ProcessZoom(config.ZoomStep)
	if zoomFactor != 1 {
		camera.ZoomBy(zoomFactor)
	}
}

// UpdateFromRaylib updates input states from raylib.
func (c *InputController) UpdateFromRaylib() {
	c.keyboard.UpdateFromRaylib()
	c.mouse.UpdateFromRaylib()
}

// Reset clears all input states.
func (c *InputController) Reset() {
	c.keyboard.keyStates = make(map[int32]bool)
	c.keyboard.keyPressed = make(map[int32]bool)
	c.mouse.buttonStates = make(map[rl.MouseButton]bool)
	c.mouse.deltaX = 0
	c.mouse.deltaY = 0
	c.mouse.wheelDelta = 0
}
