package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIState is a snapshot of the values the HUD displays, pulled from the
// simulation and render loop once per frame.
type UIState struct {
	ParticleCount int
	TargetFPS     int
	ActualFPS     int
	FrameTime     float64
	Paused        bool
	Recording     bool
}

// UIRenderer draws the on-screen heads-up display: title, particle count,
// frame timing, pause/record indicators and control instructions.
type UIRenderer struct {
	screenWidth  int
	screenHeight int
	fontSize     int32

	title string
	state UIState
}

// NewUIRenderer creates a HUD renderer for a window of the given size.
func NewUIRenderer(screenWidth, screenHeight int) *UIRenderer {
	return &UIRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontSize:     20,
		title:        "Barnes-Hut N-Body Simulation",
	}
}

// GetScreenDimensions returns the screen dimensions.
func (ui *UIRenderer) GetScreenDimensions() (int, int) {
	return ui.screenWidth, ui.screenHeight
}

// SetTitle sets the UI title.
func (ui *UIRenderer) SetTitle(title string) {
	ui.title = title
}

// GetTitle returns the UI title.
func (ui *UIRenderer) GetTitle() string {
	return ui.title
}

// UpdateState replaces the HUD's displayed values for the next frame.
func (ui *UIRenderer) UpdateState(state UIState) {
	ui.state = state
}

// GetControlInstructions returns the control instruction lines shown in
// the corner of the window.
func (ui *UIRenderer) GetControlInstructions() []string {
	return []string{
		"Drag with left mouse to pan",
		"Scroll to zoom",
		"P to pause, R to toggle recording",
	}
}

// GetPauseText returns the pause indicator text.
func (ui *UIRenderer) GetPauseText() string {
	return "PAUSED (Press P to resume)"
}

// GetRecordingText returns the recording indicator text.
func (ui *UIRenderer) GetRecordingText() string {
	return "RECORDING"
}

func (ui *UIRenderer) GetTitlePosition() (int, int)         { return 10, 10 }
func (ui *UIRenderer) GetParticleCountPosition() (int, int) { return 10, 40 }
func (ui *UIRenderer) GetFPSPosition() (int, int)           { return ui.screenWidth - 220, 10 }
func (ui *UIRenderer) GetFrameTimePosition() (int, int)     { return ui.screenWidth - 220, 35 }
func (ui *UIRenderer) GetRecordingPosition() (int, int)     { return ui.screenWidth - 220, 60 }

func (ui *UIRenderer) GetPausePosition() (int, int) {
	return ui.screenWidth/2 - 150, ui.screenHeight/2 - 10
}

func (ui *UIRenderer) GetControlPosition(index int) (int, int) {
	return 10, 130 + index*26
}

// GetTitleColor returns the title's draw color.
func (ui *UIRenderer) GetTitleColor() rl.Color { return rl.Lime }

// GetDefaultTextColor returns the default HUD text color.
func (ui *UIRenderer) GetDefaultTextColor() rl.Color { return rl.White }

// GetPauseColor returns the pause indicator's draw color.
func (ui *UIRenderer) GetPauseColor() rl.Color { return rl.Yellow }

// GetRecordingColor returns the recording indicator's draw color.
func (ui *UIRenderer) GetRecordingColor() rl.Color { return rl.Red }

// GetFontSize returns the font size used for HUD text.
func (ui *UIRenderer) GetFontSize() int32 { return ui.fontSize }

// SetFontSize sets the font size used for HUD text.
func (ui *UIRenderer) SetFontSize(size int32) { ui.fontSize = size }

func (ui *UIRenderer) GetParticleCountText() string {
	return fmt.Sprintf("Particles: %d", ui.state.ParticleCount)
}

func (ui *UIRenderer) GetTargetFPSText() string {
	return fmt.Sprintf("Target FPS: %d", ui.state.TargetFPS)
}

func (ui *UIRenderer) GetActualFPSText() string {
	return fmt.Sprintf("Actual FPS: %d", ui.state.ActualFPS)
}

func (ui *UIRenderer) GetFrameTimeText() string {
	return fmt.Sprintf("Frame Time: %.3fs", ui.state.FrameTime)
}

// Draw issues the actual raylib draw calls for the current state. Must be
// called between rl.BeginDrawing and rl.EndDrawing.
func (ui *UIRenderer) Draw() {
	tx, ty := ui.GetTitlePosition()
	rl.DrawText(ui.title, int32(tx), int32(ty), ui.fontSize, ui.GetTitleColor())

	px, py := ui.GetParticleCountPosition()
	rl.DrawText(ui.GetParticleCountText(), int32(px), int32(py), ui.fontSize, ui.GetDefaultTextColor())

	fx, fy := ui.GetFPSPosition()
	rl.DrawText(ui.GetActualFPSText(), int32(fx), int32(fy), ui.fontSize, ui.GetDefaultTextColor())

	ftx, fty := ui.GetFrameTimePosition()
	rl.DrawText(ui.GetFrameTimeText(), int32(ftx), int32(fty), ui.fontSize, ui.GetDefaultTextColor())

	for i, line := range ui.GetControlInstructions() {
		cx, cy := ui.GetControlPosition(i)
		rl.DrawText(line, int32(cx), int32(cy), ui.fontSize, ui.GetDefaultTextColor())
	}

	if ui.state.Recording {
		rx, ry := ui.GetRecordingPosition()
		rl.DrawText(ui.GetRecordingText(), int32(rx), int32(ry), ui.fontSize, ui.GetRecordingColor())
	}

	if ui.state.Paused {
		ppx, ppy := ui.GetPausePosition()
		rl.DrawText(ui.GetPauseText(), int32(ppx), int32(ppy), ui.fontSize, ui.GetPauseColor())
	}
}
