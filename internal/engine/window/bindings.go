package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/voxelspace/internal/engine/input"
)

// DefaultBinding returns the keyboard and mouse layout for the SDL frontend.
func DefaultBinding() *input.Binding {
	return input.NewBinding().
		BindKeyToAxis(int32(sdl.SCANCODE_D), input.AxisStrafe, true).
		BindKeyToAxis(int32(sdl.SCANCODE_A), input.AxisStrafe, false).
		BindKeyToAxis(int32(sdl.SCANCODE_W), input.AxisThrottle, true).
		BindKeyToAxis(int32(sdl.SCANCODE_S), input.AxisThrottle, false).
		BindKeyToAxis(int32(sdl.SCANCODE_UP), input.AxisHeightScale, true).
		BindKeyToAxis(int32(sdl.SCANCODE_DOWN), input.AxisHeightScale, false).
		BindKeyToAxis(int32(sdl.SCANCODE_RIGHT), input.AxisViewDistance, true).
		BindKeyToAxis(int32(sdl.SCANCODE_LEFT), input.AxisViewDistance, false).
		BindKeyToAxis(int32(sdl.SCANCODE_SPACE), input.AxisHeight, true).
		BindKeyToAxis(int32(sdl.SCANCODE_LSHIFT), input.AxisHeight, false).
		BindKeyToAxis(int32(sdl.SCANCODE_RIGHTBRACKET), input.AxisFOV, true).
		BindKeyToAxis(int32(sdl.SCANCODE_LEFTBRACKET), input.AxisFOV, false).
		BindKeyToButton(int32(sdl.SCANCODE_N), input.ButtonNext).
		BindKeyToButton(int32(sdl.SCANCODE_P), input.ButtonPrev).
		BindKeyToButton(int32(sdl.SCANCODE_R), input.ButtonReload).
		BindKeyToButton(int32(sdl.SCANCODE_L), input.ButtonToggleDebug).
		BindKeyToButton(int32(sdl.SCANCODE_ESCAPE), input.ButtonQuit).
		BindMouseToButton(int32(sdl.BUTTON_LEFT), input.ButtonGrab)
}
