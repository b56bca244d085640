package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/voxelspace/internal/engine/input"
)

// MouseLeft is the binding code of the primary mouse button.
const MouseLeft int32 = 1

// DefaultBinding returns the layout for the terminal frontend. Terminals do
// not report a lone Shift, so height down is on C.
func DefaultBinding() *input.Binding {
	return input.NewBinding().
		BindKeyToAxis('d', input.AxisStrafe, true).
		BindKeyToAxis('a', input.AxisStrafe, false).
		BindKeyToAxis('w', input.AxisThrottle, true).
		BindKeyToAxis('s', input.AxisThrottle, false).
		BindKeyToAxis(int32(tcell.KeyUp), input.AxisHeightScale, true).
		BindKeyToAxis(int32(tcell.KeyDown), input.AxisHeightScale, false).
		BindKeyToAxis(int32(tcell.KeyRight), input.AxisViewDistance, true).
		BindKeyToAxis(int32(tcell.KeyLeft), input.AxisViewDistance, false).
		BindKeyToAxis(' ', input.AxisHeight, true).
		BindKeyToAxis('c', input.AxisHeight, false).
		BindKeyToAxis(']', input.AxisFOV, true).
		BindKeyToAxis('[', input.AxisFOV, false).
		BindKeyToButton('n', input.ButtonNext).
		BindKeyToButton('p', input.ButtonPrev).
		BindKeyToButton('r', input.ButtonReload).
		BindKeyToButton('l', input.ButtonToggleDebug).
		BindKeyToButton(int32(tcell.KeyEscape), input.ButtonQuit).
		BindMouseToButton(MouseLeft, input.ButtonGrab)
}
