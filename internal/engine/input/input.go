// Package input maps physical device events to a fixed set of logical axes
// and buttons and tracks their state across frames.
package input

// Axis is a logical input axis with a value in [-1, 1].
type Axis int

// Logical axes.
const (
	AxisThrottle Axis = iota
	AxisStrafe
	AxisHeightScale
	AxisViewDistance
	AxisHeight
	AxisFOV
	axisCount
)

var axisNames = [axisCount]string{"throttle", "strafe", "height_scale", "view_distance", "height", "fov"}

func (a Axis) String() string {
	if a < 0 || a >= axisCount {
		return "unknown"
	}
	return axisNames[a]
}

// Button is a logical on/off input.
type Button int

// Logical buttons.
const (
	ButtonNext Button = iota
	ButtonPrev
	ButtonReload
	ButtonQuit
	ButtonToggleDebug
	ButtonGrab
	buttonCount
)

var buttonNames = [buttonCount]string{"next", "prev", "reload", "quit", "toggle_debug", "grab"}

func (b Button) String() string {
	if b < 0 || b >= buttonCount {
		return "unknown"
	}
	return buttonNames[b]
}

// EffectKind selects which fields of an Effect are meaningful.
type EffectKind int

const (
	EffectAxis EffectKind = iota
	EffectButton
	EffectPointer
)

// Effect is the logical meaning of a physical event.
type Effect struct {
	Kind EffectKind

	// EffectAxis: the axis and the direction the trigger pushes it.
	Axis     Axis
	Positive bool

	// EffectButton
	Button Button

	// EffectPointer: absolute position and delta since the previous motion.
	X, Y   float32
	DX, DY float32
}

// AxisEffect binds a trigger to one direction of an axis.
func AxisEffect(a Axis, positive bool) Effect {
	return Effect{Kind: EffectAxis, Axis: a, Positive: positive}
}

// ButtonEffect binds a trigger to a button.
func ButtonEffect(b Button) Effect {
	return Effect{Kind: EffectButton, Button: b}
}

// PointerEffect describes a pointer motion.
func PointerEffect(x, y, dx, dy float32) Effect {
	return Effect{Kind: EffectPointer, X: x, Y: y, DX: dx, DY: dy}
}

// Event is an Effect together with whether it started (press) or ended
// (release). Pointer events always start.
type Event struct {
	Effect
	Started bool
}
