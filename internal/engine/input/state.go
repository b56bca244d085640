package input

import "math"

type buttonState struct {
	pressed          bool
	pressedLastFrame bool
}

// State holds the logical input state that persists across frames.
type State struct {
	axes    [axisCount]float32
	buttons [buttonCount]buttonState
}

// NewState creates a state with every axis at rest and every button up.
func NewState() *State {
	return &State{}
}

// Apply updates the state from a logical event. Pointer events carry no
// persistent state and are ignored.
func (s *State) Apply(ev Event) {
	switch ev.Kind {
	case EffectAxis:
		if ev.Axis < 0 || ev.Axis >= axisCount {
			return
		}
		dir := &s.axes[ev.Axis]
		switch {
		case ev.Started && ev.Positive:
			*dir = 1
		case ev.Started:
			*dir = -1
		case ev.Positive && *dir > 0, !ev.Positive && *dir < 0:
			// Releasing a key only stops the axis if it was the one driving it.
			*dir = 0
		}
	case EffectButton:
		if ev.Button < 0 || ev.Button >= buttonCount {
			return
		}
		s.buttons[ev.Button].pressed = ev.Started
	}
}

// EndFrame records this frame's button levels for next frame's edge checks.
func (s *State) EndFrame() {
	for i := range s.buttons {
		s.buttons[i].pressedLastFrame = s.buttons[i].pressed
	}
}

// Axis returns the current value of an axis.
func (s *State) Axis(a Axis) float32 {
	if a < 0 || a >= axisCount {
		return 0
	}
	return s.axes[a]
}

func (s *State) button(b Button) buttonState {
	if b < 0 || b >= buttonCount {
		return buttonState{}
	}
	return s.buttons[b]
}

// ButtonDown reports whether the button is held (level triggered).
func (s *State) ButtonDown(b Button) bool {
	return s.button(b).pressed
}

// ButtonUp reports whether the button is not held.
func (s *State) ButtonUp(b Button) bool {
	return !s.button(b).pressed
}

// ButtonPressed reports whether the button went down this frame.
func (s *State) ButtonPressed(b Button) bool {
	st := s.button(b)
	return st.pressed && !st.pressedLastFrame
}

// ButtonReleased reports whether the button went up this frame.
func (s *State) ButtonReleased(b Button) bool {
	st := s.button(b)
	return !st.pressed && st.pressedLastFrame
}

// Reset puts every axis at rest and releases every button.
func (s *State) Reset() {
	*s = State{}
}

// Pointer turns absolute pointer positions into deltas. The first position
// after construction or Reset reports a zero delta.
type Pointer struct {
	prevX, prevY float32
}

// NewPointer creates a tracker with no previous position.
func NewPointer() *Pointer {
	p := &Pointer{}
	p.Reset()
	return p
}

// Move records a new position and returns the pointer effect for it.
func (p *Pointer) Move(x, y float32) Effect {
	var dx, dy float32
	if !math.IsNaN(float64(p.prevX)) {
		dx = x - p.prevX
		dy = y - p.prevY
	}
	p.prevX, p.prevY = x, y
	return PointerEffect(x, y, dx, dy)
}

// Reset forgets the previous position.
func (p *Pointer) Reset() {
	nan := float32(math.NaN())
	p.prevX, p.prevY = nan, nan
}
