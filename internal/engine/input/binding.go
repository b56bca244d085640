package input

// Device identifies the kind of physical trigger.
type Device int

const (
	DeviceKey Device = iota
	DeviceMouseButton
)

// Trigger is a physical key or mouse button. Code is the platform's own
// identifier (an SDL scancode, a tcell key or rune, a mouse button index).
type Trigger struct {
	Device Device
	Code   int32
}

// Key returns the trigger for a keyboard code.
func Key(code int32) Trigger {
	return Trigger{Device: DeviceKey, Code: code}
}

// MouseButton returns the trigger for a mouse button.
func MouseButton(code int32) Trigger {
	return Trigger{Device: DeviceMouseButton, Code: code}
}

// Binding is the lookup table from triggers to effects. It is built once at
// startup by the platform frontend.
type Binding struct {
	table map[Trigger]Effect
}

// NewBinding creates an empty binding table.
func NewBinding() *Binding {
	return &Binding{table: make(map[Trigger]Effect)}
}

// BindKeyToAxis pushes axis toward +1 (positive) or -1 while the key is held.
func (b *Binding) BindKeyToAxis(code int32, axis Axis, positive bool) *Binding {
	b.table[Key(code)] = AxisEffect(axis, positive)
	return b
}

// BindKeyToButton maps a key to a logical button.
func (b *Binding) BindKeyToButton(code int32, button Button) *Binding {
	b.table[Key(code)] = ButtonEffect(button)
	return b
}

// BindMouseToButton maps a mouse button to a logical button.
func (b *Binding) BindMouseToButton(code int32, button Button) *Binding {
	b.table[MouseButton(code)] = ButtonEffect(button)
	return b
}

// Resolve returns the effect bound to t, if any.
func (b *Binding) Resolve(t Trigger) (Effect, bool) {
	e, ok := b.table[t]
	return e, ok
}

// Len returns the number of bound triggers.
func (b *Binding) Len() int {
	return len(b.table)
}
