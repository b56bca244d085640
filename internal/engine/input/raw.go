package input

// RawKind classifies a platform event after the frontend has translated it.
type RawKind int

const (
	RawTrigger RawKind = iota // key or mouse button edge
	RawMotion                 // absolute pointer position
	RawResize                 // viewport size changed
	RawQuit                   // window closed or terminal interrupted
)

// RawEvent is a platform event reduced to the data the game loop needs.
// Frontends produce these; the loop resolves triggers through a Binding.
type RawEvent struct {
	Kind    RawKind
	Trigger Trigger
	Down    bool
	X, Y    float32
	Width   int
	Height  int
}
