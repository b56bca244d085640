package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/voxelspace/internal/engine/input"
)

// PollEvents drains the SDL queue and appends the translated events to dst.
func (w *Window) PollEvents(dst []input.RawEvent) []input.RawEvent {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			dst = append(dst, input.RawEvent{Kind: input.RawQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				dst = append(dst, input.RawEvent{
					Kind:   input.RawResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			// Held keys are level state already; auto-repeat adds nothing.
			if e.Repeat != 0 {
				continue
			}
			dst = append(dst, input.RawEvent{
				Kind:    input.RawTrigger,
				Trigger: input.Key(int32(e.Keysym.Scancode)),
				Down:    e.Type == sdl.KEYDOWN,
			})

		case *sdl.MouseButtonEvent:
			dst = append(dst, input.RawEvent{
				Kind:    input.RawTrigger,
				Trigger: input.MouseButton(int32(e.Button)),
				Down:    e.Type == sdl.MOUSEBUTTONDOWN,
				X:       float32(e.X),
				Y:       float32(e.Y),
			})

		case *sdl.MouseMotionEvent:
			dst = append(dst, input.RawEvent{
				Kind: input.RawMotion,
				X:    float32(e.X),
				Y:    float32(e.Y),
			})
		}
	}
	return dst
}
