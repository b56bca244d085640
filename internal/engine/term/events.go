package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/engine/input"
	"github.com/Faultbox/voxelspace/internal/engine/timer"
)

// PollEvents appends every event received since the last call, plus the
// releases of keys whose hold time ran out. It never blocks.
func (t *Terminal) PollEvents(dst []input.RawEvent) []input.RawEvent {
	now := t.now()
	dt := float32(now.Sub(t.lastPoll).Seconds())
	t.lastPoll = now

	dst = t.expire(dst, dt)
	for {
		select {
		case ev := <-t.events:
			dst = t.translate(dst, ev)
		default:
			return dst
		}
	}
}

// expire releases held keys whose timers fire after dt seconds.
func (t *Terminal) expire(dst []input.RawEvent, dt float32) []input.RawEvent {
	for trig, tm := range t.held {
		if tm.Tick(dt) {
			delete(t.held, trig)
			dst = append(dst, input.RawEvent{Kind: input.RawTrigger, Trigger: trig})
		}
	}
	return dst
}

// translate converts one tcell event.
func (t *Terminal) translate(dst []input.RawEvent, ev tcell.Event) []input.RawEvent {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if isInterrupt(e) {
			return append(dst, input.RawEvent{Kind: input.RawQuit})
		}
		return t.press(dst, input.Key(keyCode(e)))

	case *tcell.EventMouse:
		x, y := e.Position()
		px, py := float32(x), float32((y-statusRows)*2)
		dst = append(dst, input.RawEvent{Kind: input.RawMotion, X: px, Y: py})

		buttons := e.Buttons()
		if changed := buttons ^ t.buttons; changed&tcell.Button1 != 0 {
			dst = append(dst, input.RawEvent{
				Kind:    input.RawTrigger,
				Trigger: input.MouseButton(MouseLeft),
				Down:    buttons&tcell.Button1 != 0,
				X:       px,
				Y:       py,
			})
		}
		t.buttons = buttons
		return dst

	case *tcell.EventResize:
		t.screen.Sync()
		w, h := t.viewport()
		t.Buffer.Resize(w, h)
		t.log.Debug("terminal resized", zap.Int("width", w), zap.Int("height", h))
		return append(dst, input.RawEvent{Kind: input.RawResize, Width: w, Height: h})
	}
	return dst
}

// press starts or extends the hold of a key. Only the first press of a hold
// is reported; repeats just restart its timer. Keys bound to buttons are
// reported as a press and release on every tap.
func (t *Terminal) press(dst []input.RawEvent, trig input.Trigger) []input.RawEvent {
	if t.isTap(trig) {
		return append(dst,
			input.RawEvent{Kind: input.RawTrigger, Trigger: trig, Down: true},
			input.RawEvent{Kind: input.RawTrigger, Trigger: trig},
		)
	}
	if tm, ok := t.held[trig]; ok {
		tm.Reset()
		return dst
	}
	tm := timer.Once(t.keyHold)
	t.held[trig] = &tm
	return append(dst, input.RawEvent{Kind: input.RawTrigger, Trigger: trig, Down: true})
}

// isTap reports whether trig is bound to a button rather than an axis.
func (t *Terminal) isTap(trig input.Trigger) bool {
	if t.binding == nil {
		return false
	}
	e, ok := t.binding.Resolve(trig)
	return ok && e.Kind == input.EffectButton
}

// keyCode maps a key event to a binding code: the lower-case rune for
// printable keys, the tcell key otherwise. tcell special keys are either
// control codes below ' ' or values above the rune range bound here.
func keyCode(e *tcell.EventKey) int32 {
	if e.Key() == tcell.KeyRune {
		return unicode.ToLower(e.Rune())
	}
	return int32(e.Key())
}

// isInterrupt reports Ctrl-C in either of the forms terminals deliver it.
func isInterrupt(e *tcell.EventKey) bool {
	return e.Key() == tcell.KeyCtrlC ||
		(e.Key() == tcell.KeyRune && e.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(e.Rune()) == 'c')
}
