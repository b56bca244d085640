package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/voxelspace/internal/engine/input"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/engine/voxel"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTerminal(t *testing.T, cols, rows int) (*Terminal, *clock) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	s.SetSize(cols, rows)

	term := newTerminal(s, Config{KeyHold: 500 * time.Millisecond})
	clk := &clock{t: time.Unix(0, 0)}
	term.now = clk.now
	term.lastPoll = clk.t
	t.Cleanup(func() { term.Close() })
	return term, clk
}

func TestViewportIsTwoPixelsPerRow(t *testing.T) {
	term, _ := newTestTerminal(t, 30, 11)
	if w, h := term.Size(); w != 30 || h != 20 {
		t.Errorf("Size() = %dx%d, want 30x20", w, h)
	}
}

func TestKeyHoldSynthesisesRelease(t *testing.T) {
	term, clk := newTestTerminal(t, 10, 5)
	w := input.Key('w')

	term.events <- tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)
	got := term.PollEvents(nil)
	if len(got) != 1 || got[0].Trigger != w || !got[0].Down {
		t.Fatalf("first press = %+v, want one key down", got)
	}

	// Auto-repeat keeps the key held without new edges.
	for i := 0; i < 3; i++ {
		clk.advance(300 * time.Millisecond)
		term.events <- tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)
		if got := term.PollEvents(nil); len(got) != 0 {
			t.Fatalf("repeat %d produced %+v", i, got)
		}
	}

	clk.advance(600 * time.Millisecond)
	got = term.PollEvents(nil)
	if len(got) != 1 || got[0].Trigger != w || got[0].Down {
		t.Fatalf("after hold = %+v, want one key up", got)
	}
	if got := term.PollEvents(nil); len(got) != 0 {
		t.Errorf("released twice: %+v", got)
	}
}

func TestButtonKeysTapEveryPress(t *testing.T) {
	term, clk := newTestTerminal(t, 10, 5)
	term.binding = DefaultBinding()
	n := input.Key('n')

	for i := 0; i < 2; i++ {
		clk.advance(100 * time.Millisecond)
		term.events <- tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)
		got := term.PollEvents(nil)
		if len(got) != 2 || got[0].Trigger != n || !got[0].Down || got[1].Trigger != n || got[1].Down {
			t.Fatalf("tap %d = %+v, want press and release of n", i, got)
		}
	}
	if len(term.held) != 0 {
		t.Errorf("button key left %d held timers", len(term.held))
	}

	// Axis keys keep the hold emulation.
	term.events <- tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)
	if got := term.PollEvents(nil); len(got) != 1 || !got[0].Down {
		t.Fatalf("axis press = %+v, want one key down", got)
	}
}

func TestKeyCode(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want int32
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), 'n'},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), 'w'},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ' '},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), int32(tcell.KeyUp)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), int32(tcell.KeyEscape)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyCode(tt.ev); got != tt.want {
				t.Errorf("keyCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCtrlCQuits(t *testing.T) {
	term, _ := newTestTerminal(t, 10, 5)
	got := term.translate(nil, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if len(got) != 1 || got[0].Kind != input.RawQuit {
		t.Errorf("Ctrl-C = %+v, want quit", got)
	}
}

func TestMouseDrag(t *testing.T) {
	term, _ := newTestTerminal(t, 10, 5)

	got := term.translate(nil, tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone))
	if len(got) != 2 {
		t.Fatalf("press = %+v, want motion and button", got)
	}
	if got[0].Kind != input.RawMotion || got[0].X != 4 || got[0].Y != 4 {
		t.Errorf("motion = %+v, want pixel (4, 4)", got[0])
	}
	if got[1].Trigger != input.MouseButton(MouseLeft) || !got[1].Down {
		t.Errorf("button = %+v, want left down", got[1])
	}

	got = term.translate(nil, tcell.NewEventMouse(6, 3, tcell.Button1, tcell.ModNone))
	if len(got) != 1 || got[0].Kind != input.RawMotion {
		t.Errorf("drag = %+v, want motion only", got)
	}

	got = term.translate(nil, tcell.NewEventMouse(6, 3, tcell.ButtonNone, tcell.ModNone))
	if len(got) != 2 || got[1].Down {
		t.Errorf("release = %+v, want motion and left up", got)
	}
}

func TestResize(t *testing.T) {
	term, _ := newTestTerminal(t, 10, 5)
	term.screen.(tcell.SimulationScreen).SetSize(40, 21)

	got := term.translate(nil, tcell.NewEventResize(40, 21))
	if len(got) != 1 || got[0].Kind != input.RawResize || got[0].Width != 40 || got[0].Height != 40 {
		t.Errorf("resize = %+v, want 40x40 viewport", got)
	}
	if w, h := term.Size(); w != 40 || h != 40 {
		t.Errorf("Size() = %dx%d after resize, want 40x40", w, h)
	}
}

func TestPresentHalfBlocks(t *testing.T) {
	term, _ := newTestTerminal(t, 4, 3)
	sky := terrain.RGB(53, 81, 92)
	ground := terrain.RGB(10, 120, 40)

	term.Clear(sky)
	term.DrawLines([]voxel.Line{{X: 2, Top: 1, Bottom: 4, Color: ground}})
	term.SetStatus("map 3")
	if err := term.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	rgb := func(c terrain.Color) tcell.Color {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	tests := []struct {
		x, y   int
		fg, bg terrain.Color
	}{
		{0, 1, sky, sky},
		{2, 1, sky, ground},
		{2, 2, ground, ground},
	}
	for _, tt := range tests {
		r, _, style, _ := term.screen.GetContent(tt.x, tt.y)
		fg, bg, _ := style.Decompose()
		if r != '▀' || fg != rgb(tt.fg) || bg != rgb(tt.bg) {
			t.Errorf("cell (%d, %d) = %q fg %v bg %v, want fg %v bg %v", tt.x, tt.y, r, fg, bg, tt.fg, tt.bg)
		}
	}

	for x, want := range "map " {
		if r, _, _, _ := term.screen.GetContent(x, 0); r != want {
			t.Errorf("status cell %d = %q, want %q", x, r, want)
		}
	}
}

func TestDefaultBinding(t *testing.T) {
	b := DefaultBinding()
	if e, ok := b.Resolve(input.Key('w')); !ok || e != input.AxisEffect(input.AxisThrottle, true) {
		t.Errorf("w = %+v, %v", e, ok)
	}
	if e, ok := b.Resolve(input.Key(int32(tcell.KeyEscape))); !ok || e != input.ButtonEffect(input.ButtonQuit) {
		t.Errorf("Esc = %+v, %v", e, ok)
	}
	if e, ok := b.Resolve(input.MouseButton(MouseLeft)); !ok || e != input.ButtonEffect(input.ButtonGrab) {
		t.Errorf("left button = %+v, %v", e, ok)
	}
}
