// Package term is a terminal frontend: the raster is drawn with upper
// half-block cells, two pixels per character.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/engine/input"
	"github.com/Faultbox/voxelspace/internal/engine/raster"
	"github.com/Faultbox/voxelspace/internal/engine/timer"
	"github.com/Faultbox/voxelspace/internal/logger"
)

// statusRows is the number of cell rows reserved above the image.
const statusRows = 1

// DefaultKeyHold covers the usual keyboard auto-repeat delay.
const DefaultKeyHold = 550 * time.Millisecond

// Config holds terminal frontend configuration.
type Config struct {
	// KeyHold is how long a key counts as held after its last press or
	// repeat. Terminals report no key releases.
	KeyHold time.Duration

	// Binding, when set, marks keys bound to buttons as taps that are
	// released immediately instead of held.
	Binding *input.Binding
}

// Terminal renders into a tcell screen and translates its events.
// The embedded buffer provides Clear, DrawLines and Size.
type Terminal struct {
	*raster.Buffer

	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	held    map[input.Trigger]*timer.Timer
	keyHold float32
	binding *input.Binding
	buttons tcell.ButtonMask

	status   string
	grabbing bool
	lastPoll time.Time
	now      func() time.Time

	log *zap.Logger
}

// New initialises the terminal screen and starts reading its events.
func New(cfg Config) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	t := newTerminal(screen, cfg)
	go t.readEvents()

	w, h := t.Size()
	t.log.Info("terminal opened",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("colors", screen.Colors()),
	)
	return t, nil
}

// newTerminal wraps an initialised screen without starting the reader.
func newTerminal(screen tcell.Screen, cfg Config) *Terminal {
	if cfg.KeyHold <= 0 {
		cfg.KeyHold = DefaultKeyHold
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen:  screen,
		events:  make(chan tcell.Event, 100),
		quit:    make(chan struct{}),
		held:    make(map[input.Trigger]*timer.Timer),
		keyHold: float32(cfg.KeyHold.Seconds()),
		binding: cfg.Binding,
		now:     time.Now,
		log:     logger.Named("term"),
	}
	t.lastPoll = t.now()
	t.Buffer = raster.New(t.viewport())
	return t
}

// readEvents forwards screen events to the frame loop. PollEvent blocks and
// returns nil once the screen is finalised.
func (t *Terminal) readEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// viewport returns the raster size that fits the screen.
func (t *Terminal) viewport() (int, int) {
	cols, rows := t.screen.Size()
	return cols, max(rows-statusRows, 0) * 2
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	close(t.quit)
	t.screen.Fini()
	return nil
}

// SetStatus sets the text of the status row.
func (t *Terminal) SetStatus(text string) {
	t.status = text
}

// SetGrabbing marks the status row while the view is being dragged.
func (t *Terminal) SetGrabbing(grabbing bool) {
	t.grabbing = grabbing
}

// Present writes the raster to the screen.
func (t *Terminal) Present() error {
	w, h := t.Size()
	for row := 0; row*2 < h; row++ {
		for x := 0; x < w; x++ {
			top := t.At(x, row*2)
			bottom := top
			if row*2+1 < h {
				bottom = t.At(x, row*2+1)
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			t.screen.SetContent(x, row+statusRows, '▀', nil, style)
		}
	}
	t.drawStatus(w)
	t.screen.Show()
	return nil
}

// drawStatus fills the status row, choosing a text colour that contrasts
// with the top edge of the image.
func (t *Terminal) drawStatus(cols int) {
	bg := tcell.ColorBlack
	fg := tcell.ColorWhite
	if w, h := t.Size(); w > 0 && h > 0 {
		c := t.At(0, 0)
		bg = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		if l, _, _ := (colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}).Lab(); l > 0.6 {
			fg = tcell.ColorBlack
		}
	}
	style := tcell.StyleDefault.Foreground(fg).Background(bg)

	text := []rune(t.status)
	if t.grabbing {
		text = append([]rune("[grab] "), text...)
	}
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(text) {
			r = text[x]
		}
		t.screen.SetContent(x, 0, r, nil, style)
	}
}
