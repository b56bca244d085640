// Package game implements the main loop: poll, dispatch, update, draw,
// present.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/engine/input"
	"github.com/Faultbox/voxelspace/internal/engine/timer"
	"github.com/Faultbox/voxelspace/internal/engine/voxel"
	"github.com/Faultbox/voxelspace/internal/game/scene"
	"github.com/Faultbox/voxelspace/internal/logger"
)

// Frontend is a platform window or terminal.
type Frontend interface {
	scene.Presenter
	scene.Host

	// PollEvents appends pending platform events to dst without blocking.
	PollEvents(dst []input.RawEvent) []input.RawEvent

	// Present shows the frame drawn since the last call.
	Present() error
}

// statsReporter is implemented by scenes that render terrain.
type statsReporter interface {
	Stats() voxel.Stats
}

// Config holds game loop configuration.
type Config struct {
	// FrameLimit is the minimum frame time; zero runs unthrottled (vsync
	// paces the SDL frontend).
	FrameLimit time.Duration
}

// Game owns the loop state.
type Game struct {
	config   Config
	frontend Frontend
	binding  *input.Binding
	pointer  *input.Pointer
	world    *scene.World
	events   []input.RawEvent

	fpsTimer timer.Timer
	frames   int

	now   func() time.Time
	sleep func(time.Duration)
	log   *zap.Logger
}

// New creates a game over a frontend, its binding table and the initial
// scenes.
func New(cfg Config, f Frontend, binding *input.Binding, scenes *scene.Stack) *Game {
	w, h := f.Size()
	return &Game{
		config:   cfg,
		frontend: f,
		binding:  binding,
		pointer:  input.NewPointer(),
		world: &scene.World{
			Input:  input.NewState(),
			Scenes: scenes,
			Host:   f,
			Width:  w,
			Height: h,
		},
		events:   make([]input.RawEvent, 0, 32),
		fpsTimer: timer.New(time.Second),
		now:      time.Now,
		sleep:    time.Sleep,
		log:      logger.Named("game"),
	}
}

// World returns the shared scene state.
func (g *Game) World() *scene.World {
	return g.world
}

// Run loops until the scene stack is empty or the platform asks to quit.
func (g *Game) Run() error {
	g.log.Info("starting game loop")

	last := g.now()
	for {
		start := g.now()
		dt := float32(start.Sub(last).Seconds())
		last = start

		running, err := g.Frame(dt)
		if err != nil {
			return err
		}
		if !running {
			g.log.Info("game loop finished")
			return nil
		}

		if limit := g.config.FrameLimit; limit > 0 {
			if spent := g.now().Sub(start); spent < limit {
				g.sleep(limit - spent)
			}
		}
	}
}

// Frame runs one iteration of the loop and reports whether to continue.
func (g *Game) Frame(dt float32) (bool, error) {
	g.events = g.frontend.PollEvents(g.events[:0])
	for _, raw := range g.events {
		if !g.handle(raw) {
			return false, nil
		}
	}

	top := g.world.Scenes.Top()
	if top == nil {
		return false, nil
	}
	top.Update(g.world, dt)

	g.world.Width, g.world.Height = g.frontend.Size()
	top.Draw(g.world, g.frontend)
	if err := g.frontend.Present(); err != nil {
		return false, fmt.Errorf("present: %w", err)
	}
	g.world.Input.EndFrame()

	g.frames++
	if g.fpsTimer.Tick(dt) {
		g.world.FPS = float64(g.frames) / float64(g.fpsTimer.Duration)
		g.frames = 0
		g.logStats(top)
	}
	return true, nil
}

// handle resolves one platform event and forwards it to the top scene.
// It returns false when the loop must stop.
func (g *Game) handle(raw input.RawEvent) bool {
	switch raw.Kind {
	case input.RawQuit:
		g.log.Info("quit requested")
		return false

	case input.RawResize:
		g.world.Width, g.world.Height = raw.Width, raw.Height
		g.log.Debug("viewport resized", zap.Int("width", raw.Width), zap.Int("height", raw.Height))

	case input.RawMotion:
		g.dispatch(input.Event{Effect: g.pointer.Move(raw.X, raw.Y), Started: true})

	case input.RawTrigger:
		effect, ok := g.binding.Resolve(raw.Trigger)
		if !ok {
			return true
		}
		ev := input.Event{Effect: effect, Started: raw.Down}
		g.world.Input.Apply(ev)
		g.dispatch(ev)
	}
	return g.world.Scenes.Len() > 0
}

func (g *Game) dispatch(ev input.Event) {
	if top := g.world.Scenes.Top(); top != nil {
		top.Input(g.world, ev)
	}
}

func (g *Game) logStats(top scene.Scene) {
	fields := []zap.Field{
		zap.Float64("fps", g.world.FPS),
		zap.Int("width", g.world.Width),
		zap.Int("height", g.world.Height),
	}
	if r, ok := top.(statsReporter); ok {
		s := r.Stats()
		fields = append(fields,
			zap.Int("depth_steps", s.Steps),
			zap.Float32("final_z", s.FinalZ),
			zap.Int("lines", s.Lines),
		)
	}
	g.log.Debug("frame stats", fields...)
}
