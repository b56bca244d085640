// Package mapview is the scene that flies a camera over a terrain map.
package mapview

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/assets"
	"github.com/Faultbox/voxelspace/internal/engine/input"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/engine/timer"
	"github.com/Faultbox/voxelspace/internal/engine/voxel"
	"github.com/Faultbox/voxelspace/internal/game/scene"
	"github.com/Faultbox/voxelspace/internal/logger"
	vmath "github.com/Faultbox/voxelspace/pkg/math"
)

// statusInterval is how often the status text follows the camera, in seconds.
const statusInterval = 0.25

// Controls are input rates per second of fully deflected axis.
type Controls struct {
	Speed                  float32 // horizontal movement
	VerticalSpeed          float32 // altitude and view distance
	HeightScaleSensitivity float32
	FOVSpeed               float32 // radians
}

// DefaultControls returns the stock movement rates.
func DefaultControls() Controls {
	return Controls{
		Speed:                  75.5,
		VerticalSpeed:          150,
		HeightScaleSensitivity: 20,
		FOVSpeed:               vmath.Radians(40),
	}
}

// Config holds everything a View needs.
type Config struct {
	Loader     assets.MapLoader
	Catalog    assets.Catalog
	StartMap   int
	Defaults   voxel.Params
	Controls   Controls
	Renderer   *voxel.Renderer
	ShowStatus bool
}

// View renders one terrain map and moves the camera from input.
type View struct {
	loader   assets.MapLoader
	catalog  assets.Catalog
	defaults voxel.Params
	controls Controls
	renderer *voxel.Renderer

	mapID   int
	terrain *terrain.Map
	params  voxel.Params
	stats   voxel.Stats

	showStatus  bool
	statusDirty bool
	statusTimer timer.Timer

	log *zap.Logger
}

// New loads the start map and creates the view.
func New(cfg Config) (*View, error) {
	if cfg.Renderer == nil {
		cfg.Renderer = voxel.New(voxel.Config{})
	}
	if !cfg.Catalog.Contains(cfg.StartMap) {
		return nil, fmt.Errorf("start map %d outside 1..%d", cfg.StartMap, cfg.Catalog.Size)
	}

	m, err := cfg.Loader.LoadMap(cfg.StartMap)
	if err != nil {
		return nil, fmt.Errorf("loading start map: %w", err)
	}

	v := &View{
		loader:      cfg.Loader,
		catalog:     cfg.Catalog,
		defaults:    cfg.Defaults,
		controls:    cfg.Controls,
		renderer:    cfg.Renderer,
		mapID:       cfg.StartMap,
		terrain:     m,
		params:      cfg.Defaults,
		showStatus:  cfg.ShowStatus,
		statusDirty: true,
		statusTimer: timer.FromSeconds(statusInterval),
		log:         logger.Named("mapview"),
	}
	v.params.Normalize()
	v.log.Info("map loaded", zap.Int("map", v.mapID), zap.Int("size", m.Size()))
	return v, nil
}

// MapID returns the id of the map on screen.
func (v *View) MapID() int {
	return v.mapID
}

// Params returns the current camera.
func (v *View) Params() voxel.Params {
	return v.params
}

// Stats returns the renderer statistics of the last frame.
func (v *View) Stats() voxel.Stats {
	return v.stats
}

// Input handles buttons and pointer motion. Axes are read from the world
// state in Update.
func (v *View) Input(w *scene.World, ev input.Event) {
	switch ev.Kind {
	case input.EffectButton:
		v.handleButton(w, ev.Button, ev.Started)
	case input.EffectPointer:
		if w.Input.ButtonDown(input.ButtonGrab) {
			v.params.Rotate(ev.DX, float32(w.Height))
			v.params.Horizon += ev.DY
		}
	}
}

func (v *View) handleButton(w *scene.World, b input.Button, started bool) {
	if b == input.ButtonGrab {
		if w.Host != nil {
			w.Host.SetGrabbing(started)
		}
		return
	}
	if !started {
		return
	}

	switch b {
	case input.ButtonQuit:
		w.Scenes.Pop()
	case input.ButtonReload:
		v.switchMap(0)
	case input.ButtonNext:
		v.switchMap(1)
	case input.ButtonPrev:
		v.switchMap(-1)
	case input.ButtonToggleDebug:
		v.showStatus = !v.showStatus
		v.statusDirty = true
	}
}

// switchMap loads the map change steps away. The current map, id and camera
// stay untouched if loading fails.
func (v *View) switchMap(change int) {
	id := v.catalog.Step(v.mapID, change)
	m, err := v.loader.LoadMap(id)
	if err != nil {
		v.log.Warn("map load failed, keeping current map",
			zap.Int("map", id),
			zap.Int("current", v.mapID),
			zap.Error(err),
		)
		return
	}

	v.mapID = id
	v.terrain = m
	v.params.Reset(v.defaults)
	v.statusDirty = true
	v.log.Info("map loaded", zap.Int("map", id), zap.Int("size", m.Size()))
}

// Update integrates the held axes over dt seconds.
func (v *View) Update(w *scene.World, dt float32) {
	in := w.Input
	c := v.controls
	p := &v.params

	forward := vmath.Heading(p.Rotation)
	strafe := forward.Perp()

	p.HeightScale += in.Axis(input.AxisHeightScale) * c.HeightScaleSensitivity * dt
	p.ViewDistance += in.Axis(input.AxisViewDistance) * c.VerticalSpeed * dt
	p.Camera = p.Camera.
		Add(forward.Scale(in.Axis(input.AxisThrottle) * c.Speed * dt)).
		Add(strafe.Scale(in.Axis(input.AxisStrafe) * c.Speed * dt))
	p.Camera.Y += in.Axis(input.AxisHeight) * c.VerticalSpeed * dt
	p.FOV += in.Axis(input.AxisFOV) * c.FOVSpeed * dt
	p.Normalize()

	if v.statusTimer.Tick(dt) {
		v.statusDirty = true
	}
}

// Draw renders the map and refreshes the status text when it is due.
func (v *View) Draw(w *scene.World, out scene.Presenter) {
	width, height := out.Size()
	frame := v.renderer.Draw(v.terrain, &v.params, width, height)
	v.stats = frame.Stats

	out.Clear(frame.Clear)
	out.DrawLines(frame.Lines)

	if v.statusDirty && w.Host != nil {
		text := ""
		if v.showStatus {
			text = v.Status(w.FPS)
		}
		w.Host.SetStatus(text)
		v.statusDirty = false
	}
}

// Status formats the status text.
func (v *View) Status(fps float64) string {
	return fmt.Sprintf("FPS %.0f | map %d | %s", fps, v.mapID, v.params)
}
