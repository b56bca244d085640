// Package main is the entry point for the voxel space terrain viewer.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/assets"
	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/engine/input"
	"github.com/Faultbox/voxelspace/internal/engine/term"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/engine/voxel"
	"github.com/Faultbox/voxelspace/internal/engine/window"
	"github.com/Faultbox/voxelspace/internal/game"
	"github.com/Faultbox/voxelspace/internal/game/mapview"
	"github.com/Faultbox/voxelspace/internal/game/scene"
	"github.com/Faultbox/voxelspace/internal/logger"
	vmath "github.com/Faultbox/voxelspace/pkg/math"
)

const windowTitle = "Voxel Space"

// terminalFrameTime caps the terminal frontend, which has no vsync.
const terminalFrameTime = time.Second / 30

func init() {
	// SDL and OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.WriteConfig() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Wrote", config.DefaultPath())
		return
	}

	if err := initLogger(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
	logger.Sync()
}

// initLogger keeps console logging off in terminal mode, where stdout belongs
// to the screen.
func initLogger(cfg *config.Config) error {
	if cfg.Graphics.Frontend != config.FrontendTerminal {
		return logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	}
	path := cfg.Logging.LogFile
	if path == "" {
		path = filepath.Join(config.ConfigDir(), "voxelspace.log")
	}
	return logger.InitWithFileConfig(cfg.Logging.Level, logger.DefaultFileConfig(path), false)
}

func run(cfg *config.Config) error {
	logger.Info("=== Voxel Space ===",
		zap.String("frontend", cfg.Graphics.Frontend),
		zap.Int("start_map", cfg.Data.StartMap),
		zap.Strings("sources", cfg.Data.Sources),
	)
	logger.Sugar.Debugf("Config: %+v", cfg)

	sky, err := cfg.SkyColor()
	if err != nil {
		return err
	}
	r, g, b := sky.RGB255()
	rend := voxel.New(voxel.Config{Detail: cfg.Render.Detail, Sky: terrain.RGB(r, g, b)})
	logger.Debug("renderer ready", zap.Float32("detail", rend.Detail()))

	loader, closeLoader, err := assets.NewLoader(cfg.Data.Sources, cfg.Data.GeneratedSize)
	if err != nil {
		return fmt.Errorf("opening map sources: %w", err)
	}
	defer closeLoader()

	view, err := mapview.New(mapview.Config{
		Loader:     loader,
		Catalog:    assets.Catalog{Size: cfg.Data.MapCount},
		StartMap:   cfg.Data.StartMap,
		Defaults:   defaultParams(cfg),
		Controls:   controls(cfg),
		Renderer:   rend,
		ShowStatus: cfg.Render.Status,
	})
	if err != nil {
		return err
	}

	var (
		frontend game.Frontend
		binding  *input.Binding
		loopCfg  game.Config
	)
	switch cfg.Graphics.Frontend {
	case config.FrontendTerminal:
		binding = term.DefaultBinding()
		t, err := term.New(term.Config{Binding: binding})
		if err != nil {
			return fmt.Errorf("failed to open terminal: %w", err)
		}
		defer t.Close()
		frontend = t
		loopCfg.FrameLimit = terminalFrameTime
	default:
		f, err := newSDLFrontend(cfg)
		if err != nil {
			return err
		}
		defer f.Close()
		frontend, binding = f, window.DefaultBinding()
	}

	return game.New(loopCfg, frontend, binding, scene.NewStack(view)).Run()
}

// defaultParams builds the camera every map starts with.
func defaultParams(cfg *config.Config) voxel.Params {
	p := voxel.DefaultParams()
	p.Camera.Y = cfg.Camera.Y
	p.HeightScale = cfg.Camera.HeightScale
	p.ViewDistance = cfg.Camera.ViewDistance
	p.Horizon = cfg.Camera.Horizon
	p.FOV = vmath.Radians(cfg.Camera.FOVDegrees)
	p.Normalize()
	return p
}

func controls(cfg *config.Config) mapview.Controls {
	return mapview.Controls{
		Speed:                  cfg.Controls.Speed,
		VerticalSpeed:          cfg.Controls.VerticalSpeed,
		HeightScaleSensitivity: cfg.Controls.HeightScaleSensitivity,
		FOVSpeed:               vmath.Radians(cfg.Controls.FOVSpeedDegrees),
	}
}
