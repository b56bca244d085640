// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Frontend names.
const (
	FrontendSDL      = "sdl"
	FrontendTerminal = "terminal"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Render   RenderConfig   `yaml:"render"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Frontend   string `yaml:"frontend"` // "sdl" or "terminal"
}

// RenderConfig holds raycaster settings.
type RenderConfig struct {
	Detail   float32 `yaml:"detail"`    // depth where the march step starts growing
	SkyColor string  `yaml:"sky_color"` // hex, e.g. "#35515c"
	Status   bool    `yaml:"status"`    // show the status text at startup
}

// CameraConfig holds the camera a map starts (and resets) with.
type CameraConfig struct {
	Y            float32 `yaml:"y"`
	HeightScale  float32 `yaml:"height_scale"`
	ViewDistance float32 `yaml:"view_distance"`
	Horizon      float32 `yaml:"horizon"`
	FOVDegrees   float32 `yaml:"fov_degrees"`
}

// ControlsConfig holds movement rates, per second of held input.
type ControlsConfig struct {
	Speed                  float32 `yaml:"speed"`
	VerticalSpeed          float32 `yaml:"vertical_speed"`
	HeightScaleSensitivity float32 `yaml:"height_scale_sensitivity"`
	FOVSpeedDegrees        float32 `yaml:"fov_speed_degrees"`
}

// DataConfig holds terrain asset settings.
type DataConfig struct {
	Sources       []string `yaml:"sources"`        // directories or .zip archives
	MapCount      int      `yaml:"map_count"`      // ids run 1..MapCount
	StartMap      int      `yaml:"start_map"`      // first map shown
	GeneratedSize int      `yaml:"generated_size"` // tile size when no sources are set
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			Frontend:   FrontendSDL,
		},
		Render: RenderConfig{
			Detail:   150,
			SkyColor: "#35515c",
			Status:   true,
		},
		Camera: CameraConfig{
			Y:            200,
			HeightScale:  300,
			ViewDistance: 800,
			Horizon:      100,
			FOVDegrees:   50,
		},
		Controls: ControlsConfig{
			Speed:                  75.5,
			VerticalSpeed:          150,
			HeightScaleSensitivity: 20,
			FOVSpeedDegrees:        40,
		},
		Data: DataConfig{
			MapCount:      29,
			StartMap:      3,
			GeneratedSize: 512,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// SkyColor parses Render.SkyColor.
func (c *Config) SkyColor() (colorful.Color, error) {
	col, err := colorful.Hex(c.Render.SkyColor)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("render.sky_color %q: %w", c.Render.SkyColor, err)
	}
	return col, nil
}

// Validate reports settings the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	switch c.Graphics.Frontend {
	case FrontendSDL, FrontendTerminal:
	default:
		errs = append(errs, fmt.Errorf("graphics.frontend %q: want %q or %q", c.Graphics.Frontend, FrontendSDL, FrontendTerminal))
	}
	if c.Render.Detail <= 0 {
		errs = append(errs, fmt.Errorf("render.detail %v must be positive", c.Render.Detail))
	}
	if _, err := c.SkyColor(); err != nil {
		errs = append(errs, err)
	}
	if c.Data.MapCount <= 0 {
		errs = append(errs, fmt.Errorf("data.map_count %d must be positive", c.Data.MapCount))
	} else if c.Data.StartMap < 1 || c.Data.StartMap > c.Data.MapCount {
		errs = append(errs, fmt.Errorf("data.start_map %d outside 1..%d", c.Data.StartMap, c.Data.MapCount))
	}
	if c.Data.GeneratedSize <= 0 || c.Data.GeneratedSize&(c.Data.GeneratedSize-1) != 0 {
		errs = append(errs, fmt.Errorf("data.generated_size %d must be a power of two", c.Data.GeneratedSize))
	}
	return errors.Join(errs...)
}
