package main

import (
	"fmt"

	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/engine/input"
	"github.com/Faultbox/voxelspace/internal/engine/renderer"
	"github.com/Faultbox/voxelspace/internal/engine/window"
)

// sdlFrontend joins the SDL window and the GL presenter.
type sdlFrontend struct {
	*renderer.Renderer
	win *window.Window
}

func newSDLFrontend(cfg *config.Config) (*sdlFrontend, error) {
	// Create window (this also creates the OpenGL context)
	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := win.Size()
	rend, err := renderer.New(renderer.Config{Width: w, Height: h})
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	f := &sdlFrontend{Renderer: rend, win: win}
	f.resize(w, h)
	return f, nil
}

func (f *sdlFrontend) resize(width, height int) {
	dw, dh := f.win.DrawableSize()
	f.Renderer.Resize(width, height, dw, dh)
}

// PollEvents forwards window events, resizing the raster on the way.
func (f *sdlFrontend) PollEvents(dst []input.RawEvent) []input.RawEvent {
	n := len(dst)
	dst = f.win.PollEvents(dst)
	for _, ev := range dst[n:] {
		if ev.Kind == input.RawResize {
			f.resize(ev.Width, ev.Height)
		}
	}
	return dst
}

// Present draws the raster and swaps buffers.
func (f *sdlFrontend) Present() error {
	if err := f.Renderer.Present(); err != nil {
		return err
	}
	f.win.SwapBuffers()
	return nil
}

func (f *sdlFrontend) SetStatus(text string) {
	f.win.SetStatus(text)
}

func (f *sdlFrontend) SetGrabbing(grabbing bool) {
	f.win.SetGrabbing(grabbing)
}

func (f *sdlFrontend) Close() {
	f.Renderer.Close()
	f.win.Close()
}
