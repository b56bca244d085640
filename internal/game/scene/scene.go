// Package scene implements the scene stack the game loop drives.
package scene

import (
	"github.com/Faultbox/voxelspace/internal/engine/input"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/engine/voxel"
)

// Presenter receives the draw calls of a frame.
type Presenter interface {
	Clear(c terrain.Color)
	DrawLines(lines []voxel.Line)
	Size() (width, height int)
}

// Host is the part of the frontend scenes may control.
type Host interface {
	SetGrabbing(grabbing bool)
	SetStatus(text string)
}

// World is the state shared by all scenes.
type World struct {
	Input  *input.State
	Scenes *Stack
	Host   Host

	// Viewport is the size of the last presented frame.
	Width, Height int

	// FPS is the frame rate measured over the last second.
	FPS float64
}

// Scene is one screen of the application. Only the top scene of the stack
// receives input and frames.
type Scene interface {
	// Input handles one logical event.
	Input(w *World, ev input.Event)

	// Update advances the scene by dt seconds.
	Update(w *World, dt float32)

	// Draw renders the scene.
	Draw(w *World, out Presenter)
}

// Stack is a LIFO of scenes.
type Stack struct {
	scenes []Scene
}

// NewStack creates a stack holding the given scenes, the last on top.
func NewStack(scenes ...Scene) *Stack {
	return &Stack{scenes: scenes}
}

// Push puts sc on top.
func (s *Stack) Push(sc Scene) {
	s.scenes = append(s.scenes, sc)
}

// Pop removes and returns the top scene, or nil if the stack is empty.
func (s *Stack) Pop() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	top := s.scenes[len(s.scenes)-1]
	s.scenes[len(s.scenes)-1] = nil
	s.scenes = s.scenes[:len(s.scenes)-1]
	return top
}

// Top returns the top scene, or nil if the stack is empty.
func (s *Stack) Top() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	return s.scenes[len(s.scenes)-1]
}

// Len returns the number of scenes.
func (s *Stack) Len() int {
	return len(s.scenes)
}

// Clear removes every scene.
func (s *Stack) Clear() {
	clear(s.scenes)
	s.scenes = s.scenes[:0]
}
