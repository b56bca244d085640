package scene

import (
	"testing"

	"github.com/Faultbox/voxelspace/internal/engine/input"
)

type named string

func (named) Input(*World, input.Event) {}
func (named) Update(*World, float32)    {}
func (named) Draw(*World, Presenter)    {}

func TestStack(t *testing.T) {
	s := NewStack(named("menu"))
	if s.Len() != 1 || s.Top() != named("menu") {
		t.Fatalf("NewStack() top = %v, len %d", s.Top(), s.Len())
	}

	s.Push(named("map"))
	if s.Top() != named("map") {
		t.Errorf("Top() = %v, want map", s.Top())
	}

	if got := s.Pop(); got != named("map") {
		t.Errorf("Pop() = %v, want map", got)
	}
	if got := s.Pop(); got != named("menu") {
		t.Errorf("Pop() = %v, want menu", got)
	}
	if got := s.Pop(); got != nil {
		t.Errorf("Pop() on empty stack = %v, want nil", got)
	}
	if s.Top() != nil || s.Len() != 0 {
		t.Errorf("empty stack: Top() = %v, Len() = %d", s.Top(), s.Len())
	}
}

func TestStackClear(t *testing.T) {
	s := NewStack(named("a"), named("b"), named("c"))
	if s.Top() != named("c") {
		t.Errorf("Top() = %v, want the last scene", s.Top())
	}
	s.Clear()
	if s.Len() != 0 || s.Top() != nil {
		t.Errorf("after Clear: Len() = %d", s.Len())
	}
}
