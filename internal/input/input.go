// Package input maps named actions to keys and mouse buttons and exposes
// the per-frame input the game logic reads.
package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Action names a bindable input.
type Action string

const (
	ActionInteract Action = "interact"
	ActionRotate   Action = "rotate"
	ActionDrop     Action = "drop"

	ActionForward Action = "forward"
	ActionBack    Action = "back"
	ActionLeft    Action = "left"
	ActionRight   Action = "right"
	ActionJump    Action = "jump"
	ActionRun     Action = "run"
	ActionCrouch  Action = "crouch"
)

// Source is the read-only view of input the game logic polls each frame.
type Source interface {
	// Pressed reports a fresh press this frame.
	Pressed(a Action) bool
	// Held reports whether the action is down this frame.
	Held(a Action) bool
	// LookDelta returns the look axes for this frame, X right and Y up,
	// already scaled by sensitivity.
	LookDelta() rl.Vector2
	// Scroll returns this frame's vertical wheel movement.
	Scroll() float32
	// MousePosition returns the cursor position in screen pixels.
	MousePosition() rl.Vector2
}

// RaylibSource reads input from the raylib window.
type RaylibSource struct {
	Bindings    Bindings
	Sensitivity float32
}

func NewRaylibSource(bindings Bindings, sensitivity float32) *RaylibSource {
	if sensitivity <= 0 {
		sensitivity = 0.1
	}
	return &RaylibSource{Bindings: bindings, Sensitivity: sensitivity}
}

func (s *RaylibSource) Pressed(a Action) bool {
	b, ok := s.Bindings[a]
	if !ok {
		return false
	}
	if b.IsMouse {
		return rl.IsMouseButtonPressed(b.Mouse)
	}
	return rl.IsKeyPressed(b.Key)
}

func (s *RaylibSource) Held(a Action) bool {
	b, ok := s.Bindings[a]
	if !ok {
		return false
	}
	if b.IsMouse {
		return rl.IsMouseButtonDown(b.Mouse)
	}
	return rl.IsKeyDown(b.Key)
}

func (s *RaylibSource) LookDelta() rl.Vector2 {
	d := rl.GetMouseDelta()
	// Screen Y grows downward; look Y is positive upward.
	return rl.Vector2{X: d.X * s.Sensitivity, Y: -d.Y * s.Sensitivity}
}

func (s *RaylibSource) Scroll() float32 {
	return rl.GetMouseWheelMove()
}

func (s *RaylibSource) MousePosition() rl.Vector2 {
	return rl.GetMousePosition()
}
