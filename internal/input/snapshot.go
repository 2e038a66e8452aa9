package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Snapshot is a fixed input frame. It implements Source and is what tests
// and replays feed into the game logic.
type Snapshot struct {
	PressedActions map[Action]bool
	HeldActions    map[Action]bool
	Look           rl.Vector2
	Wheel          float32
	Mouse          rl.Vector2
}

// Press marks a as freshly pressed and held this frame.
func (s *Snapshot) Press(a Action) *Snapshot {
	if s.PressedActions == nil {
		s.PressedActions = make(map[Action]bool)
	}
	s.PressedActions[a] = true
	return s.Hold(a)
}

// Hold marks a as held this frame.
func (s *Snapshot) Hold(a Action) *Snapshot {
	if s.HeldActions == nil {
		s.HeldActions = make(map[Action]bool)
	}
	s.HeldActions[a] = true
	return s
}

// Reset clears the frame back to no input.
func (s *Snapshot) Reset() {
	*s = Snapshot{Mouse: s.Mouse}
}

func (s *Snapshot) Pressed(a Action) bool     { return s.PressedActions[a] }
func (s *Snapshot) Held(a Action) bool        { return s.HeldActions[a] }
func (s *Snapshot) LookDelta() rl.Vector2     { return s.Look }
func (s *Snapshot) Scroll() float32           { return s.Wheel }
func (s *Snapshot) MousePosition() rl.Vector2 { return s.Mouse }
