// Package examine implements first-person object examination: aiming at an
// item, lifting it in front of the camera, turning and zooming it, poking
// its inspect points and putting it back where it came from.
package examine

import (
	"fmt"
	"strings"

	"examine3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// State is where an item is in its examine cycle.
type State int

const (
	StateIdle State = iota
	StateExamining
	// StateReturning means the item was dropped and is still travelling
	// back to its original position.
	StateReturning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateExamining:
		return "Examining"
	case StateReturning:
		return "Returning"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// UIMode selects how an item's name and description are presented while
// it is examined.
type UIMode int

const (
	// UINone shows only a close button.
	UINone UIMode = iota
	// UIBasicPanel shows name and description in a lower panel.
	UIBasicPanel
	// UISidePanel shows name and description in a right-hand panel.
	UISidePanel
)

var uiModeNames = map[UIMode]string{
	UINone:       "None",
	UIBasicPanel: "BasicPanel",
	UISidePanel:  "SidePanel",
}

func (m UIMode) String() string {
	if name, ok := uiModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("UIMode(%d)", int(m))
}

// ParseUIMode accepts the names produced by String, case-insensitively.
// An empty name is UINone.
func ParseUIMode(name string) (UIMode, error) {
	if name == "" {
		return UINone, nil
	}
	for mode, n := range uiModeNames {
		if strings.EqualFold(n, name) {
			return mode, nil
		}
	}
	return UINone, fmt.Errorf("unknown ui mode %q", name)
}

// TextStyle describes how one line of panel text is drawn. An empty Font
// means the presenter's default font.
type TextStyle struct {
	Size  float32
	Font  string
	Color rl.Color
}

// ItemConfig is the fixed setup of an examinable item.
type ItemConfig struct {
	RotationSpeed   float32
	InvertRotation  bool
	ZoomMin         float32
	ZoomMax         float32
	ZoomSensitivity float32
	InitialZoom     float32
	// PoseDuration is how long the item takes to travel to and from the
	// examine anchor, in seconds.
	PoseDuration float32
	// InitialRotation is added to the camera-facing orientation on pickup,
	// in Euler degrees.
	InitialRotation  rl.Vector3
	HorizontalOffset float32
	VerticalOffset   float32

	// EmptyParent marks an item with no renderer of its own; only its
	// children glow when highlighted.
	EmptyParent   bool
	Children      []engine.GameObjectRef
	InspectPoints []engine.GameObjectRef

	EmissionHighlight bool
	NameHighlight     bool

	UIMode           UIMode
	Name             string
	Description      string
	NameStyle        TextStyle
	DescriptionStyle TextStyle

	PickupSound string
	DropSound   string
}

// DefaultItemConfig returns the stock tuning used by scene files that leave
// fields out.
func DefaultItemConfig() ItemConfig {
	return ItemConfig{
		RotationSpeed:     5,
		ZoomMin:           0.5,
		ZoomMax:           2,
		ZoomSensitivity:   0.1,
		InitialZoom:       1,
		PoseDuration:      0.2,
		EmissionHighlight: true,
		NameHighlight:     true,
		NameStyle:         TextStyle{Size: 32, Color: rl.White},
		DescriptionStyle:  TextStyle{Size: 30, Color: rl.White},
	}
}

// clampZoom keeps z inside the configured zoom range.
func (c ItemConfig) clampZoom(z float32) float32 {
	lo, hi := c.ZoomMin, c.ZoomMax
	if lo > hi {
		lo, hi = hi, lo
	}
	if z < lo {
		return lo
	}
	if z > hi {
		return hi
	}
	return z
}
