package examine

import (
	"examine3d/internal/engine"
	"examine3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// Presenter draws the examine UI. Calls describe the desired state; the
// presenter keeps it until told otherwise.
type Presenter interface {
	ShowBasicPanel(name, description string, show bool)
	ShowSidePanel(name, description string, show bool)
	SetPanelTextStyle(mode UIMode, name, description TextStyle)
	ShowCloseAffordance(show bool)
	// SetNameHighlight shows the aimed-at item's name; highlighted adds
	// the interact prompt.
	SetNameHighlight(name string, show, highlighted bool)
	ShowHelpPrompt(show bool)
	SetInspectAnchor(show bool, screenPos rl.Vector2)
	SetInspectText(text string)
	SetCrosshairHighlight(on bool)
	SetCrosshairVisible(on bool)
}

// PlayerGate hands control between the player and the examine system.
type PlayerGate interface {
	SetPlayerAndLookInputEnabled(enabled bool)
}

// SoundPlayer plays sounds by handle. An empty handle is never played.
type SoundPlayer interface {
	PlaySound(handle string)
	HasSound(handle string) bool
}

// FontSet answers whether a named font is available.
type FontSet interface {
	HasFont(name string) bool
}

// Viewer is the camera the examine system aims with.
type Viewer interface {
	Position() rl.Vector3
	Forward() rl.Vector3
	Up() rl.Vector3
	Right() rl.Vector3
	ScreenPointToRay(p rl.Vector2) rl.Ray
	WorldToScreen(p rl.Vector3) rl.Vector2
}

// Services are the collaborators shared by every examinable item and the
// gaze interactor in a scene. Nil Sounds or Fonts disable the matching
// checks and playback.
type Services struct {
	Presenter Presenter
	Gate      PlayerGate
	Sounds    SoundPlayer
	Fonts     FontSet
	Input     input.Source
	Viewer    Viewer
	Raycaster engine.Raycaster
	Log       zerolog.Logger

	// InspectDistance bounds the cursor ray used for inspect points.
	InspectDistance float32
}

const (
	DefaultInteractDistance = 5
	DefaultInspectDistance  = 25

	inspectArmDelay = 0.1
	inspectDebounce = 1.0
)

func (s *Services) inspectDistance() float32 {
	if s.InspectDistance > 0 {
		return s.InspectDistance
	}
	return DefaultInspectDistance
}

func (s *Services) playSound(handle string) {
	if handle == "" || s.Sounds == nil {
		return
	}
	s.Sounds.PlaySound(handle)
}

// anchorWorld converts a camera-local offset (right, up, forward) into a
// world position.
func (s *Services) anchorWorld(local rl.Vector3) rl.Vector3 {
	v := s.Viewer
	p := v.Position()
	p = rl.Vector3Add(p, rl.Vector3Scale(v.Right(), local.X))
	p = rl.Vector3Add(p, rl.Vector3Scale(v.Up(), local.Y))
	return rl.Vector3Add(p, rl.Vector3Scale(v.Forward(), local.Z))
}
