// Package player hands control between first-person movement and the
// examine system.
package player

import (
	"examine3d/internal/components"
	"examine3d/internal/engine"
	"examine3d/internal/examine"

	"github.com/rs/zerolog"
)

// Crosshair is the part of the overlay the gate drives.
type Crosshair interface {
	SetCrosshairVisible(on bool)
}

// Gate implements examine.PlayerGate. Any of its collaborators may be nil.
type Gate struct {
	Controller *components.FPSController
	Interactor *examine.GazeInteractor
	Crosshair  Crosshair
	Log        zerolog.Logger

	blurred bool
}

// NewGate finds the FPS controller and gaze interactor on player.
func NewGate(player *engine.GameObject, crosshair Crosshair, log zerolog.Logger) *Gate {
	return &Gate{
		Controller: engine.GetComponent[*components.FPSController](player),
		Interactor: engine.GetComponent[*examine.GazeInteractor](player),
		Crosshair:  crosshair,
		Log:        log,
	}
}

// SetPlayerAndLookInputEnabled gives movement, look and gaze back to the
// player, or takes them away while an item is examined.
func (g *Gate) SetPlayerAndLookInputEnabled(enabled bool) {
	if g.Controller != nil {
		engine.SetEnabled(g.Controller, enabled)
	}
	if g.Interactor != nil {
		engine.SetEnabled(g.Interactor, enabled)
	}
	if g.Crosshair != nil {
		g.Crosshair.SetCrosshairVisible(enabled)
	}
	g.blurred = !enabled
	g.Log.Debug().Bool("enabled", enabled).Msg("player input")
}

// Blurred reports whether the world behind the examined item should be
// dimmed.
func (g *Gate) Blurred() bool {
	return g.blurred
}
