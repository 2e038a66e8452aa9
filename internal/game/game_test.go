package game

import (
	"testing"

	"examine3d/internal/config"
	"examine3d/internal/engine"
	"examine3d/internal/examine"
	"examine3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flatModels struct{}

func (flatModels) Mesh(kind string, size []float32) (rl.Model, error) { return rl.Model{}, nil }
func (flatModels) File(path string) rl.Model                          { return rl.Model{} }

const testScene = `{
  "player": { "position": [0, 0, 0], "yaw": -90 },
  "objects": [
    {
      "name": "Lantern",
      "position": [0, 1.7, -3],
      "components": [
        { "type": "BoxCollider", "size": [0.5, 0.5, 0.5] },
        { "type": "Script", "name": "Examinable", "props": {
            "name": "Old Lantern",
            "description": "Still smells of oil.",
            "poseDuration": 0.25
        } }
      ]
    }
  ]
}`

func newTestGame(t *testing.T) (*Game, *input.Snapshot) {
	t.Helper()
	t.Cleanup(viper.Reset)

	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	g := New(cfg, zerolog.Nop())
	snap := &input.Snapshot{}
	g.Input = snap
	g.Overlay.CursorLock = nil
	g.World.Models = flatModels{}

	spawn, err := g.World.LoadSceneData([]byte(testScene))
	require.NoError(t, err)
	g.Setup(spawn)
	return g, snap
}

func frame(g *Game, snap *input.Snapshot, dt float32) {
	g.Step(dt)
	snap.Reset()
}

func TestSetupCreatesPlayerAndBindsScene(t *testing.T) {
	g, _ := newTestGame(t)

	require.NotNil(t, g.Player)
	assert.Same(t, g.Player, g.World.Scene.FindByName("Player"))
	assert.True(t, g.Camera.IsMain)
	assert.Same(t, g.Camera, g.World.MainCamera())
	require.Len(t, g.Items, 1)
	require.Len(t, g.Interactors, 1)
	assert.Equal(t, float32(5), g.Interactors[0].InteractDistance)
	assert.Same(t, g.Interactors[0], g.Gate.Interactor)
	assert.NotNil(t, g.Gate.Controller)
}

func TestLookAndInteractExaminesItem(t *testing.T) {
	g, snap := newTestGame(t)
	item := g.Items[0]

	frame(g, snap, 0.0625)
	assert.True(t, item.Highlighted(), "the lantern is straight ahead")
	assert.Equal(t, "[E] Examine Old Lantern", g.Overlay.NamePrompt())
	assert.True(t, g.Overlay.CrosshairHighlight())

	snap.Press(input.ActionInteract)
	frame(g, snap, 0.0625)

	assert.Equal(t, examine.StateExamining, item.State())
	assert.Same(t, item, g.Examined())
	assert.True(t, g.Gate.Blurred())
	assert.False(t, g.Overlay.CrosshairVisible())
	assert.Equal(t, engine.LayerExamine, item.GetGameObject().Layer)

	snap.Press(input.ActionDrop)
	frame(g, snap, 0.125)
	assert.Equal(t, examine.StateReturning, item.State())
	assert.Nil(t, g.Examined())
	assert.False(t, g.Gate.Blurred())
	assert.True(t, g.Overlay.CrosshairVisible())

	frame(g, snap, 0.125)
	frame(g, snap, 0.125)
	assert.Equal(t, examine.StateIdle, item.State())
	assert.Equal(t, rl.Vector3{Y: 1.7, Z: -3}, item.GetGameObject().Transform.Position)
}

func TestCloseButtonDropsExaminedItem(t *testing.T) {
	g, snap := newTestGame(t)
	item := g.Items[0]

	snap.Press(input.ActionInteract)
	frame(g, snap, 0.0625)
	require.Equal(t, examine.StateExamining, item.State())
	require.True(t, g.Overlay.CloseShown(), "items without a panel get a close button")

	g.Overlay.Close()
	assert.Equal(t, examine.StateReturning, item.State())
	assert.False(t, g.Overlay.CloseShown())

	assert.NotPanics(t, g.dropExamined, "nothing left to drop")
}

func TestNewAppliesConfiguredBindings(t *testing.T) {
	t.Cleanup(viper.Reset)
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	cfg.Input.Bindings = map[string]string{"interact": "F"}

	g := New(cfg, zerolog.Nop())
	src, ok := g.Input.(*input.RaylibSource)
	require.True(t, ok)
	assert.Equal(t, int32(rl.KeyF), src.Bindings[input.ActionInteract].Key)
	assert.Equal(t, int32(rl.KeyQ), src.Bindings[input.ActionDrop].Key)

	cfg.Input.Bindings = map[string]string{"interact": "NotAKey"}
	g = New(cfg, zerolog.Nop())
	src = g.Input.(*input.RaylibSource)
	assert.Equal(t, int32(rl.KeyE), src.Bindings[input.ActionInteract].Key, "bad bindings fall back to defaults")
}

func TestHelpTextShowsConfiguredRotateBinding(t *testing.T) {
	t.Cleanup(viper.Reset)
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	cfg.Input.Bindings = map[string]string{"rotate": "Mouse1", "drop": "R"}

	g := New(cfg, zerolog.Nop())

	assert.Contains(t, g.Overlay.HelpText(), "Hold RMB to rotate")
	assert.Contains(t, g.Overlay.HelpText(), "[R] Put back")
}
