package examine

import (
	"encoding/json"
	"errors"
	"testing"

	"examine3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const examinableJSON = `{
	"name": "Pocket Watch",
	"description": "Still ticking.",
	"uiMode": "SidePanel",
	"zoomRange": [0.75, 1.5],
	"initialZoom": 1.25,
	"initialRotation": [0, 90, 0],
	"children": ["Chain"],
	"inspectPoints": ["Lid"],
	"invertRotation": true,
	"pickupSound": "pickup",
	"nameStyle": {"size": 40, "font": "serif", "color": "#FFD700"}
}`

func decodeProps(t *testing.T, s string) map[string]any {
	t.Helper()
	var props map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &props))
	return props
}

func TestExaminableFactory(t *testing.T) {
	c := engine.CreateScript("Examinable", decodeProps(t, examinableJSON))
	it, ok := c.(*ExaminableItem)
	require.True(t, ok)
	cfg := it.Config

	assert.Equal(t, "Pocket Watch", cfg.Name)
	assert.Equal(t, UISidePanel, cfg.UIMode)
	assert.Equal(t, float32(0.75), cfg.ZoomMin)
	assert.Equal(t, float32(1.5), cfg.ZoomMax)
	assert.Equal(t, float32(1.25), cfg.InitialZoom)
	assert.Equal(t, rl.Vector3{Y: 90}, cfg.InitialRotation)
	assert.Equal(t, []engine.GameObjectRef{engine.Ref("Chain")}, cfg.Children)
	assert.Equal(t, []engine.GameObjectRef{engine.Ref("Lid")}, cfg.InspectPoints)
	assert.True(t, cfg.InvertRotation)
	assert.Equal(t, TextStyle{Size: 40, Font: "serif", Color: rl.Color{R: 255, G: 215, A: 255}}, cfg.NameStyle)
	assert.Equal(t, DefaultItemConfig().DescriptionStyle, cfg.DescriptionStyle)
	assert.Equal(t, float32(5), cfg.RotationSpeed, "unset fields keep defaults")
	assert.Empty(t, it.Problems())
}

func TestExaminableFactoryRecordsBadValues(t *testing.T) {
	props := decodeProps(t, `{"name": "Box", "uiMode": "Hologram", "descriptionStyle": {"color": "plaid"}}`)

	it := engine.CreateScript("Examinable", props).(*ExaminableItem)

	require.Len(t, it.Problems(), 2)
	assert.Equal(t, UINone, it.Config.UIMode)
	var cerr *ConfigError
	require.True(t, errors.As(it.Problems()[0], &cerr))
	assert.Equal(t, "uiMode", cerr.Field)
}

func TestExaminableSerializerRoundTrip(t *testing.T) {
	orig := engine.CreateScript("Examinable", decodeProps(t, examinableJSON)).(*ExaminableItem)

	name, props, ok := engine.SerializeScript(orig)
	require.True(t, ok)
	assert.Equal(t, "Examinable", name)

	raw, err := json.Marshal(props)
	require.NoError(t, err)
	back := engine.CreateScript(name, decodeProps(t, string(raw))).(*ExaminableItem)

	assert.Equal(t, orig.Config, back.Config)
}

func TestInspectPointAndInteractorFactories(t *testing.T) {
	p := engine.CreateScript("InspectPoint", map[string]any{"text": "Scratched initials"}).(*InspectPoint)
	assert.Equal(t, "Scratched initials", p.Information())

	fired := false
	p.OnInteract.AddListener(func() { fired = true })
	p.Interact()
	assert.True(t, fired)

	gi := engine.CreateScript("GazeInteractor", map[string]any{}).(*GazeInteractor)
	assert.Equal(t, float32(DefaultInteractDistance), gi.InteractDistance)
}

func TestInspectPointAuthoredActions(t *testing.T) {
	scene := engine.NewScene("desk")
	note := engine.NewGameObject("Folded Note")
	note.Active = false
	scene.AddGameObject(note)

	p := engine.CreateScript("InspectPoint", map[string]any{
		"text":       "A bent clasp.",
		"sound":      "click",
		"toggle":     "Folded Note",
		"revealText": "The clasp springs open.",
	}).(*InspectPoint)
	clasp := engine.NewGameObject("Clasp")
	clasp.AddComponent(p)
	scene.AddGameObject(clasp)
	sounds := &fakeSounds{loaded: map[string]bool{"click": true}}
	p.svc = &Services{Sounds: sounds}

	p.Interact()
	assert.Equal(t, []string{"click"}, sounds.played)
	assert.True(t, note.Active)
	assert.Equal(t, "The clasp springs open.", p.Information())

	p.Interact()
	assert.Len(t, sounds.played, 2)
	assert.False(t, note.Active, "toggle flips back")

	_, props, ok := engine.SerializeScript(p)
	require.True(t, ok)
	assert.Equal(t, "click", props["sound"])
	assert.Equal(t, "Folded Note", props["toggle"])
	assert.Equal(t, "The clasp springs open.", props["revealText"])
}

func TestInspectPointWithoutActionsHasNoListener(t *testing.T) {
	p := engine.CreateScript("InspectPoint", map[string]any{"text": "Plain"}).(*InspectPoint)
	assert.Zero(t, p.OnInteract.Listeners())
	_, props, ok := engine.SerializeScript(p)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"text": "Plain"}, props)
}

func TestBindScene(t *testing.T) {
	scene := engine.NewScene("bind")
	a := engine.NewGameObject("A")
	a.AddComponent(NewExaminableItem(testConfig()))
	b := engine.NewGameObject("B")
	b.AddComponent(NewGazeInteractor())
	scene.AddGameObject(a)
	scene.AddGameObject(b)
	svc := &Services{}

	items, interactors := BindScene(scene, svc)

	require.Len(t, items, 1)
	require.Len(t, interactors, 1)
	assert.Same(t, svc, items[0].svc)
	assert.Same(t, svc, interactors[0].svc)
}
