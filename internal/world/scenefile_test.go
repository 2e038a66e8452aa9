package world

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"examine3d/internal/components"
	"examine3d/internal/engine"
	"examine3d/internal/examine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModels struct{}

func (fakeModels) Mesh(kind string, size []float32) (rl.Model, error) {
	if err := checkMeshSize(kind, size); err != nil {
		return rl.Model{}, err
	}
	return rl.Model{MeshCount: int32(len(size))}, nil
}

func (fakeModels) File(path string) rl.Model { return rl.Model{MaterialCount: 1} }

const studyScene = `{
  "player": { "position": [0, 0, 4], "yaw": -90 },
  "objects": [
    {
      "name": "Desk",
      "position": [0, 0.5, 0],
      "scale": [2, 1, 1],
      "components": [
        { "type": "ModelRenderer", "mesh": "cube", "meshSize": [1, 1, 1], "color": "Brown" },
        { "type": "BoxCollider", "size": [1, 1, 1] }
      ]
    },
    {
      "name": "Journal",
      "tags": ["examinable"],
      "position": [0, 1.1, 0],
      "components": [
        { "type": "ModelRenderer", "model": "assets/models/journal.glb", "color": "#8B4513", "emissionColor": "SkyBlue" },
        { "type": "BoxCollider", "size": [0.3, 0.05, 0.4] },
        { "type": "Script", "name": "Examinable", "props": {
            "name": "Journal",
            "description": "Pages stuck together.",
            "uiMode": "SidePanel",
            "inspectPoints": ["Journal Clasp"],
            "pickupSound": "pickup"
        } }
      ]
    },
    {
      "name": "Journal Clasp",
      "parent": "Journal",
      "layer": "InspectPointLayer",
      "active": false,
      "position": [0.1, 0, 0.2],
      "components": [
        { "type": "SphereCollider", "radius": 0.05 },
        { "type": "Script", "name": "InspectPoint", "props": { "text": "A tiny brass clasp." } }
      ]
    },
    {
      "name": "Broken",
      "components": [
        { "type": "ModelRenderer", "mesh": "torus", "meshSize": [1] },
        { "type": "Script", "name": "DoesNotExist" },
        { "type": "Teleporter" },
        { "type": "BoxCollider", "size": [1, 1, 1] }
      ]
    }
  ]
}`

func TestLoadSceneData(t *testing.T) {
	w := newTestWorld()
	player, err := w.LoadSceneData([]byte(studyScene))
	require.NoError(t, err)

	require.NotNil(t, player)
	assert.Equal(t, [3]float32{0, 0, 4}, player.Position)
	assert.Equal(t, float32(-90), player.Yaw)

	require.Len(t, w.Scene.GameObjects, 4)

	desk := w.Scene.FindByName("Desk")
	require.NotNil(t, desk)
	assert.Equal(t, rl.Vector3{X: 2, Y: 1, Z: 1}, desk.Transform.Scale)
	mr := engine.GetComponent[*components.ModelRenderer](desk)
	require.NotNil(t, mr)
	assert.Equal(t, rl.Brown, mr.Color)
	assert.Equal(t, "cube", mr.MeshType)
	assert.Equal(t, int32(3), mr.Model.MeshCount)

	journal := w.Scene.FindByName("Journal")
	require.NotNil(t, journal)
	assert.Equal(t, []string{"examinable"}, journal.Tags)
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, journal.Transform.Scale, "zero scale defaults to one")
	jr := engine.GetComponent[*components.ModelRenderer](journal)
	require.NotNil(t, jr)
	assert.Equal(t, "assets/models/journal.glb", jr.FilePath)
	assert.Equal(t, rl.NewColor(0x8B, 0x45, 0x13, 0xFF), jr.Color)
	assert.Equal(t, rl.SkyBlue, jr.EmissionColor)

	item := engine.GetComponent[*examine.ExaminableItem](journal)
	require.NotNil(t, item)
	assert.Equal(t, "Journal", item.Name())
	assert.Equal(t, examine.UISidePanel, item.Config.UIMode)
	assert.Equal(t, "pickup", item.Config.PickupSound)

	clasp := w.Scene.FindByName("Journal Clasp")
	require.NotNil(t, clasp)
	assert.Same(t, journal, clasp.Parent)
	assert.Equal(t, engine.LayerInspectPoint, clasp.Layer)
	assert.False(t, clasp.Active)
	point := engine.GetComponent[*examine.InspectPoint](clasp)
	require.NotNil(t, point)
	assert.Equal(t, "A tiny brass clasp.", point.Information())

	broken := w.Scene.FindByName("Broken")
	require.NotNil(t, broken)
	assert.Len(t, broken.Components(), 1, "only the valid collider survives")
	assert.NotNil(t, engine.GetComponent[*components.BoxCollider](broken))
}

func TestLoadSceneDataRejectsMalformedJSON(t *testing.T) {
	w := newTestWorld()
	_, err := w.LoadSceneData([]byte(`{"objects": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse scene")
	assert.Empty(t, w.Scene.GameObjects)
}

func TestLoadSceneUnknownParentStaysAtRoot(t *testing.T) {
	w := newTestWorld()
	_, err := w.LoadSceneData([]byte(`{"objects": [{"name": "Orphan", "parent": "Nobody"}]}`))
	require.NoError(t, err)

	orphan := w.Scene.FindByName("Orphan")
	require.NotNil(t, orphan)
	assert.Nil(t, orphan.Parent)
}

func TestLoadSceneMissingFile(t *testing.T) {
	w := newTestWorld()
	_, err := w.LoadScene(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read scene")
}

func TestSaveSceneRoundTrip(t *testing.T) {
	w := newTestWorld()
	player, err := w.LoadSceneData([]byte(studyScene))
	require.NoError(t, err)

	// The code-managed player and its camera are not saved.
	p := engine.NewGameObject("Player")
	p.AddComponent(components.NewFPSController(nil))
	camObj := engine.NewGameObject("PlayerCamera")
	camObj.AddComponent(components.NewCamera())
	p.AddChild(camObj)
	w.Scene.AddGameObject(p)
	w.Scene.AddGameObject(camObj)

	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, w.SaveScene(path, player))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var sf SceneFile
	require.NoError(t, json.Unmarshal(data, &sf))
	require.Len(t, sf.Objects, 4)
	assert.Equal(t, "Journal", sf.Objects[2].Parent)
	assert.Equal(t, "InspectPointLayer", sf.Objects[2].Layer)
	require.NotNil(t, sf.Objects[2].Active)
	assert.False(t, *sf.Objects[2].Active)
	assert.Nil(t, sf.Objects[0].Active)
	assert.Equal(t, "", sf.Objects[0].Layer)

	reloaded := newTestWorld()
	reloadedPlayer, err := reloaded.LoadScene(path)
	require.NoError(t, err)
	assert.Equal(t, player, reloadedPlayer)

	journal := reloaded.Scene.FindByName("Journal")
	require.NotNil(t, journal)
	jr := engine.GetComponent[*components.ModelRenderer](journal)
	require.NotNil(t, jr)
	assert.Equal(t, "assets/models/journal.glb", jr.FilePath)
	assert.Equal(t, rl.SkyBlue, jr.EmissionColor)

	item := engine.GetComponent[*examine.ExaminableItem](journal)
	require.NotNil(t, item)
	assert.Equal(t, "Pages stuck together.", item.Config.Description)
	assert.Equal(t, examine.UISidePanel, item.Config.UIMode)
	require.Len(t, item.Config.InspectPoints, 1)

	clasp := reloaded.Scene.FindByName("Journal Clasp")
	require.NotNil(t, clasp)
	assert.Same(t, journal, clasp.Parent)
	sc := engine.GetComponent[*components.SphereCollider](clasp)
	require.NotNil(t, sc)
	assert.Equal(t, float32(0.05), sc.Radius)
}
