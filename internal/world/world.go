// Package world owns the loaded scene: it answers raycasts, loads and saves
// scene files and draws the scene in layers.
package world

import (
	"examine3d/internal/components"
	"examine3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

const FloorSize = 60.0

type World struct {
	Scene  *engine.Scene
	Models ModelSource
	Log    zerolog.Logger

	FloorY     float32
	FloorColor rl.Color
	floorModel rl.Model
	hasFloor   bool
}

func New(log zerolog.Logger) *World {
	w := &World{
		Scene:      engine.NewScene("Main"),
		Models:     raylibModels{},
		Log:        log,
		FloorColor: rl.LightGray,
	}
	w.Scene.World = w
	return w
}

// Initialize creates GPU resources. Call it after the window is open.
func (w *World) Initialize() {
	w.floorModel = rl.LoadModelFromMesh(rl.GenMeshPlane(FloorSize, FloorSize, 1, 1))
	w.hasFloor = true
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Raycast returns the closest hit against enabled colliders of active
// objects whose layer is in mask.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	if rl.Vector3Length(direction) < 1e-6 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var best engine.RaycastResult
	found := false
	for _, g := range w.Scene.GameObjects {
		if !mask.Has(g.Layer) || !g.ActiveInHierarchy() {
			continue
		}
		for _, c := range g.Components() {
			col, ok := c.(components.Collider)
			if !ok || !col.Enabled() {
				continue
			}
			hit, ok := col.Raycast(origin, direction, maxDistance)
			if !ok || (found && hit.Distance >= best.Distance) {
				continue
			}
			best = engine.RaycastResult{
				GameObject: g,
				Point:      hit.Point,
				Normal:     hit.Normal,
				Distance:   hit.Distance,
			}
			found = true
		}
	}
	return best, found
}

// GetCollidableObjects returns the active objects with at least one
// enabled collider.
func (w *World) GetCollidableObjects() []*engine.GameObject {
	var result []*engine.GameObject
	for _, g := range w.Scene.GameObjects {
		if !g.ActiveInHierarchy() {
			continue
		}
		for _, c := range g.Components() {
			if col, ok := c.(components.Collider); ok && col.Enabled() {
				result = append(result, g)
				break
			}
		}
	}
	return result
}

// SpawnObject adds g to the running scene and starts it.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	g.Start()
}

// Destroy removes g and its children, releasing their models.
func (w *World) Destroy(g *engine.GameObject) {
	unloadRenderers(g)
	w.Scene.RemoveGameObject(g)
}

func unloadRenderers(g *engine.GameObject) {
	for _, child := range g.Children {
		unloadRenderers(child)
	}
	if r := engine.GetComponent[*components.ModelRenderer](g); r != nil {
		r.Unload()
	}
}

// MainCamera returns the camera flagged IsMain, or else the first camera
// in the scene.
func (w *World) MainCamera() *components.Camera {
	var first *components.Camera
	for _, g := range w.Scene.GameObjects {
		cam := engine.GetComponent[*components.Camera](g)
		if cam == nil {
			continue
		}
		if cam.IsMain {
			return cam
		}
		if first == nil {
			first = cam
		}
	}
	return first
}

func (w *World) Unload() {
	for _, g := range w.Scene.GameObjects {
		if r := engine.GetComponent[*components.ModelRenderer](g); r != nil {
			r.Unload()
		}
	}
	if w.hasFloor {
		rl.UnloadModel(w.floorModel)
		w.hasFloor = false
	}
}
