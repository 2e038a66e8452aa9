package world

import (
	"encoding/json"
	"fmt"
	"os"

	"examine3d/internal/assets"
	"examine3d/internal/components"
	"examine3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Player  *PlayerDef  `json:"player,omitempty"`
	Objects []ObjectDef `json:"objects"`
}

// PlayerDef is where the code-managed player starts.
type PlayerDef struct {
	Position [3]float32 `json:"position"`
	Yaw      float32    `json:"yaw"`
	Pitch    float32    `json:"pitch,omitempty"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Layer      string            `json:"layer,omitempty"`
	Active     *bool             `json:"active,omitempty"`
	Parent     string            `json:"parent,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type modelRendererDef struct {
	Type          string    `json:"type"`
	Mesh          string    `json:"mesh,omitempty"`
	MeshSize      []float32 `json:"meshSize,omitempty"`
	Model         string    `json:"model,omitempty"`
	Color         string    `json:"color"`
	EmissionColor string    `json:"emissionColor,omitempty"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type sphereColliderDef struct {
	Type   string     `json:"type"`
	Radius float32    `json:"radius"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

func vec3(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func arr3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

// LoadScene reads a scene file and adds its objects to the scene. The
// objects are not started.
func (w *World) LoadScene(path string) (*PlayerDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	player, err := w.LoadSceneData(data)
	if err != nil {
		return nil, err
	}
	w.Log.Info().Str("path", path).Int("objects", len(w.Scene.GameObjects)).Msg("scene loaded")
	return player, nil
}

// LoadSceneData is LoadScene for an in-memory file. Bad components are
// logged and skipped; only a malformed document is an error.
func (w *World) LoadSceneData(data []byte) (*PlayerDef, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	created := make([]*engine.GameObject, len(sf.Objects))
	byName := make(map[string]*engine.GameObject, len(sf.Objects))

	for i, objDef := range sf.Objects {
		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		g.Layer = engine.LayerByName(objDef.Layer)
		if objDef.Active != nil {
			g.Active = *objDef.Active
		}
		g.Transform.Position = vec3(objDef.Position)
		g.Transform.Rotation = vec3(objDef.Rotation)

		// Default scale to 1 if zero
		if objDef.Scale == [3]float32{} {
			g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
		} else {
			g.Transform.Scale = vec3(objDef.Scale)
		}

		for _, raw := range objDef.Components {
			if err := w.loadComponent(g, raw); err != nil {
				w.Log.Warn().Err(err).Str("object", objDef.Name).Msg("skipping component")
			}
		}

		created[i] = g
		if _, dup := byName[objDef.Name]; !dup {
			byName[objDef.Name] = g
		}
	}

	for i, objDef := range sf.Objects {
		if objDef.Parent == "" {
			continue
		}
		parent, ok := byName[objDef.Parent]
		if !ok || parent == created[i] {
			w.Log.Warn().Str("object", objDef.Name).Str("parent", objDef.Parent).Msg("unknown parent")
			continue
		}
		parent.AddChild(created[i])
	}

	for _, g := range created {
		w.Scene.AddGameObject(g)
	}
	return sf.Player, nil
}

func (w *World) loadComponent(g *engine.GameObject, raw json.RawMessage) error {
	var header componentHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return fmt.Errorf("parse component: %w", err)
	}

	switch header.Type {
	case "ModelRenderer":
		return w.loadModelRenderer(g, raw)
	case "BoxCollider":
		return loadBoxCollider(g, raw)
	case "SphereCollider":
		return loadSphereCollider(g, raw)
	case "Script":
		return loadScript(g, raw)
	}
	return fmt.Errorf("unknown component type %q", header.Type)
}

func (w *World) loadModelRenderer(g *engine.GameObject, raw json.RawMessage) error {
	var def modelRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("parse ModelRenderer: %w", err)
	}

	color := rl.White
	if def.Color != "" {
		c, err := assets.ParseColor(def.Color)
		if err != nil {
			return fmt.Errorf("ModelRenderer: %w", err)
		}
		color = c
	}

	var renderer *components.ModelRenderer
	if def.Model != "" {
		renderer = components.NewModelRenderer(w.Models.File(def.Model), color)
		renderer.FilePath = def.Model
	} else {
		model, err := w.Models.Mesh(def.Mesh, def.MeshSize)
		if err != nil {
			return fmt.Errorf("ModelRenderer: %w", err)
		}
		renderer = components.NewModelRenderer(model, color)
		renderer.MeshType = def.Mesh
		renderer.MeshSize = def.MeshSize
	}

	if def.EmissionColor != "" {
		c, err := assets.ParseColor(def.EmissionColor)
		if err != nil {
			return fmt.Errorf("ModelRenderer emission: %w", err)
		}
		renderer.EmissionColor = c
	}

	g.AddComponent(renderer)
	return nil
}

func loadBoxCollider(g *engine.GameObject, raw json.RawMessage) error {
	var def boxColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("parse BoxCollider: %w", err)
	}
	col := components.NewBoxCollider(vec3(def.Size))
	col.Offset = vec3(def.Offset)
	g.AddComponent(col)
	return nil
}

func loadSphereCollider(g *engine.GameObject, raw json.RawMessage) error {
	var def sphereColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("parse SphereCollider: %w", err)
	}
	col := components.NewSphereCollider(def.Radius)
	col.Offset = vec3(def.Offset)
	g.AddComponent(col)
	return nil
}

func loadScript(g *engine.GameObject, raw json.RawMessage) error {
	var def scriptDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("parse Script: %w", err)
	}
	comp := engine.CreateScript(def.Name, def.Props)
	if comp == nil {
		return fmt.Errorf("unknown script %q", def.Name)
	}
	g.AddComponent(comp)
	return nil
}

// --- Saving ---

// SaveScene writes the scene back to path. The player and anything
// parented to it are code-managed and left out.
func (w *World) SaveScene(path string, player *PlayerDef) error {
	data, err := w.MarshalScene(player)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

func (w *World) MarshalScene(player *PlayerDef) ([]byte, error) {
	sf := SceneFile{Player: player}

	for _, g := range w.Scene.GameObjects {
		if ownedByPlayer(g) {
			continue
		}

		objDef := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: arr3(g.Transform.Position),
			Rotation: arr3(g.Transform.Rotation),
			Scale:    arr3(g.Transform.Scale),
		}
		if g.Layer != engine.LayerDefault {
			objDef.Layer = g.Layer.String()
		}
		if !g.Active {
			inactive := false
			objDef.Active = &inactive
		}
		if g.Parent != nil {
			objDef.Parent = g.Parent.Name
		}

		for _, c := range g.Components() {
			if raw := serializeComponent(c); raw != nil {
				objDef.Components = append(objDef.Components, raw)
			}
		}

		sf.Objects = append(sf.Objects, objDef)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	return data, nil
}

func ownedByPlayer(g *engine.GameObject) bool {
	for obj := g; obj != nil; obj = obj.Parent {
		if engine.GetComponent[*components.FPSController](obj) != nil {
			return true
		}
	}
	return false
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.ModelRenderer:
		d := modelRendererDef{
			Type:  "ModelRenderer",
			Color: assets.ColorName(comp.Color),
		}
		if comp.FilePath != "" {
			d.Model = comp.FilePath
		} else {
			d.Mesh = comp.MeshType
			d.MeshSize = comp.MeshSize
		}
		if comp.EmissionColor != rl.Gold {
			d.EmissionColor = assets.ColorName(comp.EmissionColor)
		}
		def = d

	case *components.BoxCollider:
		def = boxColliderDef{
			Type:   "BoxCollider",
			Size:   arr3(comp.Size),
			Offset: arr3(comp.Offset),
		}

	case *components.SphereCollider:
		def = sphereColliderDef{
			Type:   "SphereCollider",
			Radius: comp.Radius,
			Offset: arr3(comp.Offset),
		}

	default:
		if name, props, ok := engine.SerializeScript(c); ok {
			def = scriptDef{Type: "Script", Name: name, Props: props}
		} else {
			return nil
		}
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
