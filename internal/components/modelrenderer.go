package components

import (
	"examine3d/internal/assets"
	"examine3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Drawable is implemented by components the renderer draws.
type Drawable interface {
	engine.Component
	Draw()
}

type ModelRenderer struct {
	engine.BaseComponent
	Model rl.Model
	Color rl.Color
	// Emissive brightens the model and outlines it in EmissionColor.
	Emissive      bool
	EmissionColor rl.Color

	// Where the model came from, kept for saving the scene. FilePath is set
	// for models owned by the asset manager; otherwise MeshType and
	// MeshSize describe a generated mesh.
	FilePath string
	MeshType string
	MeshSize []float32
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model:         model,
		Color:         color,
		EmissionColor: rl.Gold,
	}
}

func NewModelRendererFromFile(path string, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model:         assets.LoadModel(path),
		Color:         color,
		EmissionColor: rl.Gold,
		FilePath:      path,
	}
}

// SetEmission turns the emission highlight on or off.
func (m *ModelRenderer) SetEmission(on bool) {
	m.Emissive = on
}

// WorldMatrix combines the owner's world scale, rotation and position.
func (m *ModelRenderer) WorldMatrix() rl.Matrix {
	g := m.GetGameObject()
	scale := g.WorldScale()
	pos := g.WorldPosition()
	scaleMatrix := rl.MatrixScale(scale.X, scale.Y, scale.Z)
	transMatrix := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)
	// scale -> rotate -> translate
	return rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, engine.RotationMatrix(g.WorldRotation())), transMatrix)
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() || m.Model.Materials == nil {
		return
	}

	color := m.Color
	if m.Emissive {
		color = rl.ColorBrightness(color, 0.4)
	}
	m.Model.Materials.Maps.Color = color
	m.Model.Transform = m.WorldMatrix()

	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, rl.White)
	if m.Emissive {
		rl.DrawModelWires(m.Model, rl.Vector3Zero(), 1.0, m.EmissionColor)
	}
}

func (m *ModelRenderer) Unload() {
	// Only unload if not from asset manager (asset manager handles its own cleanup)
	if m.FilePath == "" {
		rl.UnloadModel(m.Model)
	}
}
