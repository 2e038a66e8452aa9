package world

import (
	"fmt"

	"examine3d/internal/assets"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelSource builds the models scene files refer to.
type ModelSource interface {
	// Mesh generates a primitive: "cube" (x, y, z), "plane" (x, z) or
	// "sphere" (radius).
	Mesh(kind string, size []float32) (rl.Model, error)
	// File loads a model file through the asset cache.
	File(path string) rl.Model
}

type raylibModels struct{}

func (raylibModels) Mesh(kind string, size []float32) (rl.Model, error) {
	if err := checkMeshSize(kind, size); err != nil {
		return rl.Model{}, err
	}
	switch kind {
	case "cube":
		return rl.LoadModelFromMesh(rl.GenMeshCube(size[0], size[1], size[2])), nil
	case "plane":
		return rl.LoadModelFromMesh(rl.GenMeshPlane(size[0], size[1], 1, 1)), nil
	default:
		return rl.LoadModelFromMesh(rl.GenMeshSphere(size[0], 16, 16)), nil
	}
}

func (raylibModels) File(path string) rl.Model {
	return assets.LoadModel(path)
}

var meshArity = map[string]int{
	"cube":   3,
	"plane":  2,
	"sphere": 1,
}

func checkMeshSize(kind string, size []float32) error {
	n, ok := meshArity[kind]
	if !ok {
		return fmt.Errorf("unknown mesh %q", kind)
	}
	if len(size) < n {
		return fmt.Errorf("mesh %q needs %d size values, got %d", kind, n, len(size))
	}
	return nil
}

// NullModels checks mesh definitions without creating GPU resources, for
// loading scenes without a window.
type NullModels struct{}

func (NullModels) Mesh(kind string, size []float32) (rl.Model, error) {
	return rl.Model{}, checkMeshSize(kind, size)
}

func (NullModels) File(path string) rl.Model { return rl.Model{} }
