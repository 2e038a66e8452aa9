package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with the world package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycaster answers closest-hit ray queries against the active scene.
// Only active objects with enabled colliders on a layer in mask are hit.
type Raycaster interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) (RaycastResult, bool)
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	Raycaster
	GetCollidableObjects() []*GameObject
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)
}
