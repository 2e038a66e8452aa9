package components

import (
	"examine3d/internal/engine"
	"examine3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is implemented by components that take part in raycasts and
// player collision. Disabled colliders are ignored by both.
type Collider interface {
	engine.Component
	Bounds() physics.AABB
	Raycast(origin, direction rl.Vector3, maxDistance float32) (physics.Hit, bool)
}

// offsetToWorld maps a local collider offset through the owner's world
// rotation and scale.
func offsetToWorld(g *engine.GameObject, offset rl.Vector3) rl.Vector3 {
	if offset == (rl.Vector3{}) {
		return g.WorldPosition()
	}
	s := g.WorldScale()
	scaled := rl.Vector3{X: offset.X * s.X, Y: offset.Y * s.Y, Z: offset.Z * s.Z}
	rotated := rl.Vector3Transform(scaled, engine.RotationMatrix(g.WorldRotation()))
	return rl.Vector3Add(g.WorldPosition(), rotated)
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
