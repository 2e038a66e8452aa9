package components

import (
	"examine3d/internal/engine"
	"examine3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	return offsetToWorld(b.GetGameObject(), b.Offset)
}

// GetWorldSize returns the collider size scaled by the owner's world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{
		X: absf(b.Size.X * s.X),
		Y: absf(b.Size.Y * s.Y),
		Z: absf(b.Size.Z * s.Z),
	}
}

func (b *BoxCollider) Bounds() physics.AABB {
	return physics.NewAABBFromCenter(b.GetCenter(), b.GetWorldSize())
}

func (b *BoxCollider) Raycast(origin, direction rl.Vector3, maxDistance float32) (physics.Hit, bool) {
	return physics.RayAABB(origin, direction, b.Bounds(), maxDistance)
}
