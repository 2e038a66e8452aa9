package components

import (
	"examine3d/internal/engine"
	"examine3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	return offsetToWorld(s.GetGameObject(), s.Offset)
}

// GetWorldRadius scales the radius by the largest world scale axis.
func (s *SphereCollider) GetWorldRadius() float32 {
	sc := s.GetGameObject().WorldScale()
	m := absf(sc.X)
	if y := absf(sc.Y); y > m {
		m = y
	}
	if z := absf(sc.Z); z > m {
		m = z
	}
	return s.Radius * m
}

func (s *SphereCollider) Bounds() physics.AABB {
	d := s.GetWorldRadius() * 2
	return physics.NewAABBFromCenter(s.GetCenter(), rl.Vector3{X: d, Y: d, Z: d})
}

func (s *SphereCollider) Raycast(origin, direction rl.Vector3, maxDistance float32) (physics.Hit, bool) {
	return physics.RaySphere(origin, direction, s.GetCenter(), s.GetWorldRadius(), maxDistance)
}
