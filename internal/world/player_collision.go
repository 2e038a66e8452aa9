package world

import (
	"examine3d/internal/components"
	"examine3d/internal/engine"
	"examine3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerCollision keeps the player on the floor and out of colliders. The
// player's position is at its feet; Size is the body box.
type PlayerCollision struct {
	engine.BaseComponent
	Size   rl.Vector3
	FloorY float32
}

func NewPlayerCollision() *PlayerCollision {
	return &PlayerCollision{
		Size: rl.Vector3{X: 0.6, Y: 1.8, Z: 0.6},
	}
}

func (p *PlayerCollision) body(feet rl.Vector3) physics.AABB {
	return physics.NewAABBFromCenter(
		rl.Vector3{X: feet.X, Y: feet.Y + p.Size.Y/2, Z: feet.Z},
		p.Size,
	)
}

func (p *PlayerCollision) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil || g.Scene == nil || g.Scene.World == nil {
		return
	}
	fps := engine.GetComponent[*components.FPSController](g)
	if fps == nil {
		return
	}

	// Ground check
	if g.Transform.Position.Y <= p.FloorY {
		g.Transform.Position.Y = p.FloorY
		fps.Velocity.Y = 0
		fps.Grounded = true
	} else {
		fps.Grounded = false
	}

	playerBox := p.body(g.Transform.Position)

	for _, obj := range g.Scene.World.GetCollidableObjects() {
		if obj == g {
			continue
		}
		for _, c := range obj.Components() {
			col, ok := c.(components.Collider)
			if !ok || !col.Enabled() {
				continue
			}
			pushOut := playerBox.Resolve(col.Bounds())
			if pushOut == (rl.Vector3{}) {
				continue
			}
			g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)

			if pushOut.Y > 0 {
				fps.Velocity.Y = 0
				fps.Grounded = true
			}
			if pushOut.Y < 0 && fps.Velocity.Y > 0 {
				fps.Velocity.Y = 0
			}

			// Update box for subsequent checks
			playerBox = p.body(g.Transform.Position)
		}
	}
}
