package components

import "examine3d/internal/engine"

// Rotator turns an object about its Y axis at Speed degrees per second,
// like a desk globe or a display turntable. It holds still while the
// object is off the default layer, so an examined item only turns under
// the player's hand.
type Rotator struct {
	engine.BaseComponent
	Speed float32
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil || g.Layer != engine.LayerDefault {
		return
	}
	y := g.Transform.Rotation.Y + r.Speed*deltaTime
	for y >= 360 {
		y -= 360
	}
	for y < 0 {
		y += 360
	}
	g.Transform.Rotation.Y = y
}

func init() {
	engine.RegisterScript("Rotator", rotatorFactory, rotatorSerializer)
}

func rotatorFactory(props engine.Props) engine.Component {
	return &Rotator{Speed: props.Float("speed", 90)}
}

func rotatorSerializer(c engine.Component) map[string]any {
	r, ok := c.(*Rotator)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed": r.Speed,
	}
}
