package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Vector3Tween animates a Vector3 from one value to another over a fixed
// duration, writing every sample through apply. The final sample is exactly
// the destination.
type Vector3Tween struct {
	tweens  [3]*gween.Tween
	to      rl.Vector3
	apply   func(rl.Vector3)
	instant bool
}

// NewVector3Tween creates a tween using easing fn. A nil fn means linear.
// A duration of zero or less snaps to the destination on the first Step.
func NewVector3Tween(from, to rl.Vector3, duration float32, fn ease.TweenFunc, apply func(rl.Vector3)) *Vector3Tween {
	if fn == nil {
		fn = ease.Linear
	}
	t := &Vector3Tween{to: to, apply: apply, instant: duration <= 0}
	if !t.instant {
		t.tweens[0] = gween.New(from.X, to.X, duration, fn)
		t.tweens[1] = gween.New(from.Y, to.Y, duration, fn)
		t.tweens[2] = gween.New(from.Z, to.Z, duration, fn)
	}
	return t
}

// MoveTo tweens the world position of g to dest.
func MoveTo(g *GameObject, dest rl.Vector3, duration float32) *Vector3Tween {
	return NewVector3Tween(g.WorldPosition(), dest, duration, ease.Linear, g.SetWorldPosition)
}

func (t *Vector3Tween) Step(dt float32) bool {
	if t.instant {
		t.apply(t.to)
		return true
	}
	x, doneX := t.tweens[0].Update(dt)
	y, doneY := t.tweens[1].Update(dt)
	z, doneZ := t.tweens[2].Update(dt)
	if doneX && doneY && doneZ {
		t.apply(t.to)
		return true
	}
	t.apply(rl.Vector3{X: x, Y: y, Z: z})
	return false
}
