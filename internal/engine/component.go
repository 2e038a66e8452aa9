package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
	Enabled() bool
	setEnabled(on bool)
}

// LookProvider is implemented by components that control camera look direction.
// Used by Camera to follow the player's view.
type LookProvider interface {
	GetLookDirection() rl.Vector3
	GetEyeHeight() float32
}

// EnableHandler is implemented by components that react to being switched
// on or off with SetEnabled.
type EnableHandler interface {
	OnEnable()
	OnDisable()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
	disabled   bool
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// Enabled reports whether the component receives Update calls.
func (b *BaseComponent) Enabled() bool {
	return !b.disabled
}

func (b *BaseComponent) setEnabled(on bool) {
	b.disabled = !on
}

// SetEnabled switches a component on or off. Components implementing
// EnableHandler are notified only when the state actually changes.
func SetEnabled(c Component, on bool) {
	if c == nil || c.Enabled() == on {
		return
	}
	c.setEnabled(on)
	if h, ok := c.(EnableHandler); ok {
		if on {
			h.OnEnable()
		} else {
			h.OnDisable()
		}
	}
}
