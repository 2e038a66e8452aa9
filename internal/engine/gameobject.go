package engine

import (
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Layer      Layer
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Layer:  LayerDefault,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// FindComponent is like GetComponent but matches any interface T,
// including ones that are not Components themselves (e.g. LookProvider).
func FindComponent[T any](g *GameObject) (T, bool) {
	var zero T
	if g == nil {
		return zero, false
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed, true
		}
	}
	return zero, false
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	g.started = true
	for _, c := range g.components {
		c.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.ActiveInHierarchy() {
		return
	}
	for _, c := range g.components {
		if c.Enabled() {
			c.Update(deltaTime)
		}
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SetActive shows or hides the object. Inactive objects are skipped by
// Update, rendering and raycasts, and so are their children.
func (g *GameObject) SetActive(active bool) {
	g.Active = active
}

// ActiveInHierarchy reports whether the object and all of its parents are active.
func (g *GameObject) ActiveInHierarchy() bool {
	for obj := g; obj != nil; obj = obj.Parent {
		if !obj.Active {
			return false
		}
	}
	return true
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	rotated := rl.Vector3Transform(scaled, RotationMatrix(parentRot))
	return rl.Vector3Add(parentPos, rotated)
}

// SetWorldPosition moves the object so that its world position equals pos.
func (g *GameObject) SetWorldPosition(pos rl.Vector3) {
	if g.Parent == nil {
		g.Transform.Position = pos
		return
	}
	parentPos := g.Parent.WorldPosition()
	parentScale := g.Parent.WorldScale()
	local := rl.Vector3Subtract(pos, parentPos)
	local = rl.Vector3Transform(local, rl.MatrixInvert(RotationMatrix(g.Parent.WorldRotation())))
	g.Transform.Position = rl.Vector3{
		X: safeDiv(local.X, parentScale.X),
		Y: safeDiv(local.Y, parentScale.Y),
		Z: safeDiv(local.Z, parentScale.Z),
	}
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

// SetWorldRotation sets the Euler rotation so that WorldRotation returns rot.
func (g *GameObject) SetWorldRotation(rot rl.Vector3) {
	if g.Parent == nil {
		g.Transform.Rotation = rot
		return
	}
	g.Transform.Rotation = rl.Vector3Subtract(rot, g.Parent.WorldRotation())
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// RotationMatrix builds the rotation used for Euler angles (degrees),
// same convention as ModelRenderer: X then Y then Z.
func RotationMatrix(rot rl.Vector3) rl.Matrix {
	rx := float64(rot.X) * math.Pi / 180
	ry := float64(rot.Y) * math.Pi / 180
	rz := float64(rot.Z) * math.Pi / 180
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}

// LookRotation returns Euler angles in degrees that turn an object's +Z
// axis to point along dir under RotationMatrix.
func LookRotation(dir rl.Vector3) rl.Vector3 {
	dir = rl.Vector3Normalize(dir)
	yaw := math.Atan2(float64(dir.X), float64(dir.Z))
	pitch := -math.Asin(math.Max(-1, math.Min(1, float64(dir.Y))))
	return rl.Vector3{
		X: float32(pitch * 180 / math.Pi),
		Y: float32(yaw * 180 / math.Pi),
	}
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return a
	}
	return a / b
}
