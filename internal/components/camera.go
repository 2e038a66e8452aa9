package components

import (
	"examine3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterScript("Camera", cameraFactory, cameraSerializer)
}

var worldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active game camera

	// Viewport size in pixels, refreshed by the game loop on resize.
	ViewportWidth  float32
	ViewportHeight float32
}

func NewCamera() *Camera {
	return &Camera{
		FOV:            60.0,
		Near:           0.01,
		Far:            1000.0,
		Projection:     rl.CameraPerspective,
		ViewportWidth:  1280,
		ViewportHeight: 720,
	}
}

func cameraFactory(props engine.Props) engine.Component {
	c := NewCamera()
	c.FOV = props.Float("fov", c.FOV)
	c.Near = props.Float("near", c.Near)
	c.Far = props.Float("far", c.Far)
	c.IsMain = props.Bool("isMain", c.IsMain)
	return c
}

func cameraSerializer(comp engine.Component) map[string]any {
	c, ok := comp.(*Camera)
	if !ok {
		return nil
	}
	return map[string]any{
		"fov":    c.FOV,
		"near":   c.Near,
		"far":    c.Far,
		"isMain": c.IsMain,
	}
}

func (c *Camera) SetViewport(width, height float32) {
	c.ViewportWidth = width
	c.ViewportHeight = height
}

// lookProvider finds the LookProvider steering this camera, searching the
// camera's own object first and then its parents.
func (c *Camera) lookProvider() (engine.LookProvider, bool) {
	for obj := c.GetGameObject(); obj != nil; obj = obj.Parent {
		if lp, ok := engine.FindComponent[engine.LookProvider](obj); ok {
			return lp, obj == c.GetGameObject()
		}
	}
	return nil, false
}

// Position returns the eye position in world space.
func (c *Camera) Position() rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	eye := g.WorldPosition()
	// A camera sharing its object with the controller sits at eye height;
	// a child camera already carries the offset in its local position.
	if lp, onSelf := c.lookProvider(); lp != nil && onSelf {
		eye.Y += lp.GetEyeHeight()
	}
	return eye
}

// Forward returns the normalized viewing direction.
func (c *Camera) Forward() rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{Z: -1}
	}
	if lp, _ := c.lookProvider(); lp != nil {
		if dir := lp.GetLookDirection(); rl.Vector3Length(dir) > 1e-6 {
			return rl.Vector3Normalize(dir)
		}
	}
	return rl.Vector3Normalize(rl.Vector3Transform(rl.Vector3{Z: -1}, engine.RotationMatrix(g.WorldRotation())))
}

// Right returns the camera's right axis, always horizontal.
func (c *Camera) Right() rl.Vector3 {
	right := rl.Vector3CrossProduct(c.Forward(), worldUp)
	if rl.Vector3Length(right) < 1e-6 {
		return rl.Vector3{X: 1}
	}
	return rl.Vector3Normalize(right)
}

// Up returns the camera's up axis, perpendicular to Forward and Right.
func (c *Camera) Up() rl.Vector3 {
	return rl.Vector3CrossProduct(c.Right(), c.Forward())
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	if c.GetGameObject() == nil {
		return rl.Camera3D{}
	}
	eye := c.Position()
	return rl.Camera3D{
		Position:   eye,
		Target:     rl.Vector3Add(eye, c.Forward()),
		Up:         worldUp,
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}

func (c *Camera) aspect() float32 {
	if c.ViewportHeight <= 0 {
		return 1
	}
	return c.ViewportWidth / c.ViewportHeight
}

// ViewMatrix matches the matrix raylib builds for BeginMode3D.
func (c *Camera) ViewMatrix() rl.Matrix {
	eye := c.Position()
	return rl.MatrixLookAt(eye, rl.Vector3Add(eye, c.Forward()), worldUp)
}

// ProjectionMatrix matches the matrix raylib builds for BeginMode3D.
func (c *Camera) ProjectionMatrix() rl.Matrix {
	if c.Projection == rl.CameraOrthographic {
		top := c.FOV / 2
		right := top * c.aspect()
		return rl.MatrixOrtho(-right, right, -top, top, c.Near, c.Far)
	}
	return rl.MatrixPerspective(c.FOV*rl.Deg2rad, c.aspect(), c.Near, c.Far)
}

// ScreenPointToRay returns the world-space ray through a pixel of the
// viewport. The ray direction is normalized.
func (c *Camera) ScreenPointToRay(p rl.Vector2) rl.Ray {
	w, h := c.ViewportWidth, c.ViewportHeight
	if w <= 0 || h <= 0 {
		return rl.Ray{Position: c.Position(), Direction: c.Forward()}
	}
	ndcX := 2*p.X/w - 1
	ndcY := 1 - 2*p.Y/h

	inv := rl.MatrixInvert(rl.MatrixMultiply(c.ViewMatrix(), c.ProjectionMatrix()))
	near := unproject(rl.Vector3{X: ndcX, Y: ndcY, Z: -1}, inv)
	far := unproject(rl.Vector3{X: ndcX, Y: ndcY, Z: 1}, inv)

	origin := near
	if c.Projection != rl.CameraOrthographic {
		origin = c.Position()
	}
	return rl.Ray{Position: origin, Direction: rl.Vector3Normalize(rl.Vector3Subtract(far, near))}
}

// WorldToScreen projects a world point to viewport pixels. Points behind
// the camera project mirrored; callers check visibility themselves.
func (c *Camera) WorldToScreen(p rl.Vector3) rl.Vector2 {
	q := rl.QuaternionTransform(rl.Quaternion{X: p.X, Y: p.Y, Z: p.Z, W: 1}, c.ViewMatrix())
	q = rl.QuaternionTransform(q, c.ProjectionMatrix())
	if q.W != 0 {
		q.X /= q.W
		q.Y /= q.W
	}
	return rl.Vector2{
		X: (q.X + 1) / 2 * c.ViewportWidth,
		Y: (1 - q.Y) / 2 * c.ViewportHeight,
	}
}

// InFront reports whether p lies in front of the camera.
func (c *Camera) InFront(p rl.Vector3) bool {
	return rl.Vector3DotProduct(rl.Vector3Subtract(p, c.Position()), c.Forward()) > 0
}

func unproject(ndc rl.Vector3, inv rl.Matrix) rl.Vector3 {
	q := rl.QuaternionTransform(rl.Quaternion{X: ndc.X, Y: ndc.Y, Z: ndc.Z, W: 1}, inv)
	if q.W == 0 {
		return rl.Vector3{X: q.X, Y: q.Y, Z: q.Z}
	}
	return rl.Vector3{X: q.X / q.W, Y: q.Y / q.W, Z: q.Z / q.W}
}
