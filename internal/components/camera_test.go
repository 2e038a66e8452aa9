package components

import (
	"testing"

	"examine3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCamera(pos rl.Vector3) *Camera {
	obj := engine.NewGameObject("Camera")
	obj.Transform.Position = pos
	cam := NewCamera()
	cam.Near = 0.1
	cam.Far = 100
	cam.SetViewport(1280, 720)
	obj.AddComponent(cam)
	return cam
}

func assertVec(t *testing.T, want, got rl.Vector3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func TestCameraDefaultAxes(t *testing.T) {
	cam := newTestCamera(rl.Vector3{})

	assertVec(t, rl.Vector3{Z: -1}, cam.Forward(), 1e-5)
	assertVec(t, rl.Vector3{X: 1}, cam.Right(), 1e-5)
	assertVec(t, rl.Vector3{Y: 1}, cam.Up(), 1e-5)
}

func TestCameraUsesLookProviderOnSameObject(t *testing.T) {
	cam := newTestCamera(rl.Vector3{X: 3})
	fps := NewFPSController(nil)
	fps.Yaw = 0
	cam.GetGameObject().AddComponent(fps)

	assertVec(t, rl.Vector3{X: 3, Y: fps.EyeHeight}, cam.Position(), 1e-5)
	assertVec(t, rl.Vector3{X: 1}, cam.Forward(), 1e-5)
}

func TestChildCameraUsesOwnOffset(t *testing.T) {
	player := engine.NewGameObject("Player")
	player.AddComponent(NewFPSController(nil))
	player.Transform.Position = rl.Vector3{X: 1}

	cam := newTestCamera(rl.Vector3{Y: 1.5})
	player.AddChild(cam.GetGameObject())

	assertVec(t, rl.Vector3{X: 1, Y: 1.5}, cam.Position(), 1e-5)
}

func TestCameraCenterRayIsForward(t *testing.T) {
	cam := newTestCamera(rl.Vector3{Y: 2})

	ray := cam.ScreenPointToRay(rl.Vector2{X: 640, Y: 360})

	assertVec(t, rl.Vector3{Y: 2}, ray.Position, 1e-5)
	assertVec(t, rl.Vector3{Z: -1}, ray.Direction, 1e-3)
}

func TestCameraWorldToScreen(t *testing.T) {
	cam := newTestCamera(rl.Vector3{})

	center := cam.WorldToScreen(rl.Vector3{Z: -10})
	assert.InDelta(t, 640, center.X, 0.5)
	assert.InDelta(t, 360, center.Y, 0.5)

	upRight := cam.WorldToScreen(rl.Vector3{X: 1, Y: 1, Z: -10})
	assert.Greater(t, upRight.X, float32(640))
	assert.Less(t, upRight.Y, float32(360))
}

func TestCameraScreenRayRoundTrip(t *testing.T) {
	cam := newTestCamera(rl.Vector3{X: 1, Y: 2, Z: 3})
	p := rl.Vector3{X: 2.5, Y: 1, Z: -6}
	require.True(t, cam.InFront(p))

	ray := cam.ScreenPointToRay(cam.WorldToScreen(p))

	// Distance from p to the ray line.
	toP := rl.Vector3Subtract(p, ray.Position)
	along := rl.Vector3DotProduct(toP, ray.Direction)
	closest := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, along))
	assert.Less(t, rl.Vector3Distance(closest, p), float32(0.01))
}

func TestCameraFactoryReadsProps(t *testing.T) {
	c := engine.CreateScript("Camera", map[string]any{"fov": 75.0, "isMain": true})
	cam, ok := c.(*Camera)
	require.True(t, ok)

	assert.Equal(t, float32(75), cam.FOV)
	assert.True(t, cam.IsMain)
	assert.Equal(t, float32(1000), cam.Far)
}
