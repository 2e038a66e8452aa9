package world

import (
	"testing"

	"examine3d/internal/components"
	"examine3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func testCamera() *components.Camera {
	g := engine.NewGameObject("Camera")
	cam := components.NewCamera()
	cam.Far = 100
	g.AddComponent(cam)
	return cam
}

func TestCameraFrustumContainsPoint(t *testing.T) {
	f := CameraFrustum(testCamera())

	assert.True(t, f.ContainsPoint(rl.Vector3{Z: -10}))
	assert.True(t, f.ContainsPoint(rl.Vector3{X: 1, Y: 1, Z: -10}))
	assert.False(t, f.ContainsPoint(rl.Vector3{Z: 10}), "behind")
	assert.False(t, f.ContainsPoint(rl.Vector3{Z: -200}), "past far plane")
	assert.False(t, f.ContainsPoint(rl.Vector3{X: 50, Z: -10}), "outside left/right")
	assert.False(t, f.ContainsPoint(rl.Vector3{Y: 50, Z: -10}), "outside top/bottom")
}

func TestCameraFrustumContainsSphere(t *testing.T) {
	f := CameraFrustum(testCamera())

	assert.True(t, f.ContainsSphere(rl.Vector3{Z: -10}, 1))
	assert.False(t, f.ContainsSphere(rl.Vector3{Z: 10}, 1))
	assert.True(t, f.ContainsSphere(rl.Vector3{Z: 3}, 5), "straddles the camera")
}
