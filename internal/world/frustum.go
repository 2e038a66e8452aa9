package world

import (
	"examine3d/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// CameraFrustum builds the frustum of cam's current view.
func CameraFrustum(cam *components.Camera) Frustum {
	return NewFrustum(rl.MatrixMultiply(cam.ViewMatrix(), cam.ProjectionMatrix()))
}

// NewFrustum extracts the planes of a combined view-projection matrix
// using the Gribb/Hartmann method.
func NewFrustum(vp rl.Matrix) Frustum {
	row := func(i int) (rl.Vector3, float32) {
		switch i {
		case 0:
			return rl.Vector3{X: vp.M0, Y: vp.M4, Z: vp.M8}, vp.M12
		case 1:
			return rl.Vector3{X: vp.M1, Y: vp.M5, Z: vp.M9}, vp.M13
		case 2:
			return rl.Vector3{X: vp.M2, Y: vp.M6, Z: vp.M10}, vp.M14
		}
		return rl.Vector3{X: vp.M3, Y: vp.M7, Z: vp.M11}, vp.M15
	}
	w, wd := row(3)

	var f Frustum
	for axis := 0; axis < 3; axis++ {
		n, d := row(axis)
		f.planes[axis*2] = normalizePlane(Plane{normal: rl.Vector3Add(w, n), distance: wd + d})
		f.planes[axis*2+1] = normalizePlane(Plane{normal: rl.Vector3Subtract(w, n), distance: wd - d})
	}
	return f
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere reports whether a sphere is inside or touching the frustum.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := range f.planes {
		dist := rl.Vector3DotProduct(f.planes[i].normal, point) + f.planes[i].distance
		if dist < 0 {
			return false
		}
	}
	return true
}
