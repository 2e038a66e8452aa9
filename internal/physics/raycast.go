package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hit describes where a ray meets a shape.
type Hit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

const faceEpsilon = 0.001

// RayAABB intersects a ray with a box using the slab method. direction
// must be normalized. A ray starting inside the box hits the far face.
func RayAABB(origin, direction rl.Vector3, box AABB, maxDistance float32) (Hit, bool) {
	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)

	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{direction.X, direction.Y, direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return Hit{}, false
			}
			continue
		}
		t1 := (lo[axis] - o[axis]) / d[axis]
		t2 := (hi[axis] - o[axis]) / d[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return Hit{}, false
		}
	}

	if tmax < 0 {
		return Hit{}, false
	}
	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return Hit{Point: point, Normal: boxNormal(point, box), Distance: t}, true
}

func boxNormal(p rl.Vector3, box AABB) rl.Vector3 {
	switch {
	case abs(p.X-box.Min.X) < faceEpsilon:
		return rl.Vector3{X: -1}
	case abs(p.X-box.Max.X) < faceEpsilon:
		return rl.Vector3{X: 1}
	case abs(p.Y-box.Min.Y) < faceEpsilon:
		return rl.Vector3{Y: -1}
	case abs(p.Y-box.Max.Y) < faceEpsilon:
		return rl.Vector3{Y: 1}
	case abs(p.Z-box.Min.Z) < faceEpsilon:
		return rl.Vector3{Z: -1}
	default:
		return rl.Vector3{Z: 1}
	}
}

// RaySphere intersects a ray with a sphere. direction must be normalized.
func RaySphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (Hit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*c
	if discriminant < 0 {
		return Hit{}, false
	}
	sq := float32(math.Sqrt(float64(discriminant)))

	t := (-b - sq) / 2
	if t < 0 {
		t = (-b + sq) / 2
	}
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))
	return Hit{Point: point, Normal: normal, Distance: t}, true
}
