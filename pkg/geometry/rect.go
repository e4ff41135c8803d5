package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane selects which axis a Rect is perpendicular to
type Plane int

const (
	PlaneXY Plane = iota // perpendicular to Z
	PlaneXZ              // perpendicular to Y
	PlaneYZ              // perpendicular to X
)

// rectThickness pads the flat axis of a rect's bounding box
const rectThickness = 1e-4

// axes returns the two in-plane axes and the fixed axis
func (p Plane) axes() (a, b, k int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

// Rect is an axis-aligned rectangle [A0,A1]x[B0,B1] lying at coordinate K on its fixed axis.
// Its outward normal points along the positive fixed axis.
type Rect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material *material.Material
}

// NewXYRect creates a rect spanning x0..x1, y0..y1 at z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat *material.Material) *Rect {
	return &Rect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat}
}

// NewXZRect creates a rect spanning x0..x1, z0..z1 at y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat *material.Material) *Rect {
	return &Rect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat}
}

// NewYZRect creates a rect spanning y0..y1, z0..z1 at x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat *material.Material) *Rect {
	return &Rect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat}
}

// Hit intersects the ray with the rect's plane, then checks the in-plane bounds
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	ia, ib, ik := r.Plane.axes()

	// A parallel ray divides by zero; the resulting Inf or NaN fails the range check
	t := (r.K - ray.Origin.Axis(ik)) / ray.Direction.Axis(ik)
	if !(t > tMin && t < tMax) {
		return nil, false
	}

	a := ray.Origin.Axis(ia) + t*ray.Direction.Axis(ia)
	b := ray.Origin.Axis(ib) + t*ray.Direction.Axis(ib)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (a - r.A0) / (r.A1 - r.A0),
		V:        (b - r.B0) / (r.B1 - r.B0),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, axisVector(ik, 1))

	return hitRecord, true
}

// BoundingBox pads the flat axis so the box has nonzero volume
func (r *Rect) BoundingBox(time0, time1 float64) core.AABB {
	ia, ib, ik := r.Plane.axes()

	var lo, hi [3]float64
	lo[ia], hi[ia] = r.A0, r.A1
	lo[ib], hi[ib] = r.B0, r.B1
	lo[ik], hi[ik] = r.K-rectThickness, r.K+rectThickness

	return core.NewAABB(core.NewVec3(lo[0], lo[1], lo[2]), core.NewVec3(hi[0], hi[1], hi[2]))
}

// axisVector returns a vector with value on the given axis and zero elsewhere
func axisVector(axis int, value float64) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(value, 0, 0)
	case 1:
		return core.NewVec3(0, value, 0)
	default:
		return core.NewVec3(0, 0, value)
	}
}
