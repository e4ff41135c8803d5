package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RotateY rotates an object about the world Y axis
type RotateY struct {
	Object   Object
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps an object, rotating it by angle degrees about Y.
// The bounding box is computed once over the time interval [0, 1].
func NewRotateY(object Object, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// Rotate all 8 corners of the child's box and re-bound them
	local := object.BoundingBox(0, 1)
	if !local.IsValid() {
		r.bbox = core.EmptyAABB()
		return r
	}
	corners := local.Corners()
	rotated := make([]core.Point, 0, len(corners))
	for _, c := range corners {
		rotated = append(rotated, r.toWorld(c))
	}
	r.bbox = core.NewAABBFromPoints(rotated...)

	return r
}

// toLocal rotates a world vector by -theta into the child's frame
func (r *RotateY) toLocal(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates a local vector by theta back into world space
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into the child's frame, then rotates the hit point and normal back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toLocal(ray.Origin), r.toLocal(ray.Direction), ray.Time)

	hitRecord, isHit := r.Object.Hit(rotated, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	// Rotation preserves the dot product with the ray, so FrontFace is still valid
	hitRecord.Point = r.toWorld(hitRecord.Point)
	hitRecord.Normal = r.toWorld(hitRecord.Normal)
	return hitRecord, true
}

func (r *RotateY) BoundingBox(time0, time1 float64) core.AABB {
	return r.bbox
}
