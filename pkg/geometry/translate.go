package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves an object by a fixed offset
type Translate struct {
	Object Object
	Offset core.Vec3
}

// NewTranslate wraps an object, displacing it by offset
func NewTranslate(object Object, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit moves the ray into the object's frame and the hit point back out.
// Translation leaves normals unchanged, so the child's face orientation is kept.
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hitRecord, isHit := t.Object.Hit(moved, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	hitRecord.Point = hitRecord.Point.Add(t.Offset)
	return hitRecord, true
}

func (t *Translate) BoundingBox(time0, time1 float64) core.AABB {
	return t.Object.BoundingBox(time0, time1).Translate(t.Offset)
}
