package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// FlipFace reports the child's hits with the front/back flag inverted.
// The normal is untouched: it already faces the incoming ray.
type FlipFace struct {
	Object Object
}

// NewFlipFace wraps an object so its inside becomes its outside
func NewFlipFace(object Object) *FlipFace {
	return &FlipFace{Object: object}
}

func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	hitRecord, isHit := f.Object.Hit(ray, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}
	hitRecord.FrontFace = !hitRecord.FrontFace
	return hitRecord, true
}

func (f *FlipFace) BoundingBox(time0, time1 float64) core.AABB {
	return f.Object.BoundingBox(time0, time1)
}
