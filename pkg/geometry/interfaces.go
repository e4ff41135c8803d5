package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Object is anything a ray can hit and that can be bounded
type Object interface {
	// Hit returns the nearest intersection with t strictly inside (tMin, tMax).
	// The sampler is only consumed by stochastic objects such as participating media.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox encloses the object for every ray time in [time0, time1]
	BoundingBox(time0, time1 float64) core.AABB
}
