package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// boundaryEpsilon separates the entry hit from the search for the exit hit
const boundaryEpsilon = 0.0001

// ConstantMedium is a homogeneous volume such as smoke or fog filling a closed boundary
type ConstantMedium struct {
	Boundary      Object
	Density       float64
	PhaseFunction *material.Material
}

// NewConstantMedium fills boundary with a medium of the given density and albedo texture
func NewConstantMedium(boundary Object, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

// NewConstantMediumColor fills boundary with a medium of uniform albedo
func NewConstantMediumColor(boundary Object, density float64, albedo core.Color) *ConstantMedium {
	return NewConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// Hit samples a free-flight distance inside the boundary. The boundary must be convex:
// only the first entry and exit points are considered.
func (c *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if c.Density <= 0 {
		return nil, false
	}

	entry, isHit := c.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !isHit {
		return nil, false
	}
	exit, isHit := c.Boundary.Hit(ray, entry.T+boundaryEpsilon, math.Inf(1), sampler)
	if !isHit {
		return nil, false
	}

	t1 := math.Max(entry.T, tMin)
	t2 := math.Min(exit.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	// Origins inside the medium start scattering at the origin
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength

	// Exponential free flight; U = 0 gives an infinite distance and a miss
	hitDistance := -math.Log(sampler.Get1D()) / c.Density
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  c.PhaseFunction,
	}, true
}

func (c *ConstantMedium) BoundingBox(time0, time1 float64) core.AABB {
	return c.Boundary.BoundingBox(time0, time1)
}
