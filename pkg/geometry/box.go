package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box is an axis-aligned box made of six rects with outward-facing sides
type Box struct {
	Min, Max core.Point
	sides    *ObjectList
}

// NewBox creates a box spanning the two corner points
func NewBox(p0, p1 core.Point, mat *material.Material) *Box {
	sides := NewObjectList(
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, mat),
		NewFlipFace(NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, mat)),

		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, mat),
		NewFlipFace(NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, mat)),

		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, mat),
		NewFlipFace(NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, mat)),
	)

	return &Box{Min: p0, Max: p1, sides: sides}
}

func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

func (b *Box) BoundingBox(time0, time1 float64) core.AABB {
	return core.NewAABB(b.Min, b.Max)
}
