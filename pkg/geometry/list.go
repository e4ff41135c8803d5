package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ObjectList is a flat collection of objects tested one by one
type ObjectList struct {
	Objects []Object
}

// NewObjectList creates a list from the given objects
func NewObjectList(objects ...Object) *ObjectList {
	return &ObjectList{Objects: objects}
}

// Add appends an object to the list
func (l *ObjectList) Add(object Object) {
	l.Objects = append(l.Objects, object)
}

// Hit returns the closest hit across all objects
func (l *ObjectList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hitRecord, isHit := object.Hit(ray, tMin, closestSoFar, sampler); isHit {
			closest = hitRecord
			closestSoFar = hitRecord.T
		}
	}

	return closest, closest != nil
}

// BoundingBox is the union of every member's box; an empty list has an empty box
func (l *ObjectList) BoundingBox(time0, time1 float64) core.AABB {
	box := core.EmptyAABB()
	for _, object := range l.Objects {
		box = box.Union(object.BoundingBox(time0, time1))
	}
	return box
}
