package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0
// to Center1 at Time1. Outside that interval the motion is extrapolated.
type MovingSphere struct {
	Center0, Center1 core.Point
	Time0, Time1     float64
	Radius           float64
	Material         *material.Material
}

// NewMovingSphere creates a sphere for motion blur
func NewMovingSphere(center0, center1 core.Point, time0, time1, radius float64, mat *material.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: mat,
	}
}

// Center returns the sphere center at the given time
func (s *MovingSphere) Center(time float64) core.Point {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	fraction := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(fraction))
}

// Hit intersects the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitSphere(s.Center(ray.Time), s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox encloses the sphere at both ends of the time interval
func (s *MovingSphere) BoundingBox(time0, time1 float64) core.AABB {
	return core.SurroundingBox(
		sphereBox(s.Center(time0), s.Radius),
		sphereBox(s.Center(time1), s.Radius),
	)
}
