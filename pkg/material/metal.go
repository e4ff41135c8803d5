package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewMetal creates a new metal material
func NewMetal(albedo core.Color, fuzz float64) *Material {
	return &Material{kind: KindMetal, albedo: albedo, fuzz: core.Clamp(fuzz, 0, 1)}
}

// Fuzz returns the clamped roughness of a metal material
func (m *Material) Fuzz() float64 {
	return m.fuzz
}

// scatterMetal reflects about the normal, perturbed by fuzz
func (m *Material) scatterMetal(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.fuzz))
	}

	scattered := core.NewRayAtTime(hit.Point, reflected, rayIn.Time)

	// Fuzz can push the ray below the surface, in which case it is absorbed
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.albedo,
	}, true
}
