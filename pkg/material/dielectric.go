package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Material {
	return &Material{kind: KindDielectric, refractiveIndex: refractiveIndex}
}

// RefractiveIndex returns the index of refraction of a dielectric material
func (m *Material) RefractiveIndex() float64 {
	return m.refractiveIndex
}

// scatterDielectric reflects or refracts, choosing reflection with Schlick probability
func (m *Material) scatterDielectric(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Clear glass does not absorb color
	attenuation := core.NewColor(1.0, 1.0, 1.0)

	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / m.refractiveIndex // entering the material
	} else {
		refractionRatio = m.refractiveIndex // leaving the material
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
