package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Kind identifies one of the fixed material variants
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
	KindDiffuseLight
	KindIsotropic
)

func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	case KindDiffuseLight:
		return "diffuse_light"
	case KindIsotropic:
		return "isotropic"
	default:
		return "unknown"
	}
}

// Material is a closed set of surface and volume scattering models.
// Only the fields relevant to Kind are set. Materials are immutable after
// construction and shared by pointer between every object that uses them.
type Material struct {
	kind            Kind
	texture         Texture    // Lambertian and Isotropic albedo, DiffuseLight emission
	albedo          core.Color // Metal base color
	fuzz            float64    // Metal roughness in [0, 1]
	refractiveIndex float64    // Dielectric index of refraction
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Color attenuation
}

// Kind returns the material variant
func (m *Material) Kind() Kind {
	return m.kind
}

// Scatter decides whether and how an incoming ray scatters at a hit.
// It returns false when the ray is absorbed.
func (m *Material) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.kind {
	case KindLambertian:
		return m.scatterLambertian(rayIn, hit, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	case KindIsotropic:
		return m.scatterIsotropic(rayIn, hit, sampler)
	default:
		// DiffuseLight never scatters
		return ScatterResult{}, false
	}
}

// Emitted returns the radiance emitted at a surface point; black for non-emitters
func (m *Material) Emitted(u, v float64, p core.Point) core.Color {
	if m.kind == KindDiffuseLight {
		return m.texture.Value(u, v, p)
	}
	return core.Color{}
}
