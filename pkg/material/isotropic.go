package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewIsotropic creates the phase function of a participating medium
func NewIsotropic(albedo Texture) *Material {
	return &Material{kind: KindIsotropic, texture: albedo}
}

// scatterIsotropic scatters in a uniformly random direction; the surface normal is ignored
func (m *Material) scatterIsotropic(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := core.RandomInUnitSphere(sampler)
	if direction.NearZero() {
		direction = core.RandomUnitVector(sampler)
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: m.texture.Value(hit.U, hit.V, hit.Point),
	}, true
}
