package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Color) *Material {
	return NewTexturedLambertian(NewSolidColor(albedo))
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo Texture) *Material {
	return &Material{kind: KindLambertian, texture: albedo}
}

// scatterLambertian scatters toward normal + a random unit vector, which is
// cosine distributed about the normal
func (m *Material) scatterLambertian(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// The random vector can cancel the normal; a zero direction would give NaNs downstream
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, scatterDirection, rayIn.Time),
		Attenuation: m.texture.Value(hit.U, hit.V, hit.Point),
	}, true
}
