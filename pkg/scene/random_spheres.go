package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// newRandomSpheresScene creates a field of small spheres around three large ones.
// Diffuse spheres bounce upward during the shutter interval.
func newRandomSpheresScene(opts Options, sampler core.Sampler) (*Scene, error) {
	world := geometry.NewObjectList()

	checker := material.NewCheckerColors(core.NewColor(0.2, 0.3, 0.1), core.Grey(0.9))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearance := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)

			if center.Subtract(clearance).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				// diffuse
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				center1 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				world.Add(geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMaterial < 0.95:
				// metal
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				// glass
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0)))

	sampling := renderer.SamplingConfig{Width: 400, SamplesPerPixel: 100, MaxDepth: 50}
	return newScene("random-spheres", world, lookAtCamera(0.1), integrator.NewSkyBackground(), sampling, sampler), nil
}
