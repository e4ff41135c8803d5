package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func texturedSampling() renderer.SamplingConfig {
	return renderer.SamplingConfig{Width: 400, SamplesPerPixel: 100, MaxDepth: 50}
}

// newTwoSpheresScene stacks two checkered spheres
func newTwoSpheresScene(opts Options, sampler core.Sampler) (*Scene, error) {
	checker := material.NewTexturedLambertian(
		material.NewCheckerColors(core.NewColor(0.2, 0.3, 0.1), core.Grey(0.9)))

	world := geometry.NewObjectList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return newScene("two-spheres", world, lookAtCamera(0), integrator.NewSkyBackground(), texturedSampling(), sampler), nil
}

// newTwoPerlinSpheresScene places a marble sphere on a marble ground
func newTwoPerlinSpheresScene(opts Options, sampler core.Sampler) (*Scene, error) {
	marble := material.NewTexturedLambertian(material.NewNoise(4, sampler))

	world := geometry.NewObjectList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return newScene("two-perlin-spheres", world, lookAtCamera(0), integrator.NewSkyBackground(), texturedSampling(), sampler), nil
}

// newEarthScene wraps the texture at opts.TexturePath around a globe
func newEarthScene(opts Options, sampler core.Sampler) (*Scene, error) {
	earth, err := loaders.LoadImage(opts.TexturePath)
	if err != nil {
		return nil, fmt.Errorf("earth texture: %w", err)
	}

	world := geometry.NewObjectList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earth)),
	)

	return newScene("earth", world, lookAtCamera(0), integrator.NewSkyBackground(), texturedSampling(), sampler), nil
}

// newSimpleLightScene lights the marble spheres with a glowing sphere and panel
func newSimpleLightScene(opts Options, sampler core.Sampler) (*Scene, error) {
	marble := material.NewTexturedLambertian(material.NewNoise(4, sampler))
	light := material.NewDiffuseLight(core.Grey(4))

	world := geometry.NewObjectList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
	)

	camera := lookAtCamera(0)
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)
	camera.FocusDist = 0

	sampling := renderer.SamplingConfig{Width: 400, SamplesPerPixel: 400, MaxDepth: 50}
	return newScene("simple-light", world, camera, integrator.NewSolidBackground(core.Color{}), sampling, sampler), nil
}
