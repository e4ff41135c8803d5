package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

const (
	groundBoxesPerSide = 20
	clusterSpheres     = 1000
)

// newFinalScene combines every primitive, decorator and material in one picture.
// Without an earth texture the globe falls back to Perlin noise.
func newFinalScene(opts Options, sampler core.Sampler) (*Scene, error) {
	// Ground of boxes with random heights
	ground := material.NewLambertian(core.NewColor(0.48, 0.93, 0.53))
	boxes := make([]geometry.Object, 0, groundBoxesPerSide*groundBoxesPerSide)
	for i := 0; i < groundBoxesPerSide; i++ {
		for j := 0; j < groundBoxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes = append(boxes, geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+w, y1, z0+w),
				ground,
			))
		}
	}

	world := geometry.NewObjectList(geometry.NewBVH(boxes, 0, 1, sampler))

	world.Add(geometry.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(core.Grey(7))))

	// Motion blurred sphere
	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center0, center1, 0, 1, 50, material.NewLambertian(core.NewColor(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewColor(0.8, 0.8, 0.9), 1.0)))

	// Blue subsurface-like volume inside a glass shell
	shell := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(shell)
	world.Add(geometry.NewConstantMediumColor(shell, 0.2, core.NewColor(0.2, 0.4, 0.9)))

	// Thin global mist
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMediumColor(mist, 0.0001, core.Grey(1)))

	var globe material.Texture
	if earth, err := loaders.LoadImage(opts.TexturePath); err == nil {
		globe = earth
	} else {
		opts.Logger.Printf("final scene: %v; using noise for the globe\n", err)
		globe = material.NewNoise(0.1, sampler)
	}
	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(globe)))

	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(material.NewNoise(0.1, sampler))))

	// Rotated cluster of small white spheres
	white := material.NewLambertian(core.Grey(0.73))
	cluster := make([]geometry.Object, 0, clusterSpheres)
	for i := 0; i < clusterSpheres; i++ {
		cluster = append(cluster, geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white))
	}
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVH(cluster, 0, 1, sampler), 15),
		core.NewVec3(-100, 270, 395),
	))

	camera := renderer.CameraConfig{
		LookFrom:    core.NewVec3(478, 278, -600),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1.0,
		Aperture:    0,
		FocusDist:   0,
		Time0:       0,
		Time1:       1,
	}

	sampling := renderer.SamplingConfig{Width: 400, SamplesPerPixel: 1000, MaxDepth: 50}
	return newScene("final", world, camera, integrator.NewSolidBackground(core.Color{}), sampling, sampler), nil
}
