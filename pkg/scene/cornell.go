package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800), // Outside the open front of the box
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1.0,
		Aperture:    0,
		FocusDist:   0, // Focus on LookAt
		Time0:       0,
		Time1:       1,
	}
}

// cornellWalls returns the five walls of the box with their normals facing inward,
// plus the ceiling light
func cornellWalls(light *geometry.Rect) *geometry.ObjectList {
	red := material.NewLambertian(core.NewColor(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.Grey(0.73))
	green := material.NewLambertian(core.NewColor(0.12, 0.45, 0.15))

	return geometry.NewObjectList(
		geometry.NewFlipFace(geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green)), // left
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),                               // right
		light,
		geometry.NewFlipFace(geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white)), // ceiling
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),                             // floor
		geometry.NewFlipFace(geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white)), // back
	)
}

// cornellBlocks returns the tall and short blocks, rotated and moved into place
func cornellBlocks(mat *material.Material) (tall, short geometry.Object) {
	tall = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat), 15),
		core.NewVec3(265, 0, 295),
	)
	short = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat), -18),
		core.NewVec3(130, 0, 65),
	)
	return tall, short
}

// newCornellScene creates the classic Cornell box with two white blocks
func newCornellScene(opts Options, sampler core.Sampler) (*Scene, error) {
	light := geometry.NewXZRect(213, 343, 227, 332, boxSize-1, material.NewDiffuseLight(core.Grey(15)))
	world := cornellWalls(light)

	tall, short := cornellBlocks(material.NewLambertian(core.Grey(0.73)))
	world.Add(tall)
	world.Add(short)

	sampling := renderer.SamplingConfig{Width: 400, SamplesPerPixel: 200, MaxDepth: 50}
	return newScene("cornell", world, cornellCamera(), integrator.NewSolidBackground(core.Color{}), sampling, sampler), nil
}

// newCornellSmokeScene replaces the blocks with black and white smoke under a larger, dimmer light
func newCornellSmokeScene(opts Options, sampler core.Sampler) (*Scene, error) {
	light := geometry.NewXZRect(113, 443, 127, 432, boxSize-1, material.NewDiffuseLight(core.Grey(7)))
	world := cornellWalls(light)

	tall, short := cornellBlocks(material.NewLambertian(core.Grey(0.73)))
	world.Add(geometry.NewConstantMediumColor(tall, 0.01, core.Grey(0)))
	world.Add(geometry.NewConstantMediumColor(short, 0.01, core.Grey(1)))

	sampling := renderer.SamplingConfig{Width: 400, SamplesPerPixel: 200, MaxDepth: 50}
	return newScene("cornell-smoke", world, cornellCamera(), integrator.NewSolidBackground(core.Color{}), sampling, sampler), nil
}
