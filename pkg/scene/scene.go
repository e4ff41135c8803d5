package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          *geometry.BVHNode // Acceleration structure over every top-level object
	Background     integrator.Background
	SamplingConfig renderer.SamplingConfig // Recommended settings; the CLI may override them
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera { return s.Camera }

// GetWorld returns the root of the scene's BVH
func (s *Scene) GetWorld() geometry.Object { return s.World }

// GetBackground returns the radiance seen by rays that escape the scene
func (s *Scene) GetBackground() integrator.Background { return s.Background }

// Stats describes the shape of the scene's BVH
func (s *Scene) Stats() geometry.BVHStats {
	return s.World.Stats()
}

// SetWidth changes the image width and derives the height from the camera aspect ratio
func (s *Scene) SetWidth(width int) {
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = max(1, int(float64(width)/s.CameraConfig.AspectRatio))
}

// newScene wraps objects in a BVH and builds the camera
func newScene(name string, objects *geometry.ObjectList, cameraConfig renderer.CameraConfig,
	background integrator.Background, sampling renderer.SamplingConfig, sampler core.Sampler) *Scene {
	s := &Scene{
		Name:           name,
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          geometry.NewBVHFromList(objects, cameraConfig.Time0, cameraConfig.Time1, sampler),
		Background:     background,
		SamplingConfig: sampling,
	}
	s.SetWidth(sampling.Width)
	return s
}

// lookAtCamera is the camera shared by the outdoor scenes: a 16:9 view of the origin from (13, 2, 3)
func lookAtCamera(aperture float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: 16.0 / 9.0,
		Aperture:    aperture,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	}
}
