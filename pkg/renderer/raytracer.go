package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate reports the first non-positive field
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("invalid width %d: must be positive", c.Width)
	case c.Height <= 0:
		return fmt.Errorf("invalid height %d: must be positive", c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("invalid samples per pixel %d: must be positive", c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("invalid max depth %d: must be positive", c.MaxDepth)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Object
	GetBackground() integrator.Background
}

// ColorToRGBA converts an averaged linear color to 8-bit RGBA.
// Each channel is gamma corrected with sqrt, clamped to [0, 0.999] and scaled by 256.
func ColorToRGBA(c core.Color) color.RGBA {
	return color.RGBA{
		R: channelToByte(c.X),
		G: channelToByte(c.Y),
		B: channelToByte(c.Z),
		A: 255,
	}
}

func channelToByte(v float64) uint8 {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	return uint8(256 * core.Clamp(math.Sqrt(v), 0, 0.999))
}

// Render runs a full progressive render and returns the final image
func Render(ctx context.Context, scene Scene, sampling SamplingConfig, config ProgressiveConfig, logger core.Logger) (*image.RGBA, RenderStats, error) {
	pr, err := NewProgressiveRaytracer(scene, sampling, config, logger)
	if err != nil {
		return nil, RenderStats{}, err
	}

	passChan, errChan := pr.RenderProgressive(ctx)

	var last PassResult
	for result := range passChan {
		last = result
	}
	if err, ok := <-errChan; ok && err != nil {
		return nil, RenderStats{}, err
	}
	if last.Image == nil {
		return nil, RenderStats{}, fmt.Errorf("render produced no passes")
	}

	return last.Image, last.Stats, nil
}
