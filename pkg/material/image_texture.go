package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x], row 0 at the top
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Color) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Value samples the texture at (u, v) using nearest-neighbor lookup.
// Coordinates are clamped to [0, 1]; v = 1 is the top row.
func (t *ImageTexture) Value(u, v float64, p core.Point) core.Color {
	// Without texture data, return solid cyan as a debugging aid
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return core.NewColor(0, 1, 1)
	}

	// NaN coordinates from degenerate geometry read the first texel
	if math.IsNaN(u) {
		u = 0
	}
	if math.IsNaN(v) {
		v = 0
	}

	u = core.Clamp(u, 0, 1)
	v = 1.0 - core.Clamp(v, 0, 1)

	x := min(max(int(u*float64(t.Width)), 0), t.Width-1)
	y := min(max(int(v*float64(t.Height)), 0), t.Height-1)

	return t.Pixels[y*t.Width+x]
}
