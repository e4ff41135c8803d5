package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background supplies the radiance of rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Color
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	Radiance core.Color
}

// NewSolidBackground creates a constant background
func NewSolidBackground(color core.Color) *SolidBackground {
	return &SolidBackground{Radiance: color}
}

func (b *SolidBackground) Color(ray core.Ray) core.Color {
	return b.Radiance
}

// GradientBackground blends from Bottom to Top by the ray's vertical direction
type GradientBackground struct {
	Top    core.Color
	Bottom core.Color
}

// NewGradientBackground creates a sky gradient
func NewGradientBackground(top, bottom core.Color) *GradientBackground {
	return &GradientBackground{Top: top, Bottom: bottom}
}

// NewSkyBackground creates the classic white-to-blue sky
func NewSkyBackground() *GradientBackground {
	return NewGradientBackground(core.NewColor(0.5, 0.7, 1.0), core.NewColor(1.0, 1.0, 1.0))
}

// Color maps direction Y from [-1,1] to a blend factor in [0,1]
func (b *GradientBackground) Color(ray core.Ray) core.Color {
	direction := ray.Direction.Normalize()
	t := 0.5 * (direction.Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
