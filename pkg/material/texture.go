package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns the color at texture coordinates (u, v) and surface point p.
	// Image textures use (u, v); procedural textures use p.
	Value(u, v float64, p core.Point) core.Color
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// NewSolidRGB creates a solid color texture from RGB components
func NewSolidRGB(r, g, b float64) *SolidColor {
	return NewSolidColor(core.NewColor(r, g, b))
}

// Value returns the solid color regardless of coordinates
func (s *SolidColor) Value(u, v float64, p core.Point) core.Color {
	return s.Color
}

// Checker alternates between two textures in a 3D sine lattice
type Checker struct {
	Even Texture
	Odd  Texture
}

// NewChecker creates a checker texture
func NewChecker(even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// NewCheckerColors creates a checker texture from two solid colors
func NewCheckerColors(even, odd core.Color) *Checker {
	return NewChecker(NewSolidColor(even), NewSolidColor(odd))
}

// Value selects the odd texture where the sine product is negative
func (c *Checker) Value(u, v float64, p core.Point) core.Color {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
