package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// ShadowAcneEpsilon is the minimum hit distance, which keeps a scattered ray
// from re-hitting the surface it just left
const ShadowAcneEpsilon = 0.001

// PathTracingIntegrator implements recursive unidirectional path tracing
type PathTracingIntegrator struct {
	MaxDepth int
}

// NewPathTracingIntegrator creates a path tracer that follows at most maxDepth bounces
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Object, background Background, sampler core.Sampler) core.Color {
	return RayColor(ray, background, world, pt.MaxDepth, sampler)
}

// RayColor returns emitted light plus attenuated light from the scattered ray,
// recursing until the ray escapes, is absorbed, or depth runs out
func RayColor(ray core.Ray, background Background, world geometry.Object, depth int, sampler core.Sampler) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1), sampler)
	if !isHit {
		return background.Color(ray)
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return emitted
	}

	incoming := RayColor(scatter.Scattered, background, world, depth-1, sampler)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
