package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin generates gradient noise from random unit vectors on a lattice
type Perlin struct {
	ranvec [perlinPointCount]core.Vec3
	permX  [perlinPointCount]int
	permY  [perlinPointCount]int
	permZ  [perlinPointCount]int
}

// NewPerlin builds the gradient and permutation tables from the sampler
func NewPerlin(sampler core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.ranvec {
		p.ranvec[i] = core.RandomVec3(sampler, -1, 1).Normalize()
	}
	generatePerm(&p.permX, sampler)
	generatePerm(&p.permY, sampler)
	generatePerm(&p.permZ, sampler)
	return p
}

// generatePerm fills perm with a Fisher-Yates shuffle of 0..n-1
func generatePerm(perm *[perlinPointCount]int, sampler core.Sampler) {
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		target := core.RandomInt(sampler, i+1)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise returns smoothed gradient noise in roughly [-1, 1]
func (p *Perlin) Noise(point core.Point) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.ranvec[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

// Turbulence sums depth octaves of noise with halving weights
func (p *Perlin) Turbulence(point core.Point, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

// perlinInterp does Hermite-smoothed trilinear interpolation of lattice gradients
func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Noise is a marble-like texture driven by Perlin turbulence
type Noise struct {
	perlin *Perlin
	Scale  float64
}

// NewNoise creates a noise texture with its own Perlin tables
func NewNoise(scale float64, sampler core.Sampler) *Noise {
	return &Noise{perlin: NewPerlin(sampler), Scale: scale}
}

// Value returns a grey level phase-shifted along z by turbulence
func (n *Noise) Value(u, v float64, p core.Point) core.Color {
	return core.Grey(0.5 * (1 + math.Sin(n.Scale*p.Z+10*n.perlin.Turbulence(p, 7))))
}
