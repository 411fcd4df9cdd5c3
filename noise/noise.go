// Package noise provides deterministic, seedable coherent noise fields.
// Every field returns values in [0, 1].
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Field is a smooth pseudo-random scalar field sampled in one to three dimensions.
type Field interface {
	Noise1D(x float64) float64
	Noise2D(x, y float64) float64
	Noise3D(x, y, z float64) float64
}

// Octave settings for the Perlin field: each octave halves the weight and
// doubles the frequency of the previous one.
const (
	alpha   = 2.0
	beta    = 2.0
	octaves = 3
)

// Perlin is a Field backed by classic Perlin noise.
type Perlin struct {
	gen *perlin.Perlin
}

// NewPerlin returns a Perlin field. Equal seeds yield identical fields.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{gen: perlin.NewPerlin(alpha, beta, octaves, seed)}
}

func (p *Perlin) Noise1D(x float64) float64 {
	if !finite(x) {
		return Mid
	}
	return normalize(p.gen.Noise1D(x))
}

func (p *Perlin) Noise2D(x, y float64) float64 {
	if !finite(x) || !finite(y) {
		return Mid
	}
	return normalize(p.gen.Noise2D(x, y))
}

func (p *Perlin) Noise3D(x, y, z float64) float64 {
	if !finite(x) || !finite(y) || !finite(z) {
		return Mid
	}
	return normalize(p.gen.Noise3D(x, y, z))
}

// Mid is the midpoint of every field's range. Non-finite sample
// coordinates resolve to it.
const Mid = 0.5

// Constant is a flat Field. Useful where the perturbation must vanish.
type Constant float64

func (c Constant) Noise1D(float64) float64 {
	return float64(c)
}

func (c Constant) Noise2D(float64, float64) float64 {
	return float64(c)
}

func (c Constant) Noise3D(float64, float64, float64) float64 {
	return float64(c)
}

// normalize maps the generator's signed output onto [0, 1].
func normalize(v float64) float64 {
	v = Mid + v*0.5
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
