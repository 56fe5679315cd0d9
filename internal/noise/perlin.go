package noise

import (
	"github.com/aquilax/go-perlin"
)

// Perlin implements interp.NoiseSource using Perlin noise.
type Perlin struct {
	noise *perlin.Perlin
	seed  int64
}

// NewPerlin creates a Perlin noise source with the given seed.
func NewPerlin(seed int64) *Perlin {
	// alpha=2, beta=2, n=3 give terrain-like noise
	return &Perlin{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		seed:  seed,
	}
}

// Noise2D returns a value in roughly [-1, 1] for the given coordinates.
func (p *Perlin) Noise2D(x, z float64) float64 {
	return p.noise.Noise2D(x, z)
}

// Noise3D returns a value in roughly [-1, 1] for the given coordinates.
func (p *Perlin) Noise3D(x, y, z float64) float64 {
	return p.noise.Noise3D(x, y, z)
}

// Seed returns the seed the source was created with.
func (p *Perlin) Seed() int64 {
	return p.seed
}
