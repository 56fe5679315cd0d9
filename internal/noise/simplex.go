package noise

import (
	"github.com/ojrac/opensimplex-go"
)

// Simplex implements interp.NoiseSource using OpenSimplex noise. Output is
// remapped from [0, 1] to [-1, 1] so both sources share a range.
type Simplex struct {
	noise opensimplex.Noise
	seed  int64
}

func NewSimplex(seed int64) *Simplex {
	return &Simplex{
		noise: opensimplex.NewNormalized(seed),
		seed:  seed,
	}
}

func (s *Simplex) Noise2D(x, z float64) float64 {
	return s.noise.Eval2(x, z)*2 - 1
}

func (s *Simplex) Noise3D(x, y, z float64) float64 {
	return s.noise.Eval3(x, y, z)*2 - 1
}

func (s *Simplex) Seed() int64 {
	return s.seed
}
