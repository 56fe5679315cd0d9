package noise

import "github.com/VoidMesh/density/internal/interp"

// Octaves describes a fractal sum of noise layers.
type Octaves struct {
	Count       int
	Frequency   float64
	Persistence float64
	Lacunarity  float64
}

// DefaultOctaves is a four layer sum halving amplitude per octave.
var DefaultOctaves = Octaves{Count: 4, Frequency: 1.0 / 64, Persistence: 0.5, Lacunarity: 2}

// FBM2 sums o.Count octaves of 2D noise, normalised by the total amplitude.
func (o Octaves) FBM2(src interp.NoiseSource, x, z float64) float64 {
	frequency := o.Frequency
	amplitude := 1.0
	sum, maxAmplitude := 0.0, 0.0

	for i := 0; i < o.Count; i++ {
		sum += src.Noise2D(x*frequency, z*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= o.Persistence
		frequency *= o.Lacunarity
	}

	if maxAmplitude == 0 {
		return 0
	}
	return sum / maxAmplitude
}

// FBM3 is the 3D counterpart of FBM2.
func (o Octaves) FBM3(src interp.NoiseSource, x, y, z float64) float64 {
	frequency := o.Frequency
	amplitude := 1.0
	sum, maxAmplitude := 0.0, 0.0

	for i := 0; i < o.Count; i++ {
		sum += src.Noise3D(x*frequency, y*frequency, z*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= o.Persistence
		frequency *= o.Lacunarity
	}

	if maxAmplitude == 0 {
		return 0
	}
	return sum / maxAmplitude
}
