// Package biome defines the terrain generators blended by the tile
// interpolators and the classifiers that place them in the world.
package biome

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/VoidMesh/density/internal/interp"
	"github.com/VoidMesh/density/internal/noise"
)

// ErrUnknownBiome is returned by Lookup for names that are not registered.
var ErrUnknownBiome = errors.New("unknown biome")

// Biome is a noise generator with its own height profile.
type Biome struct {
	Name string
	// BaseHeight is the surface level in blocks.
	BaseHeight float64
	// Amplitude scales the 2D height noise.
	Amplitude float64
	// Gradient is the number of blocks over which 3D density drops by one.
	Gradient float64
	Octaves  noise.Octaves
}

var _ interp.Generator = (*Biome)(nil)

// Noise2D returns a surface height for the column.
func (b *Biome) Noise2D(src interp.NoiseSource, x, z int) float64 {
	return b.BaseHeight + b.Amplitude*b.Octaves.FBM2(src, float64(x), float64(z))
}

// Noise3D returns a density that is positive below the surface and negative
// above it.
func (b *Biome) Noise3D(src interp.NoiseSource, _ interp.World, x, y, z int) float64 {
	n := b.Octaves.FBM3(src, float64(x), float64(y), float64(z))
	return n + (b.BaseHeight-float64(y))/b.Gradient
}

func (b *Biome) String() string { return b.Name }

var (
	Ocean = &Biome{
		Name:       "ocean",
		BaseHeight: 40,
		Amplitude:  6,
		Gradient:   24,
		Octaves:    noise.Octaves{Count: 3, Frequency: 1.0 / 128, Persistence: 0.5, Lacunarity: 2},
	}
	Plains = &Biome{
		Name:       "plains",
		BaseHeight: 68,
		Amplitude:  4,
		Gradient:   16,
		Octaves:    noise.DefaultOctaves,
	}
	Hills = &Biome{
		Name:       "hills",
		BaseHeight: 84,
		Amplitude:  18,
		Gradient:   12,
		Octaves:    noise.DefaultOctaves,
	}
	Mountains = &Biome{
		Name:       "mountains",
		BaseHeight: 110,
		Amplitude:  48,
		Gradient:   8,
		Octaves:    noise.Octaves{Count: 5, Frequency: 1.0 / 48, Persistence: 0.55, Lacunarity: 2},
	}
)

var registry = map[string]*Biome{
	Ocean.Name:     Ocean,
	Plains.Name:    Plains,
	Hills.Name:     Hills,
	Mountains.Name: Mountains,
}

// Lookup returns the registered biome with the given name.
func Lookup(name string) (*Biome, error) {
	b, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBiome, name)
	}
	return b, nil
}

// Names lists the registered biome names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
