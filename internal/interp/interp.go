// Package interp builds per-tile interpolation lattices over a biome-blended
// density field and answers point queries inside the tile.
//
// The expensive collaborators (biome classifier and noise source) are only
// consulted while a tile interpolator is constructed. Every query afterwards
// is a fixed-size array lookup plus bilinear or trilinear arithmetic.
package interp

//go:generate mockgen -source=interp.go -destination=mocks/mock_interp.go -package=mocks

// NoiseSource is the seeded pseudo-random noise function shared by all
// biome generators. Tile interpolators never inspect it; they only forward it.
type NoiseSource interface {
	Seed() int64
	Noise2D(x, z float64) float64
	Noise3D(x, y, z float64) float64
}

// World is the generation context handed to 3D generator calls.
type World interface {
	Name() string
	Seed() int64
}

// Generator is the noise function of a single biome.
type Generator interface {
	Noise2D(src NoiseSource, x, z int) float64
	Noise3D(src NoiseSource, w World, x, y, z int) float64
}

// Phase selects which generation pass a classifier resolves for.
type Phase int

const (
	PhaseBase Phase = iota
	PhasePopulate
)

func (p Phase) String() string {
	switch p {
	case PhaseBase:
		return "base"
	case PhasePopulate:
		return "populate"
	default:
		return "unknown"
	}
}

// Classifier maps a world column to the generator of the biome occupying it.
// Implementations must be safe for concurrent use when tiles are built in
// parallel.
type Classifier interface {
	Resolve(x, z int, phase Phase) (Generator, error)
}
