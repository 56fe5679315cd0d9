package biome

import (
	"fmt"
	"sync"

	"github.com/VoidMesh/density/internal/interp"
)

// DefaultScale is the world distance covered by one unit of elevation noise.
const DefaultScale = 256.0

// Classifier picks a biome from a low frequency elevation field.
type Classifier struct {
	src   interp.NoiseSource
	scale float64
}

var _ interp.Classifier = (*Classifier)(nil)

// NewClassifier creates a classifier sampling src. A non-positive scale
// falls back to DefaultScale.
func NewClassifier(src interp.NoiseSource, scale float64) *Classifier {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &Classifier{src: src, scale: scale}
}

// Resolve returns the biome at world column (x, z). The populate phase
// ignores the detail layer so decoration follows broad biome regions.
func (c *Classifier) Resolve(x, z int, phase interp.Phase) (interp.Generator, error) {
	if c.src == nil {
		return nil, fmt.Errorf("classify (%d, %d): no noise source", x, z)
	}

	fx, fz := float64(x), float64(z)
	elevation := c.src.Noise2D(fx/c.scale, fz/c.scale)
	combined := elevation
	if phase == interp.PhaseBase {
		detail := c.src.Noise2D(fx/(c.scale/5), fz/(c.scale/5))
		combined = elevation*0.7 + detail*0.3
	}

	return fromElevation(combined), nil
}

func fromElevation(e float64) *Biome {
	switch {
	case e < -0.25:
		return Ocean
	case e < 0.15:
		return Plains
	case e < 0.4:
		return Hills
	default:
		return Mountains
	}
}

// Uniform resolves every column to the same generator.
type Uniform struct {
	Generator interp.Generator
}

func (u Uniform) Resolve(int, int, interp.Phase) (interp.Generator, error) {
	if u.Generator == nil {
		return nil, fmt.Errorf("uniform classifier: %w", ErrUnknownBiome)
	}
	return u.Generator, nil
}

type cacheKey struct {
	x, z  int
	phase interp.Phase
}

// Cached memoises successful lookups of another classifier. Neighbouring
// tiles share most of their coarse columns, so parallel builds hit the cache
// often. Errors are not cached.
type Cached struct {
	next    interp.Classifier
	entries sync.Map
}

// NewCached wraps next with a concurrency safe memo.
func NewCached(next interp.Classifier) *Cached {
	return &Cached{next: next}
}

func (c *Cached) Resolve(x, z int, phase interp.Phase) (interp.Generator, error) {
	key := cacheKey{x: x, z: z, phase: phase}
	if g, ok := c.entries.Load(key); ok {
		return g.(interp.Generator), nil
	}

	g, err := c.next.Resolve(x, z, phase)
	if err != nil {
		return nil, err
	}
	actual, _ := c.entries.LoadOrStore(key, g)
	return actual.(interp.Generator), nil
}
