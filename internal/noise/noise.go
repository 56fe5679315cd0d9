// Package noise provides the seeded noise sources handed to biome generators.
package noise

import (
	"errors"
	"fmt"
	"strings"

	"github.com/VoidMesh/density/internal/interp"
)

// ErrUnknownKind is returned by New for an unsupported noise kind.
var ErrUnknownKind = errors.New("unknown noise kind")

// Kind names a noise implementation.
type Kind string

const (
	KindPerlin  Kind = "perlin"
	KindSimplex Kind = "simplex"
)

// New creates the noise source of the given kind.
func New(kind Kind, seed int64) (interp.NoiseSource, error) {
	switch Kind(strings.ToLower(string(kind))) {
	case KindPerlin:
		return NewPerlin(seed), nil
	case KindSimplex:
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
