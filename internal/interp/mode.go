package interp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned for interpolation modes other than Bilinear
// and Trilinear.
var ErrUnknownMode = errors.New("unknown interpolation mode")

// Interpolator answers density queries in tile-local coordinates.
// Coordinates outside the tile panic with an index out of range error.
type Interpolator interface {
	Value(x, z float64) float64
	Value3(x, y, z float64) float64
}

var (
	_ Interpolator = (*Tile2)(nil)
	_ Interpolator = (*Tile3)(nil)
)

// Mode selects the interpolation topology used for a tile.
type Mode int

const (
	Bilinear Mode = iota
	Trilinear
)

func (m Mode) String() string {
	switch m {
	case Bilinear:
		return "bilinear"
	case Trilinear:
		return "trilinear"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts the names produced by Mode.String, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bilinear", "2d":
		return Bilinear, nil
	case "trilinear", "3d":
		return Trilinear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// New constructs the tile interpolator for this mode. The world is only
// used by the trilinear variant.
func (m Mode) New(w World, tileX, tileZ int, c Classifier, src NoiseSource) (Interpolator, error) {
	switch m {
	case Bilinear:
		t, err := NewTile2(tileX, tileZ, c, src)
		if err != nil {
			return nil, err
		}
		return t, nil
	case Trilinear:
		t, err := NewTile3(w, tileX, tileZ, c, src)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, m)
	}
}
