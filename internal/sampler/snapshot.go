package sampler

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VoidMesh/density/internal/interp"
)

// ErrOutOfRange is returned for snapshot reads outside the sampled lattice.
var ErrOutOfRange = errors.New("coordinate out of range")

// Snapshot is the density field of one tile realised at every integer block
// position. Values are stored column-major: all heights of column (x, z) are
// contiguous, columns ordered x fastest.
type Snapshot struct {
	ID        uuid.UUID
	TileX     int
	TileZ     int
	Mode      interp.Mode
	Height    int
	Values    []float64
	CreatedAt time.Time
}

// HeightFor returns the number of samples per column for a mode.
func HeightFor(m interp.Mode) int {
	if m == interp.Trilinear {
		return interp.TileHeight
	}
	return 1
}

func newSnapshot(tileX, tileZ int, mode interp.Mode, now time.Time) *Snapshot {
	height := HeightFor(mode)
	return &Snapshot{
		ID:        uuid.New(),
		TileX:     tileX,
		TileZ:     tileZ,
		Mode:      mode,
		Height:    height,
		Values:    make([]float64, interp.TileSize*interp.TileSize*height),
		CreatedAt: now.UTC(),
	}
}

func (s *Snapshot) index(x, y, z int) int {
	return (z*interp.TileSize+x)*s.Height + y
}

// At returns the sampled density at local block (x, y, z). Bilinear
// snapshots only hold y = 0.
func (s *Snapshot) At(x, y, z int) (float64, error) {
	if x < 0 || x >= interp.TileSize || z < 0 || z >= interp.TileSize || y < 0 || y >= s.Height {
		return 0, fmt.Errorf("%w: (%d, %d, %d)", ErrOutOfRange, x, y, z)
	}
	return s.Values[s.index(x, y, z)], nil
}

// Column returns the vertical samples of local column (x, z), bottom first.
// The slice aliases the snapshot.
func (s *Snapshot) Column(x, z int) ([]float64, error) {
	if x < 0 || x >= interp.TileSize || z < 0 || z >= interp.TileSize {
		return nil, fmt.Errorf("%w: column (%d, %d)", ErrOutOfRange, x, z)
	}
	start := s.index(x, 0, z)
	return s.Values[start : start+s.Height], nil
}

func (s *Snapshot) validate() error {
	if s.Height != HeightFor(s.Mode) {
		return fmt.Errorf("snapshot %s: height %d does not match %s", s.ID, s.Height, s.Mode)
	}
	if want := interp.TileSize * interp.TileSize * s.Height; len(s.Values) != want {
		return fmt.Errorf("snapshot %s: %d values, want %d", s.ID, len(s.Values), want)
	}
	return nil
}
