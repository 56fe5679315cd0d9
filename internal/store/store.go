// Package store persists density snapshots.
package store

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VoidMesh/density/internal/config"
	"github.com/VoidMesh/density/internal/interp"
	"github.com/VoidMesh/density/internal/logging"
	"github.com/VoidMesh/density/internal/sampler"
)

// ErrNotFound is returned when no snapshot matches a lookup.
var ErrNotFound = errors.New("snapshot not found")

// Store is implemented by every snapshot backend.
type Store interface {
	Save(ctx context.Context, s *sampler.Snapshot) error
	Load(ctx context.Context, id uuid.UUID) (*sampler.Snapshot, error)
	// LoadTile returns the most recent snapshot of a tile in the given mode.
	LoadTile(ctx context.Context, tileX, tileZ int, mode interp.Mode) (*sampler.Snapshot, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// PruneBefore removes snapshots created before cutoff and reports how
	// many were removed.
	PruneBefore(ctx context.Context, cutoff time.Time) (int, error)
	Close() error
}

// Open selects the backend named by cfg.Driver.
func Open(cfg config.StoreConfig, logger logging.LoggerInterface) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case config.DriverSQLite:
		s, err := OpenSQLite(cfg.Path, cfg.MaxOpenConns, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverLevelDB:
		s, err := OpenLevelDB(cfg.Path, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
