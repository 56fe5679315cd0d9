// Package sampler turns tile interpolators into realised density snapshots.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/VoidMesh/density/internal/interp"
	"github.com/VoidMesh/density/internal/logging"
)

// TileCoord addresses a tile in tile units.
type TileCoord struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// Options configures a Service.
type Options struct {
	Mode       interp.Mode
	World      interp.World
	Classifier interp.Classifier
	Source     interp.NoiseSource
	// Workers bounds concurrent tile builds in SampleMany. Values below one
	// are treated as one.
	Workers int
}

// Service builds tile interpolators and samples them.
type Service struct {
	mode       interp.Mode
	world      interp.World
	classifier interp.Classifier
	src        interp.NoiseSource
	workers    int
	logger     logging.LoggerInterface
	now        func() time.Time
}

// NewService creates a sampling service with dependency injection.
func NewService(opts Options, logger logging.LoggerInterface) (*Service, error) {
	if opts.Classifier == nil {
		return nil, errors.New("classifier cannot be nil")
	}
	if opts.Mode != interp.Bilinear && opts.Mode != interp.Trilinear {
		return nil, fmt.Errorf("%w: %s", interp.ErrUnknownMode, opts.Mode)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	componentLogger := logger.With("component", "sampler", "mode", opts.Mode.String())
	componentLogger.Debug("Creating new sampler service", "workers", workers)

	return &Service{
		mode:       opts.Mode,
		world:      opts.World,
		classifier: opts.Classifier,
		src:        opts.Source,
		workers:    workers,
		logger:     componentLogger,
		now:        time.Now,
	}, nil
}

// NewServiceWithDefaultLogger creates a service logging through the global
// logger.
func NewServiceWithDefaultLogger(opts Options) (*Service, error) {
	return NewService(opts, logging.NewDefaultLoggerWrapper())
}

// Mode returns the interpolation mode tiles are built with.
func (s *Service) Mode() interp.Mode { return s.mode }

// Build constructs the interpolator for tile (tileX, tileZ).
func (s *Service) Build(ctx context.Context, tileX, tileZ int) (interp.Interpolator, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	tile, err := s.mode.New(s.world, tileX, tileZ, s.classifier, s.src)
	if err != nil {
		s.logger.Error("Failed to build tile", "tile_x", tileX, "tile_z", tileZ, "error", err)
		return nil, err
	}

	s.logger.Debug("Built tile", "tile_x", tileX, "tile_z", tileZ, "duration", time.Since(start))
	return tile, nil
}

// Sample builds tile (tileX, tileZ) and evaluates it at every integer block
// position.
func (s *Service) Sample(ctx context.Context, tileX, tileZ int) (*Snapshot, error) {
	tile, err := s.Build(ctx, tileX, tileZ)
	if err != nil {
		return nil, err
	}

	snap := newSnapshot(tileX, tileZ, s.mode, s.now())
	for z := 0; z < interp.TileSize; z++ {
		for x := 0; x < interp.TileSize; x++ {
			if snap.Height == 1 {
				snap.Values[snap.index(x, 0, z)] = tile.Value(float64(x), float64(z))
				continue
			}
			for y := 0; y < snap.Height; y++ {
				snap.Values[snap.index(x, y, z)] = tile.Value3(float64(x), float64(y), float64(z))
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Sampled tile", "tile_x", tileX, "tile_z", tileZ, "snapshot_id", snap.ID, "values", len(snap.Values))
	return snap, nil
}

// SampleMany samples every coordinate with at most Workers tiles in flight.
// Results keep the order of coords. The first failure cancels the rest.
func (s *Service) SampleMany(ctx context.Context, coords []TileCoord) ([]*Snapshot, error) {
	out := make([]*Snapshot, len(coords))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, c := range coords {
		g.Go(func() error {
			snap, err := s.Sample(gctx, c.X, c.Z)
			if err != nil {
				return fmt.Errorf("sample tile (%d, %d): %w", c.X, c.Z, err)
			}
			out[i] = snap
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
