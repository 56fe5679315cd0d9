package api

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/VoidMesh/density/internal/interp"
	"github.com/VoidMesh/density/internal/sampler"
)

// Sampler is the part of sampler.Service the handlers depend on.
type Sampler interface {
	Mode() interp.Mode
	Build(ctx context.Context, tileX, tileZ int) (interp.Interpolator, error)
	Sample(ctx context.Context, tileX, tileZ int) (*sampler.Snapshot, error)
	SampleMany(ctx context.Context, coords []sampler.TileCoord) ([]*sampler.Snapshot, error)
}

var _ Sampler = (*sampler.Service)(nil)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type DensityResponse struct {
	TileX   int     `json:"tile_x"`
	TileZ   int     `json:"tile_z"`
	Mode    string  `json:"mode"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	Density float64 `json:"density"`
}

type ColumnResponse struct {
	TileX  int       `json:"tile_x"`
	TileZ  int       `json:"tile_z"`
	Mode   string    `json:"mode"`
	X      float64   `json:"x"`
	Z      float64   `json:"z"`
	Values []float64 `json:"values"`
}

type SnapshotMeta struct {
	ID        uuid.UUID `json:"id"`
	TileX     int       `json:"tile_x"`
	TileZ     int       `json:"tile_z"`
	Mode      string    `json:"mode"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

type SnapshotResponse struct {
	SnapshotMeta
	Values []float64 `json:"values"`
}

type BatchRequest struct {
	Tiles []sampler.TileCoord `json:"tiles"`
}

type BatchResponse struct {
	Snapshots []SnapshotMeta `json:"snapshots"`
}

// BatchErrorResponse lists the snapshots that were stored before a batch
// save failed. Saves are not rolled back.
type BatchErrorResponse struct {
	ErrorResponse
	Saved []SnapshotMeta `json:"saved"`
}

func newSnapshotMeta(s *sampler.Snapshot) SnapshotMeta {
	return SnapshotMeta{
		ID:        s.ID,
		TileX:     s.TileX,
		TileZ:     s.TileZ,
		Mode:      s.Mode.String(),
		Height:    s.Height,
		CreatedAt: s.CreatedAt,
	}
}
