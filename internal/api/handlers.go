package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/VoidMesh/density/internal/interp"
	"github.com/VoidMesh/density/internal/logging"
	"github.com/VoidMesh/density/internal/store"
)

const (
	// MaxBatchTiles bounds the number of tiles sampled by one batch request.
	MaxBatchTiles = 64
	// MaxBatchBodyBytes bounds the size of a batch request body.
	MaxBatchBodyBytes = 64 << 10
)

type Handler struct {
	sampler Sampler
	store   store.Store
	logger  logging.LoggerInterface
}

func NewHandler(s Sampler, st store.Store, logger logging.LoggerInterface) *Handler {
	return &Handler{
		sampler: s,
		store:   st,
		logger:  logger.With("component", "api"),
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "density",
		"mode":      h.sampler.Mode().String(),
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

func (h *Handler) GetDensity(w http.ResponseWriter, r *http.Request) {
	tileX, tileZ, ok := h.tileCoords(w, r)
	if !ok {
		return
	}

	x, ok := h.localCoord(w, r, "x", interp.TileSize, true)
	if !ok {
		return
	}
	y, ok := h.localCoord(w, r, "y", interp.TileHeight, false)
	if !ok {
		return
	}
	z, ok := h.localCoord(w, r, "z", interp.TileSize, true)
	if !ok {
		return
	}

	tile, err := h.sampler.Build(r.Context(), tileX, tileZ)
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "failed to build tile", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, DensityResponse{
		TileX:   tileX,
		TileZ:   tileZ,
		Mode:    h.sampler.Mode().String(),
		X:       x,
		Y:       y,
		Z:       z,
		Density: tile.Value3(x, y, z),
	})
}

func (h *Handler) GetColumn(w http.ResponseWriter, r *http.Request) {
	tileX, tileZ, ok := h.tileCoords(w, r)
	if !ok {
		return
	}

	x, ok := h.localCoord(w, r, "x", interp.TileSize, true)
	if !ok {
		return
	}
	z, ok := h.localCoord(w, r, "z", interp.TileSize, true)
	if !ok {
		return
	}

	tile, err := h.sampler.Build(r.Context(), tileX, tileZ)
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "failed to build tile", err)
		return
	}

	mode := h.sampler.Mode()
	var values []float64
	if mode == interp.Bilinear {
		values = []float64{tile.Value(x, z)}
	} else {
		values = make([]float64, interp.TileHeight)
		for y := range values {
			values[y] = tile.Value3(x, float64(y), z)
		}
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, ColumnResponse{
		TileX:  tileX,
		TileZ:  tileZ,
		Mode:   mode.String(),
		X:      x,
		Z:      z,
		Values: values,
	})
}

func (h *Handler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	tileX, tileZ, ok := h.tileCoords(w, r)
	if !ok {
		return
	}

	snap, err := h.sampler.Sample(r.Context(), tileX, tileZ)
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "failed to sample tile", err)
		return
	}

	if err := h.store.Save(r.Context(), snap); err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "failed to save snapshot", err)
		return
	}

	h.logger.Info("Snapshot created", "snapshot_id", snap.ID, "tile_x", tileX, "tile_z", tileZ)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, newSnapshotMeta(snap))
}

func (h *Handler) CreateSnapshotBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	body := http.MaxBytesReader(w, r.Body, MaxBatchBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.renderError(w, r, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), nil)
			return
		}
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if len(req.Tiles) == 0 {
		h.renderError(w, r, http.StatusBadRequest, "tiles must not be empty", nil)
		return
	}
	if len(req.Tiles) > MaxBatchTiles {
		h.renderError(w, r, http.StatusBadRequest, fmt.Sprintf("at most %d tiles per batch", MaxBatchTiles), nil)
		return
	}

	snaps, err := h.sampler.SampleMany(r.Context(), req.Tiles)
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "failed to sample tiles", err)
		return
	}

	resp := BatchResponse{Snapshots: make([]SnapshotMeta, 0, len(snaps))}
	for _, snap := range snaps {
		if err := h.store.Save(r.Context(), snap); err != nil {
			h.logger.Error("API error", "error", err, "message", "failed to save snapshot batch", "saved", len(resp.Snapshots))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, BatchErrorResponse{
				ErrorResponse: ErrorResponse{
					Error:   "Internal server error",
					Code:    http.StatusInternalServerError,
					Message: "failed to save snapshot batch",
				},
				Saved: resp.Snapshots,
			})
			return
		}
		resp.Snapshots = append(resp.Snapshots, newSnapshotMeta(snap))
	}

	h.logger.Info("Snapshot batch created", "count", len(snaps))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *Handler) GetLatestSnapshot(w http.ResponseWriter, r *http.Request) {
	tileX, tileZ, ok := h.tileCoords(w, r)
	if !ok {
		return
	}

	snap, err := h.store.LoadTile(r.Context(), tileX, tileZ, h.sampler.Mode())
	if err != nil {
		h.renderStoreError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, SnapshotResponse{SnapshotMeta: newSnapshotMeta(snap), Values: snap.Values})
}

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	id, ok := h.snapshotID(w, r)
	if !ok {
		return
	}

	snap, err := h.store.Load(r.Context(), id)
	if err != nil {
		h.renderStoreError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, SnapshotResponse{SnapshotMeta: newSnapshotMeta(snap), Values: snap.Values})
}

func (h *Handler) DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	id, ok := h.snapshotID(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.renderStoreError(w, r, err)
		return
	}

	h.logger.Info("Snapshot deleted", "snapshot_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) tileCoords(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	tileX, err := strconv.Atoi(chi.URLParam(r, "x"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid tile x coordinate", err)
		return 0, 0, false
	}

	tileZ, err := strconv.Atoi(chi.URLParam(r, "z"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid tile z coordinate", err)
		return 0, 0, false
	}

	return tileX, tileZ, true
}

// localCoord reads a tile-local query parameter and checks 0 <= v < limit.
// Interpolator lookups panic outside that range.
func (h *Handler) localCoord(w http.ResponseWriter, r *http.Request, name string, limit int, required bool) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		if required {
			h.renderError(w, r, http.StatusBadRequest, fmt.Sprintf("missing %s coordinate", name), nil)
			return 0, false
		}
		return 0, true
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid %s coordinate", name), err)
		return 0, false
	}
	if !(v >= 0 && v < float64(limit)) {
		h.renderError(w, r, http.StatusBadRequest, fmt.Sprintf("%s coordinate must be in [0, %d)", name, limit), nil)
		return 0, false
	}

	return v, true
}

func (h *Handler) snapshotID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid snapshot id", err)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) renderStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		h.renderError(w, r, http.StatusNotFound, "snapshot not found", nil)
		return
	}
	h.renderError(w, r, http.StatusInternalServerError, "failed to load snapshot", err)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	errorResponse := ErrorResponse{
		Error:   message,
		Code:    status,
		Message: message,
	}

	if err != nil {
		h.logger.Error("API error", "error", err, "message", message, "status", status)
		// Don't expose internal errors to the client
		if status >= 500 {
			errorResponse.Error = "Internal server error"
		}
	}

	render.Status(r, status)
	render.JSON(w, r, errorResponse)
}
