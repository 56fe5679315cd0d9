package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/VoidMesh/density/internal/interp"
	"github.com/VoidMesh/density/internal/logging"
	"github.com/VoidMesh/density/internal/sampler"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLite stores snapshot payloads in a single table.
type SQLite struct {
	db     *sql.DB
	logger logging.LoggerInterface
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens the database at path and applies pending migrations.
func OpenSQLite(path string, maxOpenConns int, logger logging.LoggerInterface) (*SQLite, error) {
	logger = logger.With("component", "sqlite-store")

	logger.Debug("Opening database connection", "path", path)
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db, logger); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("Database initialized", "path", path)
	return &SQLite{db: db, logger: logger}, nil
}

func runMigrations(db *sql.DB, logger logging.LoggerInterface) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Debug("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Debug("Successfully applied migrations")
	}
	return nil
}

func (s *SQLite) logQuery(query string, start time.Time, err error, args ...interface{}) {
	fields := append([]interface{}{"query", query, "duration", time.Since(start)}, args...)
	if err != nil {
		s.logger.Debug("Database query failed", append(fields, "error", err)...)
		return
	}
	s.logger.Debug("Database query executed", fields...)
}

func (s *SQLite) Save(ctx context.Context, snap *sampler.Snapshot) (err error) {
	if snap == nil {
		return errors.New("snapshot cannot be nil")
	}
	start := time.Now()
	defer func() { s.logQuery("SaveSnapshot", start, err, "snapshot_id", snap.ID) }()

	payload, err := sampler.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO snapshots (id, tile_x, tile_z, mode, height, payload, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snap.ID.String(), snap.TileX, snap.TileZ, snap.Mode.String(), snap.Height, payload, snap.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context, id uuid.UUID) (snap *sampler.Snapshot, err error) {
	start := time.Now()
	defer func() { s.logQuery("LoadSnapshot", start, err, "snapshot_id", id) }()

	row := s.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE id = ?`, id.String())
	return scanSnapshot(row)
}

func (s *SQLite) LoadTile(ctx context.Context, tileX, tileZ int, mode interp.Mode) (snap *sampler.Snapshot, err error) {
	start := time.Now()
	defer func() { s.logQuery("LoadTileSnapshot", start, err, "tile_x", tileX, "tile_z", tileZ) }()

	row := s.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots
		 WHERE tile_x = ? AND tile_z = ? AND mode = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT 1`,
		tileX, tileZ, mode.String(),
	)
	return scanSnapshot(row)
}

func scanSnapshot(row *sql.Row) (*sampler.Snapshot, error) {
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return sampler.Unmarshal(payload)
}

func (s *SQLite) Delete(ctx context.Context, id uuid.UUID) (err error) {
	start := time.Now()
	defer func() { s.logQuery("DeleteSnapshot", start, err, "snapshot_id", id) }()

	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLite) PruneBefore(ctx context.Context, cutoff time.Time) (n int, err error) {
	start := time.Now()
	defer func() { s.logQuery("PruneSnapshots", start, err, "cutoff", cutoff, "removed", n) }()

	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE created_at < ?`, cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}
	return int(removed), nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
