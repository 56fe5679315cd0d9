package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/VoidMesh/density/internal/interp"
	"github.com/VoidMesh/density/internal/logging"
	"github.com/VoidMesh/density/internal/sampler"
)

// LevelDB keeps payloads under snapshot-<id> and a per tile index under
// tile-<x>-<z>-<mode>/<created_at>-<id> pointing back at the id.
type LevelDB struct {
	db     *leveldb.DB
	logger logging.LoggerInterface
}

var _ Store = (*LevelDB)(nil)

// OpenLevelDB opens or creates the database directory at path.
func OpenLevelDB(path string, logger logging.LoggerInterface) (*LevelDB, error) {
	logger = logger.With("component", "leveldb-store")

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb: %w", err)
	}

	logger.Info("Database initialized", "path", path)
	return &LevelDB{db: db, logger: logger}, nil
}

func snapshotKey(id uuid.UUID) []byte {
	return []byte("snapshot-" + id.String())
}

func tilePrefix(tileX, tileZ int, mode interp.Mode) []byte {
	return []byte(fmt.Sprintf("tile-%d-%d-%s/", tileX, tileZ, mode))
}

func tileKey(s *sampler.Snapshot) []byte {
	// fixed width keeps lexical order equal to creation order; the id keeps
	// snapshots created in the same nanosecond apart
	return append(tilePrefix(s.TileX, s.TileZ, s.Mode), fmt.Sprintf("%020d-%s", s.CreatedAt.UnixNano(), s.ID)...)
}

// tileKeyCreatedAt extracts the creation timestamp from an index key.
func tileKeyCreatedAt(key string) (int64, error) {
	suffix := key[strings.LastIndexByte(key, '/')+1:]
	if i := strings.IndexByte(suffix, '-'); i >= 0 {
		suffix = suffix[:i]
	}
	return strconv.ParseInt(suffix, 10, 64)
}

func (l *LevelDB) Save(ctx context.Context, snap *sampler.Snapshot) error {
	if snap == nil {
		return errors.New("snapshot cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := sampler.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	batch := new(leveldb.Batch)
	batch.Put(snapshotKey(snap.ID), payload)
	batch.Put(tileKey(snap), []byte(snap.ID.String()))
	if err := l.db.Write(batch, nil); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	l.logger.Debug("Saved snapshot", "snapshot_id", snap.ID, "bytes", len(payload))
	return nil
}

func (l *LevelDB) Load(ctx context.Context, id uuid.UUID) (*sampler.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := l.db.Get(snapshotKey(id), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return sampler.Unmarshal(data)
}

func (l *LevelDB) LoadTile(ctx context.Context, tileX, tileZ int, mode interp.Mode) (*sampler.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	iter := l.db.NewIterator(util.BytesPrefix(tilePrefix(tileX, tileZ, mode)), nil)
	defer iter.Release()

	if !iter.Last() {
		if err := iter.Error(); err != nil {
			return nil, fmt.Errorf("failed to scan tile index: %w", err)
		}
		return nil, ErrNotFound
	}

	id, err := uuid.ParseBytes(iter.Value())
	if err != nil {
		return nil, fmt.Errorf("corrupt tile index entry %q: %w", iter.Key(), err)
	}
	return l.Load(ctx, id)
}

func (l *LevelDB) Delete(ctx context.Context, id uuid.UUID) error {
	snap, err := l.Load(ctx, id)
	if err != nil {
		return err
	}

	batch := new(leveldb.Batch)
	batch.Delete(snapshotKey(id))
	batch.Delete(tileKey(snap))
	if err := l.db.Write(batch, nil); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

func (l *LevelDB) PruneBefore(ctx context.Context, cutoff time.Time) (int, error) {
	iter := l.db.NewIterator(util.BytesPrefix([]byte("tile-")), nil)
	defer iter.Release()

	batch := new(leveldb.Batch)
	removed := 0
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		key := string(iter.Key())
		created, err := tileKeyCreatedAt(key)
		if err != nil {
			return 0, fmt.Errorf("corrupt tile index key %q: %w", key, err)
		}
		if created >= cutoff.UnixNano() {
			continue
		}

		id, err := uuid.ParseBytes(iter.Value())
		if err != nil {
			return 0, fmt.Errorf("corrupt tile index entry %q: %w", key, err)
		}
		batch.Delete(append([]byte(nil), iter.Key()...))
		batch.Delete(snapshotKey(id))
		removed++
	}
	if err := iter.Error(); err != nil {
		return 0, fmt.Errorf("failed to scan tile index: %w", err)
	}

	if removed > 0 {
		if err := l.db.Write(batch, nil); err != nil {
			return 0, fmt.Errorf("failed to prune snapshots: %w", err)
		}
	}
	l.logger.Debug("Pruned snapshots", "cutoff", cutoff, "removed", removed)
	return removed, nil
}

func (l *LevelDB) Close() error {
	return l.db.Close()
}
