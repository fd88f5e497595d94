package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/ecotab"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ ecotab.SnapshotService = (*SnapshotService)(nil)

const snapshotColumns = "id, catalog, page, source_url, content, content_hash, fetched_at"

// SnapshotService implements ecotab.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// hashContent returns the big-endian hex xxHash of content.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateSnapshot stores a new snapshot.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *ecotab.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	snap.ID = uuid.New().String()
	snap.FetchedAt = time.Now().UTC()
	snap.ContentHash = hashContent(snap.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (`+snapshotColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, snap.ID, string(snap.Catalog), snap.Page, snap.SourceURL, snap.Content, snap.ContentHash,
		snap.FetchedAt.Format(time.RFC3339))

	return err
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*ecotab.Snapshot, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+snapshotColumns+" FROM snapshots WHERE id = ?", id)
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ecotab.Errorf(ecotab.ENOTFOUND, "snapshot not found")
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter ecotab.SnapshotFilter) ([]*ecotab.Snapshot, error) {
	query := newSelectQuery(snapshotColumns, "snapshots")
	if filter.ID != nil {
		query.and("id = ?", *filter.ID)
	}
	if filter.Catalog != nil {
		query.and("catalog = ?", string(*filter.Catalog))
	}
	if filter.Page != nil {
		query.and("page = ?", *filter.Page)
	}
	query.orderBy("fetched_at DESC, rowid DESC")
	query.paginate(filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.sql.String(), query.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*ecotab.Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}

	return snaps, rows.Err()
}

// DeleteSnapshot permanently removes a snapshot.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ecotab.Errorf(ecotab.ENOTFOUND, "snapshot not found")
	}

	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*ecotab.Snapshot, error) {
	var snap ecotab.Snapshot
	var catalog, fetchedAt string

	if err := row.Scan(&snap.ID, &catalog, &snap.Page, &snap.SourceURL,
		&snap.Content, &snap.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}
	snap.Catalog = ecotab.Catalog(catalog)

	var err error
	if snap.FetchedAt, err = parseTimestamp(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}
	return &snap, nil
}
