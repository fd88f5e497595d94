package ecotab

import (
	"context"
	"time"
)

// Snapshot is a fetched catalog page kept for offline re-parsing.
type Snapshot struct {
	ID          string    `json:"id"`
	Catalog     Catalog   `json:"catalog"`
	Page        string    `json:"page"`
	SourceURL   string    `json:"sourceUrl"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Catalog == "" {
		return Errorf(EINVALID, "snapshot catalog required")
	}
	if s.Page == "" {
		return Errorf(EINVALID, "snapshot page required")
	}
	if s.SourceURL == "" {
		return Errorf(EINVALID, "snapshot source URL required")
	}
	return nil
}

// SnapshotService represents a service for managing snapshots.
type SnapshotService interface {
	// CreateSnapshot stores a new snapshot, assigning its ID, hash and fetch time.
	CreateSnapshot(ctx context.Context, snap *Snapshot) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshot permanently removes a snapshot.
	// Returns ENOTFOUND if snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID      *string  `json:"id"`
	Catalog *Catalog `json:"catalog"`
	Page    *string  `json:"page"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
