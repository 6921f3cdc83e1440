package ports

import (
	"context"
	"errors"
	"io"

	"daybook/internal/domain"
)

var (
	// ErrSnapshotNotFound is returned by Load when the user has no stored data yet
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrSnapshotExists is returned by Initialize when data already exists for the user
	ErrSnapshotExists = errors.New("snapshot already exists")
)

// Store persists whole per-user aggregates. Implementations never merge:
// Save overwrites the stored snapshot wholesale.
type Store interface {
	// Load returns the stored snapshot or ErrSnapshotNotFound
	Load(ctx context.Context, userID string) (*domain.Aggregate, error)

	// Save replaces the stored snapshot
	Save(ctx context.Context, userID string, data *domain.Aggregate) error

	// Initialize creates an empty snapshot for a new user.
	// It fails with ErrSnapshotExists when one is already present.
	Initialize(ctx context.Context, userID string) (*domain.Aggregate, error)
}

// SnapshotCodec serializes aggregates for export and import
type SnapshotCodec interface {
	Encode(w io.Writer, data *domain.Aggregate) error
	Decode(r io.Reader) (*domain.Aggregate, error)
}
