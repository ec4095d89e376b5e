package storage

import (
	"context"

	"github.com/poiesic/strand/core"
)

// StringRepository provides operations for managing analyzed string records.
// Implementations must be safe for concurrent use: mutations are mutually
// exclusive with each other, and reads observe a consistent snapshot.
type StringRepository interface {
	// Insert stores a new record. The record's Id and Properties must already
	// be derived from its Value; Insert assigns CreatedAt and the insertion
	// sequence number, and returns the stored record.
	// Returns ErrDuplicateKey if a record with the same id already exists.
	Insert(ctx context.Context, record *core.StringRecord) (*core.StringRecord, error)

	// Get retrieves a record by its content-derived id.
	// Returns ErrNotFound if the record doesn't exist.
	Get(ctx context.Context, id core.ID) (*core.StringRecord, error)

	// Delete removes a record by its content-derived id.
	// Returns ErrNotFound if the record doesn't exist.
	Delete(ctx context.Context, id core.ID) error

	// List returns all current records in insertion order.
	List(ctx context.Context) ([]*core.StringRecord, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Close releases resources held by the repository.
	Close() error
}
