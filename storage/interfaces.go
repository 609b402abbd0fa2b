package storage

import (
	"context"

	"github.com/poiesic/docvault/core"
)

// DocumentRepository provides operations for managing document records.
// Implementations must be thread-safe: writes are serialized by the
// backend's transactions, reads run against free-threaded snapshots.
type DocumentRepository interface {
	// AddDocument adds a document to storage. A new ID is generated from
	// the sequence (IDs start at 1, increase monotonically, and are never
	// reused). UploadedAt is set to the current time if zero. A document
	// with an already-stored filename silently takes over the filename
	// index entry. Returns the document with ID and timestamp populated.
	AddDocument(ctx context.Context, doc *core.Document) (*core.Document, error)

	// UpdateDocuments updates existing documents in place.
	// Returns ErrNotFound if any document doesn't exist.
	UpdateDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// GetDocumentByFilename retrieves the document most recently stored
	// under the given filename. Returns ErrNotFound if no document has
	// that filename.
	GetDocumentByFilename(ctx context.Context, filename string) (*core.Document, error)

	// ListByDepartment retrieves all documents belonging to a department,
	// ordered by ascending ID (insertion order).
	ListByDepartment(ctx context.Context, department string) ([]*core.Document, error)

	// ListAll retrieves every stored document ordered by ascending ID.
	// Callers must gate this behind the Admin department check.
	ListAll(ctx context.Context) ([]*core.Document, error)

	// CountDocuments returns the number of stored documents.
	CountDocuments(ctx context.Context) (int, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the repository and releases resources.
	Close() error
}
