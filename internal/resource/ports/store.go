// Package ports defines the contracts between the resource mapper and its
// collaborators: the document store on one side and the transport on the other.
package ports

import (
	"context"
	"errors"

	"github.com/commercekit/commerce-api/internal/resource/domain"
)

// ErrNotFound signals that no document exists under the requested id.
var ErrNotFound = errors.New("document not found")

// Store is a process-wide handle to the backing document database. It is
// initialized once at startup and shared by every collection binding; safe
// concurrent use is the adapter's responsibility.
type Store interface {
	Collection(name string) Collection
}

// Collection abstracts one named grouping of documents. Every call is a
// single attempt against the store with no retries.
type Collection interface {
	// Add persists a new document and returns the store-assigned id.
	Add(ctx context.Context, doc domain.Document) (string, error)
	// Get fetches one document, returning ErrNotFound when the id is absent.
	Get(ctx context.Context, id string) (domain.Document, error)
	// List returns every document in the collection. Ordering is
	// implementation-defined and not part of the contract.
	List(ctx context.Context) ([]domain.Entry, error)
	// Merge overlays the supplied fields onto the document, creating it
	// when absent. Unspecified fields keep their prior values.
	Merge(ctx context.Context, id string, partial domain.Document) error
	// Delete removes the document unconditionally. Deleting an id that does
	// not exist is a success.
	Delete(ctx context.Context, id string) error
}
