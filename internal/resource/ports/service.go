package ports

import (
	"context"

	"github.com/commercekit/commerce-api/internal/resource/domain"
)

// Service is the uniform five-operation contract one collection exposes to
// the transport. The application mapper implements it; the observability
// adapter decorates it.
type Service interface {
	// Create builds a document from the declared fields present in body and
	// persists it, returning the new id.
	Create(ctx context.Context, body domain.Document) (string, error)
	// List returns every live document as {id, data} pairs.
	List(ctx context.Context) ([]domain.Entry, error)
	// Get loads a single document by id.
	Get(ctx context.Context, id string) (domain.Entry, error)
	// Update merges the supplied partial document into the stored one,
	// creating it when absent, and echoes the id back.
	Update(ctx context.Context, id string, partial domain.Document) (string, error)
	// Delete removes the document unconditionally.
	Delete(ctx context.Context, id string) error
}
