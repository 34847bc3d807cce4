// Package application holds the resource mapper: the generic logic that turns
// a validated request into a document-store operation and classifies store
// outcomes, uniformly for every collection it is instantiated with.
package application

import (
	"context"
	"errors"

	"github.com/commercekit/commerce-api/internal/resource/domain"
	"github.com/commercekit/commerce-api/internal/resource/ports"
	"github.com/commercekit/commerce-api/internal/shared/apierrors"
)

// Mapper binds one schema to one collection handle and implements the five
// uniform operations. It is instantiated once per collection at startup and
// shared by all requests.
type Mapper struct {
	schema domain.Schema
	coll   ports.Collection
}

var _ ports.Service = (*Mapper)(nil)

// NewMapper wires a mapper for one collection.
func NewMapper(schema domain.Schema, coll ports.Collection) *Mapper {
	return &Mapper{schema: schema, coll: coll}
}

// Schema exposes the bound schema for transports that render its texts.
func (m *Mapper) Schema() domain.Schema { return m.schema }

// Create copies the declared fields present in body into a fresh document and
// adds it to the collection. Missing fields do not fail the build; the store
// persists whatever subset arrived. Any failure from the add call is reported
// as a validation error, matching the contract this API has always had.
func (m *Mapper) Create(ctx context.Context, body domain.Document) (string, error) {
	doc := m.schema.BuildDocument(body)
	id, err := m.coll.Add(ctx, doc)
	if err != nil {
		return "", apierrors.Validation(m.schema.Singular, err)
	}
	return id, nil
}

// List fetches every document in the collection, in store iteration order.
func (m *Mapper) List(ctx context.Context) ([]domain.Entry, error) {
	entries, err := m.coll.List(ctx)
	if err != nil {
		return nil, apierrors.Store(m.schema.Singular, err)
	}
	return entries, nil
}

// Get loads one document by id.
func (m *Mapper) Get(ctx context.Context, id string) (domain.Entry, error) {
	doc, err := m.coll.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return domain.Entry{}, apierrors.NotFound(m.schema.Singular)
		}
		return domain.Entry{}, apierrors.Store(m.schema.Singular, err)
	}
	return domain.Entry{ID: id, Data: doc}, nil
}

// Update overlays the supplied fields onto the stored document. Merge creates
// the document when the id does not exist yet.
func (m *Mapper) Update(ctx context.Context, id string, partial domain.Document) (string, error) {
	if err := m.coll.Merge(ctx, id, partial); err != nil {
		return "", apierrors.Store(m.schema.Singular, err)
	}
	return id, nil
}

// Delete removes the document. An id that never existed is still a success.
func (m *Mapper) Delete(ctx context.Context, id string) error {
	if err := m.coll.Delete(ctx, id); err != nil {
		return apierrors.Store(m.schema.Singular, err)
	}
	return nil
}
