// Package apierrors carries the error taxonomy shared by every collection
// binding and the single place where errors map to HTTP status codes.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed operation.
type Kind int

const (
	// KindStore covers any failure reported by the backing document store.
	KindStore Kind = iota
	// KindValidation covers malformed create requests. The legacy contract
	// folds store failures during create into this kind as well.
	KindValidation
	// KindNotFound covers get-by-id on an absent document.
	KindNotFound
)

// Error attaches a kind and the owning resource name to an underlying cause.
type Error struct {
	Kind     Kind
	Resource string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	switch e.Kind {
	case KindValidation:
		return fmt.Sprintf("invalid %s payload", e.Resource)
	case KindNotFound:
		return fmt.Sprintf("%s not found", capitalizedOr(e.Resource, "document"))
	default:
		return fmt.Sprintf("%s store operation failed", e.Resource)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Validation wraps a rejected create request.
func Validation(resource string, err error) *Error {
	return &Error{Kind: KindValidation, Resource: resource, Err: err}
}

// NotFound reports an absent document. The message mirrors the wire text the
// API has always produced for this case.
func NotFound(resource string) *Error {
	return &Error{
		Kind:     KindNotFound,
		Resource: resource,
		Err:      fmt.Errorf("%s not found", capitalizedOr(resource, "document")),
	}
}

// Store wraps a failure surfaced by the document store.
func Store(resource string, err error) *Error {
	return &Error{Kind: KindStore, Resource: resource, Err: err}
}

// KindOf extracts the kind from an error chain, defaulting to KindStore.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindStore
}

// HTTPStatus is the one mapping point from the taxonomy to response codes.
// Not-found deliberately maps to 500 rather than 404: the baseline contract
// surfaces an absent document through the generic error path, and correcting
// it is a one-line change here.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func capitalizedOr(word, fallback string) string {
	if word == "" {
		return fallback
	}
	b := []byte(word)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
