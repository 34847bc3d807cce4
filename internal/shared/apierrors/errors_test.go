package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")

	require.Equal(t, KindValidation, KindOf(Validation("customer", cause)))
	require.Equal(t, KindNotFound, KindOf(NotFound("customer")))
	require.Equal(t, KindStore, KindOf(Store("customer", cause)))
	require.Equal(t, KindStore, KindOf(cause))
}

func TestKindOf_WrappedError(t *testing.T) {
	err := fmt.Errorf("handler: %w", Validation("order", errors.New("boom")))

	require.Equal(t, KindValidation, KindOf(err))
}

func TestHTTPStatus(t *testing.T) {
	cause := errors.New("boom")

	require.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("customer", cause)))
	// Not-found rides the generic error path on purpose.
	require.Equal(t, http.StatusInternalServerError, HTTPStatus(NotFound("customer")))
	require.Equal(t, http.StatusInternalServerError, HTTPStatus(Store("customer", cause)))
	require.Equal(t, http.StatusInternalServerError, HTTPStatus(cause))
}

func TestNotFound_Message(t *testing.T) {
	require.Equal(t, "Customer not found", NotFound("customer").Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Store("product", cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, "boom", err.Error())
}
