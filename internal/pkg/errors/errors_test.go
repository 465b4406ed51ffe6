package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WithDetailsDoesNotMutateSentinel(t *testing.T) {
	withDetails := ErrInvalidWindowSize.WithDetails(map[string]interface{}{"window": 7})

	assert.Equal(t, 7, withDetails.Details["window"])
	assert.Empty(t, ErrInvalidWindowSize.Details)
	assert.Equal(t, http.StatusBadRequest, withDetails.StatusCode)
}

func TestAppError_WrapAndIs(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := fmt.Errorf("list rides: %w", ErrDatabaseError.Wrap(cause))

	assert.True(t, stderrors.Is(err, ErrDatabaseError))
	assert.True(t, stderrors.Is(err, cause))
	assert.False(t, stderrors.Is(err, ErrCacheError))
	assert.Contains(t, err.Error(), "DATABASE_ERROR")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFrom(t *testing.T) {
	appErr, ok := From(fmt.Errorf("wrapped: %w", ErrNoRides))
	require.True(t, ok)
	assert.Equal(t, "NO_RIDES", appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)

	_, ok = From(fmt.Errorf("plain"))
	assert.False(t, ok)
}
