package errors_test

import (
	"fmt"
	"testing"

	"glance/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnauthorized(t *testing.T) {
	err := errors.NewUnauthorized()
	assert.True(t, errors.IsUnauthorized(err))
	assert.False(t, errors.IsRequestFailed(err))
	assert.Equal(t, 401, err.Status())
	assert.Equal(t, "unauthorized", err.Error())
}

func TestRequestError(t *testing.T) {
	err := errors.NewRequestError("HTTP 503", 503, errors.RequestFailed, nil)
	assert.True(t, errors.IsRequestFailed(err))
	assert.False(t, errors.IsUnauthorized(err))
	assert.Equal(t, 503, err.Status())
}

func TestValidationError(t *testing.T) {
	err := errors.NewValidationError("folder name cannot be empty")
	assert.True(t, errors.IsValidationFailed(err))
	assert.Equal(t, "folder name cannot be empty", err.Error())
}

func TestWrapPreservesKind(t *testing.T) {
	base := errors.NewUnauthorized()
	wrapped := errors.Wrap(base, "loading folder listing")
	require.Error(t, wrapped)

	assert.True(t, errors.IsUnauthorized(wrapped))
	assert.Contains(t, wrapped.Error(), "loading folder listing")

	var reqErr *errors.RequestError
	require.True(t, errors.As(wrapped, &reqErr))
	assert.Equal(t, 401, reqErr.Status())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "context"))
	assert.Nil(t, errors.Wrapf(nil, "context %d", 1))
}

func TestWrapForeignError(t *testing.T) {
	wrapped := errors.Wrapf(fmt.Errorf("connection refused"), "fetching %s", "2023")
	assert.False(t, errors.IsUnauthorized(wrapped))
	assert.False(t, errors.IsRequestFailed(wrapped))
	assert.Contains(t, wrapped.Error(), "fetching 2023")
	assert.Contains(t, wrapped.Error(), "connection refused")
}
