package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	assert.Equal(t, "", Code(nil))
	assert.Equal(t, "", Code(fmt.Errorf("boom")))
	assert.Equal(t, "request_not_found", Code(fmt.Errorf("cancel: %w", ErrRequestNotFound)))
	assert.Equal(t, "not_available", Code(fmt.Errorf("list: %w", ErrNotAvailable)))
}

func TestParseRequestStatus(t *testing.T) {
	st, err := ParseRequestStatus(" pending ")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, st)

	_, err = ParseRequestStatus("DELETED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRequestStatusPredicates(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusAccepted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())

	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusAccepted.IsActive())
	assert.False(t, StatusRejected.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}
