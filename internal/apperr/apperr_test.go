package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusAndClientMessage(t *testing.T) {
	tests := []struct {
		err    *Error
		status int
		msg    string
	}{
		{Validation("Username or body are required fields"), http.StatusBadRequest, "Username or body are required fields"},
		{Format(errors.New("22P02")), http.StatusBadRequest, FormatMessage},
		{NotFound("Article ID not found"), http.StatusNotFound, "Article ID not found"},
		{Internal(errors.New("secret detail")), http.StatusInternalServerError, InternalMessage},
	}

	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status())
			assert.Equal(t, tt.msg, tt.err.ClientMessage())
		})
	}
}

func TestAsAndIsKind(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("fetch: %w", Internal(cause))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindInternal, appErr.Kind)
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, wrapped.Error(), "boom")

	assert.True(t, IsKind(NotFound("x"), KindNotFound))
	assert.False(t, IsKind(NotFound("x"), KindValidation))
	assert.False(t, IsKind(errors.New("plain"), KindInternal))

	_, ok = As(nil)
	assert.False(t, ok)
}
