package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, Code(""), CodeOf(nil))
	assert.Equal(t, ErrCodeInternal, CodeOf(stderrors.New("plain")))
	assert.Equal(t, ErrCodeNotFound, CodeOf(NotFound("booking", "1")))

	wrapped := fmt.Errorf("outer: %w", Conflict("busy"))
	assert.Equal(t, ErrCodeConflict, CodeOf(wrapped))
	assert.True(t, Is(wrapped, ErrCodeConflict))
	assert.False(t, Is(nil, ErrCodeConflict))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "notes: is required", InvalidInput("notes", "is required").Error())
	assert.Equal(t, "booking 42 not found", NotFound("booking", "42").Error())

	cause := stderrors.New("connection reset")
	err := Wrap(cause, ErrCodeInternal, "insert slip")
	assert.Equal(t, "insert slip: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatus(t *testing.T) {
	tests := map[Code]int{
		ErrCodeInvalidInput:    http.StatusBadRequest,
		ErrCodeNotFound:        http.StatusNotFound,
		ErrCodeUnauthorized:    http.StatusUnauthorized,
		ErrCodeForbidden:       http.StatusForbidden,
		ErrCodeConflict:        http.StatusConflict,
		ErrCodeExternalService: http.StatusServiceUnavailable,
		ErrCodeInternal:        http.StatusInternalServerError,
	}
	for code, want := range tests {
		assert.Equal(t, want, HTTPStatus(code), code)
	}
}
