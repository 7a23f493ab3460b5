package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestAppError_Error(t *testing.T) {
	e := ErrReviewTextEmpty()
	assert.Equal(t, e.Error(), "[REVIEW_TEXT_EMPTY] review_text cannot be empty")

	raw := fmt.Errorf("connection reset")
	e = ErrDBQueryFailed("insert review", raw)
	assert.Equal(t, e.Error(), "[DB_QUERY_FAILED] Database query failed: connection reset")
	assert.Equal(t, e.Details["query"], "insert review")
}

func TestAppError_UnwrapAndAs(t *testing.T) {
	raw := fmt.Errorf("boom")
	wrapped := fmt.Errorf("saving: %w", ErrInternal(raw))

	var appErr AppError
	assert.Equal(t, stdErrors.As(wrapped, &appErr), true)
	assert.Equal(t, appErr.HTTPCode, http.StatusInternalServerError)
	assert.Equal(t, stdErrors.Is(wrapped, raw), true)
}

func TestReviewNotFound(t *testing.T) {
	e := ErrReviewNotFound(42)
	assert.Equal(t, e.HTTPCode, http.StatusNotFound)
	assert.Equal(t, e.Message, "Review tidak ditemukan")
	assert.Equal(t, e.Details["id"], "42")
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, ErrorCode_INTERNAL.String(), "INTERNAL")
	assert.Equal(t, ErrorCode(7).String(), "ErrorCode(7)")
}
