package errors

import "errors"

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// Review errors
var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrEmptyReviewText = errors.New("review text is empty")
)
