package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Reason tags why a provider call produced no usable text.
type Reason string

const (
	ReasonQuotaExhausted  Reason = "quota_exhausted"
	ReasonInvalidResponse Reason = "invalid_response"
	ReasonTransportError  Reason = "transport_error"
	ReasonAuthError       Reason = "auth_error"
	ReasonNotFound        Reason = "not_found"
	ReasonDisabled        Reason = "disabled"
)

// ProviderError is returned by every client in this package.
type ProviderError struct {
	Provider   string
	Reason     Reason
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Provider, e.Reason, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Reason, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ReasonOf returns the failure tag carried by err. Errors that did not come
// from a provider are reported as transport errors.
func ReasonOf(err error) Reason {
	if err == nil {
		return ""
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Reason
	}
	return ReasonTransportError
}

// reasonForStatus maps an HTTP status to a failure tag.
func reasonForStatus(status int) Reason {
	switch {
	case status == http.StatusTooManyRequests:
		return ReasonQuotaExhausted
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ReasonAuthError
	case status == http.StatusNotFound:
		return ReasonNotFound
	case status == http.StatusServiceUnavailable:
		// HF answers 503 while a model is still loading.
		return ReasonQuotaExhausted
	default:
		return ReasonTransportError
	}
}

func statusError(provider string, status int) error {
	return &ProviderError{
		Provider:   provider,
		Reason:     reasonForStatus(status),
		StatusCode: status,
		Err:        fmt.Errorf("%s returned status %d", provider, status),
	}
}

func transportError(provider string, err error) error {
	return &ProviderError{Provider: provider, Reason: ReasonTransportError, Err: err}
}

// IsTimeout reports whether err came from a deadline or cancellation.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func invalidResponse(provider string, format string, args ...interface{}) error {
	return &ProviderError{Provider: provider, Reason: ReasonInvalidResponse, Err: fmt.Errorf(format, args...)}
}
