// File: internal/common/errors.go
package common

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the error value every layer returns for failures that reach a client.
// It renders as {"error": Message, "details": Details}.
type APIError struct {
	StatusCode int         `json:"-"`
	Code       string      `json:"-"`
	Message    string      `json:"error"`
	Details    interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError: StatusCode=%d, Code=%s, Message=%s", e.StatusCode, e.Code, e.Message)
}

func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

// WithDetails returns a copy of e carrying details; the receiver is left untouched.
func (e *APIError) WithDetails(details interface{}) *APIError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithMessage returns a copy of e with a different client-facing message.
func (e *APIError) WithMessage(message string) *APIError {
	clone := *e
	clone.Message = message
	return &clone
}

var (
	ErrBadRequest         = NewAPIError(http.StatusBadRequest, "BAD_REQUEST", "The request is invalid.")
	ErrNotFound           = NewAPIError(http.StatusNotFound, "NOT_FOUND", "The requested resource could not be found.")
	ErrConflict           = NewAPIError(http.StatusConflict, "CONFLICT", "A conflict occurred with the current state of the resource.")
	ErrTooManyRequests    = NewAPIError(http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Too many requests, slow down.")
	ErrInternalServer     = NewAPIError(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
	ErrServiceUnavailable = NewAPIError(http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "The server is currently unable to handle the request.")
)

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is (or wraps) a 404 APIError.
func IsNotFound(err error) bool {
	apiErr, ok := IsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// NewStoreError is the 500 returned when the data store rejects an operation.
// The generic message goes to the client together with the store's own text.
func NewStoreError(message string, err error) *APIError {
	apiErr := ErrInternalServer.WithMessage(message)
	if err != nil {
		apiErr.Details = err.Error()
	}
	return apiErr
}

// ServiceError passes APIErrors through unchanged and turns anything else into a store error.
func ServiceError(message string, err error) error {
	if err == nil {
		return nil
	}
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr
	}
	return NewStoreError(message, err)
}
