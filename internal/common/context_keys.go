// File: internal/common/context_keys.go
package common

const (
	// RequestIDHeader carries the request correlation id in and out.
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey is the gin context key holding the request id.
	RequestIDContextKey = "requestID"
	// LoggerContextKey is the gin context key holding the request-scoped *zap.Logger.
	LoggerContextKey = "logger"
)
