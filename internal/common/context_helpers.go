// File: internal/common/context_helpers.go
package common

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetRequestIDFromContext returns the request id set by the logging middleware.
func GetRequestIDFromContext(c *gin.Context) string {
	return c.GetString(RequestIDContextKey)
}

// LoggerFrom returns the request-scoped logger, or nil outside the logging middleware.
func LoggerFrom(c *gin.Context) *zap.Logger {
	val, exists := c.Get(LoggerContextKey)
	if !exists {
		return nil
	}
	logger, ok := val.(*zap.Logger)
	if !ok {
		return nil
	}
	return logger
}
