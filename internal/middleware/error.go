// File: internal/middleware/error.go
package middleware

import (
	"fmt"
	"strings"

	"adoptaunpana_backend/internal/common"

	"github.com/gin-gonic/gin"
)

// RouteNotFound answers every unmatched method/path pair with
// {"error": "Route <path> not found"}; the path is reported relative to basePath.
func RouteNotFound(basePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.Request.URL.Path
		if basePath != "/" && (route == basePath || strings.HasPrefix(route, basePath+"/")) {
			route = strings.TrimPrefix(route, basePath)
		}
		if route == "" {
			route = "/"
		}
		common.RespondWithError(c, common.ErrNotFound.WithMessage(fmt.Sprintf("Route %s not found", route)))
	}
}
