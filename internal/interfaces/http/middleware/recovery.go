package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"film-forge-api/internal/interfaces/http/dto"
	"film-forge-api/pkg/errors"
	"film-forge-api/pkg/logger"
)

// Recovery turns a panic into a 500 with the standard error body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					fmt.Errorf("%v", err),
					"stack", string(debug.Stack()),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)
				dto.AbortError(c, http.StatusInternalServerError, errors.CodeInternalError, "internal server error")
			}
		}()

		c.Next()
	}
}
