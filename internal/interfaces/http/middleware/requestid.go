// Package middleware provides the HTTP middleware chain.
package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"film-forge-api/internal/interfaces/http/dto"
	"film-forge-api/pkg/logger"
)

// RequestIDHeader carries the correlation id in both directions.
const RequestIDHeader = "X-Request-ID"

const shortIDLen = 8

var acceptedID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// NewRequestID returns a short correlation id.
func NewRequestID() string {
	return uuid.NewString()[:shortIDLen]
}

// RequestID assigns every request a correlation id. A well-formed incoming X-Request-ID is kept.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !acceptedID.MatchString(requestID) {
			requestID = NewRequestID()
		}

		c.Set(dto.RequestIDKey, requestID)
		ctx := logger.WithContext(c.Request.Context(), logger.RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
