// Package dto holds the HTTP request and response bodies.
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"film-forge-api/pkg/errors"
)

// RequestIDKey is the gin context key of the correlation id.
const RequestIDKey = "request_id"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"requestId"`
}

// RequestID returns the correlation id set by the request id middleware.
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// OK writes a 200 JSON body.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Error writes an error body.
func Error(c *gin.Context, status int, code errors.ErrorCode, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      string(code),
		RequestID: RequestID(c),
	})
}

// AbortError writes an error body and stops the handler chain.
func AbortError(c *gin.Context, status int, code errors.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      string(code),
		RequestID: RequestID(c),
	})
}

// BadRequest writes a 400 validation error.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, errors.CodeInvalidParam, message)
}
