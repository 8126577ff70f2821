// Package handler implements the HTTP endpoints.
package handler

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"film-forge-api/internal/interfaces/http/dto"
	"film-forge-api/pkg/errors"
	"film-forge-api/pkg/logger"
)

// bind decodes and validates the JSON body into req, writing a 400 on failure.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Debug(c.Request.Context(), "request rejected", "error", err.Error())
		dto.BadRequest(c, dto.BindMessage(err))
		return false
	}
	return true
}

// respondError maps err to a status and body. Client-attributable errors surface their own
// message; everything else surfaces fallback. The full error is always logged.
func respondError(c *gin.Context, err error, fallback string) {
	ctx := c.Request.Context()

	if stderrors.Is(err, context.DeadlineExceeded) && !errors.IsAppError(err) {
		err = errors.Wrap(err, errors.CodeTimeout, "the request took too long, please try again")
	}
	appErr := errors.AsAppError(err)

	message := fallback
	if appErr.Public() {
		message = appErr.Message
	}

	args := []any{"code", appErr.Code, "status", appErr.HTTPStatus, "path", c.FullPath()}
	if appErr.Detail != "" {
		args = append(args, "detail", appErr.Detail)
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error(ctx, fallback, err, args...)
	} else {
		logger.Warn(ctx, fallback, append(args, "error", err.Error())...)
	}

	dto.Error(c, appErr.HTTPStatus, appErr.Code, message)
}
