package handler

import (
	"github.com/gin-gonic/gin"

	"film-forge-api/internal/application/generation"
	"film-forge-api/internal/interfaces/http/dto"
)

// FilmHandler serves the text and image generation endpoints.
type FilmHandler struct {
	svc *generation.Service
}

func NewFilmHandler(svc *generation.Service) *FilmHandler {
	return &FilmHandler{svc: svc}
}

// Script generates a screenplay from a movie idea.
// @Summary Generate script
// @Tags Film
// @Accept json
// @Produce json
// @Param body body dto.ScriptRequest true "movie idea"
// @Success 200 {object} dto.ScriptResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /script [post]
func (h *FilmHandler) Script(c *gin.Context) {
	var req dto.ScriptRequest
	if !bind(c, &req) {
		return
	}

	script, err := h.svc.Script(c.Request.Context(), generation.ScriptInput{
		MovieIdea:    req.MovieIdea,
		MovieGenre:   req.MovieGenre,
		ScriptLength: req.ScriptLength,
	})
	if err != nil {
		respondError(c, err, "failed to generate script")
		return
	}
	dto.OK(c, dto.ScriptResponse{Script: script, RequestID: dto.RequestID(c)})
}
