package handler

import (
	"github.com/gin-gonic/gin"

	"film-forge-api/internal/application/generation"
	"film-forge-api/internal/interfaces/http/dto"
)

// Characters serves both steps of POST /characters.
// @Summary Generate characters or one portrait
// @Tags Film
// @Accept json
// @Produce json
// @Param body body dto.CharactersRequest true "step generate-characters or generate-portrait"
// @Success 200 {object} dto.CharactersResponse
// @Success 200 {object} dto.PortraitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /characters [post]
func (h *FilmHandler) Characters(c *gin.Context) {
	var req dto.CharactersRequest
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()

	switch {
	case req.Generate != nil:
		characters, err := h.svc.Characters(ctx, generation.CharactersInput{
			ScriptContent: req.Generate.ScriptContent,
			Genre:         req.Generate.Genre,
		})
		if err != nil {
			respondError(c, err, "failed to generate characters")
			return
		}
		dto.OK(c, dto.CharactersResponse{Characters: characters, RequestID: dto.RequestID(c)})

	case req.Portrait != nil:
		portrait, err := h.svc.Portrait(ctx, req.Portrait.Character)
		if err != nil {
			respondError(c, err, "failed to generate portrait")
			return
		}
		dto.OK(c, dto.PortraitResponse{
			ImageURL:          portrait.ImageURL,
			VisualDescription: portrait.VisualDescription,
			RequestID:         dto.RequestID(c),
		})
	}
}
