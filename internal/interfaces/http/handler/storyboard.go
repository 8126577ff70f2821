package handler

import (
	"github.com/gin-gonic/gin"

	"film-forge-api/internal/application/generation"
	"film-forge-api/internal/interfaces/http/dto"
)

// Storyboard serves both steps of POST /storyboard.
// @Summary Generate shots for a scene or one frame image
// @Tags Film
// @Accept json
// @Produce json
// @Param body body dto.StoryboardRequest true "step generate-frame-image or generate-shots"
// @Success 200 {object} dto.FrameResponse
// @Success 200 {object} dto.ShotsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /storyboard [post]
func (h *FilmHandler) Storyboard(c *gin.Context) {
	var req dto.StoryboardRequest
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()

	switch {
	case req.Frame != nil:
		imageURL, err := h.svc.StoryboardFrame(ctx, req.Frame.ImagePrompt)
		if err != nil {
			respondError(c, err, "failed to generate storyboard frame")
			return
		}
		dto.OK(c, dto.FrameResponse{
			ImageURL:   imageURL,
			ShotNumber: req.Frame.ShotNumber,
			RequestID:  dto.RequestID(c),
		})

	case req.Shots != nil:
		shots, err := h.svc.StoryboardShots(ctx, generation.StoryboardShotsInput{
			SceneDescription: req.Shots.SceneDescription,
			SceneNumber:      req.Shots.SceneNumber,
			Genre:            req.Shots.Genre,
		})
		if err != nil {
			respondError(c, err, "failed to generate storyboard shots")
			return
		}
		dto.OK(c, dto.ShotsResponse{
			Shots:       shots,
			SceneNumber: req.Shots.SceneNumber,
			RequestID:   dto.RequestID(c),
		})
	}
}
