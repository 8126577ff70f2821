package handler

import (
	"github.com/gin-gonic/gin"

	"film-forge-api/internal/application/generation"
	"film-forge-api/internal/interfaces/http/dto"
)

// Sound serves the plan variant ({movieIdea, movieGenre}) and the asset variant ({script, genre}).
func (h *FilmHandler) Sound(c *gin.Context) {
	var req dto.SoundRequest
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()

	if req.Assets != nil {
		assets, err := h.svc.SoundAssets(ctx, generation.SoundAssetsInput{
			Script: req.Assets.Script,
			Genre:  req.Assets.Genre,
		})
		if err != nil {
			respondError(c, err, "failed to generate sound assets")
			return
		}
		dto.OK(c, dto.SoundAssetsResponse{Success: true, SoundAssets: assets, RequestID: dto.RequestID(c)})
		return
	}

	plan, err := h.svc.SoundPlan(ctx, generation.SoundPlanInput{
		MovieIdea:  req.Plan.MovieIdea,
		MovieGenre: req.Plan.MovieGenre,
	})
	if err != nil {
		respondError(c, err, "failed to generate sound plan")
		return
	}
	dto.OK(c, dto.SoundPlanResponse{RequestID: dto.RequestID(c), SoundPlan: plan})
}
