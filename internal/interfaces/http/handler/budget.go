package handler

import (
	"github.com/gin-gonic/gin"

	"film-forge-api/internal/application/generation"
	"film-forge-api/internal/interfaces/http/dto"
)

// Budget generates the budget breakdown.
// @Summary Generate budget
// @Tags Film
// @Accept json
// @Produce json
// @Param body body dto.BudgetRequest true "genre and length"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /budget [post]
func (h *FilmHandler) Budget(c *gin.Context) {
	var req dto.BudgetRequest
	if !bind(c, &req) {
		return
	}

	categories, err := h.svc.Budget(c.Request.Context(), generation.BudgetInput{
		MovieGenre:    req.MovieGenre,
		ScriptLength:  req.ScriptLength,
		LowBudgetMode: req.LowBudgetMode,
	})
	if err != nil {
		respondError(c, err, "failed to generate budget")
		return
	}
	dto.OK(c, dto.BudgetResponse{Categories: categories, RequestID: dto.RequestID(c)})
}
