package handler

import (
	"github.com/gin-gonic/gin"

	"film-forge-api/internal/application/generation"
	"film-forge-api/internal/interfaces/http/dto"
)

func (h *FilmHandler) Schedule(c *gin.Context) {
	var req dto.ScheduleRequest
	if !bind(c, &req) {
		return
	}

	schedule, err := h.svc.Schedule(c.Request.Context(), generation.ScheduleInput{
		Script:       req.Script,
		ScriptLength: req.ScriptLength,
	})
	if err != nil {
		respondError(c, err, "failed to generate schedule")
		return
	}
	dto.OK(c, dto.ScheduleResponse{Schedule: schedule, RequestID: dto.RequestID(c)})
}
