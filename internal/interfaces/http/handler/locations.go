package handler

import (
	"github.com/gin-gonic/gin"

	"film-forge-api/internal/application/generation"
	"film-forge-api/internal/interfaces/http/dto"
)

func (h *FilmHandler) Locations(c *gin.Context) {
	var req dto.LocationsRequest
	if !bind(c, &req) {
		return
	}

	locations, err := h.svc.Locations(c.Request.Context(), generation.LocationsInput{
		Script: req.Script,
		Genre:  req.Genre,
	})
	if err != nil {
		respondError(c, err, "failed to generate locations")
		return
	}
	dto.OK(c, dto.LocationsResponse{Locations: locations, RequestID: dto.RequestID(c)})
}
