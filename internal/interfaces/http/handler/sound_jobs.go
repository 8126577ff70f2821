package handler

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"

	"film-forge-api/internal/domain/entity"
	"film-forge-api/internal/domain/repository"
	"film-forge-api/internal/interfaces/http/dto"
	"film-forge-api/pkg/errors"
)

// SoundJobHandler reads audio job results recorded by the webhook.
type SoundJobHandler struct {
	assets repository.AssetRecordRepository
}

func NewSoundJobHandler(assets repository.AssetRecordRepository) *SoundJobHandler {
	return &SoundJobHandler{assets: assets}
}

// Get returns the stored result of one audio job.
func (h *SoundJobHandler) Get(c *gin.Context) {
	record, err := h.assets.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, storeError(err), "failed to load sound job")
		return
	}
	dto.OK(c, dto.SoundJobResponse{Record: record, RequestID: dto.RequestID(c)})
}

// List returns every audio job result of one generation request.
func (h *SoundJobHandler) List(c *gin.Context) {
	requestID := strings.TrimSpace(c.Query("requestId"))
	if requestID == "" {
		dto.BadRequest(c, "requestId is required")
		return
	}
	records, err := h.assets.ListByRequestID(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, storeError(err), "failed to list sound jobs")
		return
	}
	if records == nil {
		records = []*entity.AudioAssetRecord{}
	}
	dto.OK(c, dto.SoundJobListResponse{Records: records, RequestID: dto.RequestID(c)})
}

func storeError(err error) error {
	switch {
	case stderrors.Is(err, repository.ErrNotFound):
		return errors.New(errors.CodeNotFound, "sound job not found")
	case stderrors.Is(err, repository.ErrNotConfigured):
		return errors.New(errors.CodeServiceUnavailable, "record storage is not configured")
	default:
		return errors.Wrap(err, errors.CodeStorageError, "storage error")
	}
}
