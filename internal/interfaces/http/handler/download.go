package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"film-forge-api/internal/application/archive"
	"film-forge-api/internal/interfaces/http/dto"
)

// ArchiveBuilder builds a zip from a bundle.
type ArchiveBuilder interface {
	Build(ctx context.Context, b archive.Bundle) (*archive.Archive, error)
}

// DownloadHandler serves the zip downloads.
type DownloadHandler struct {
	archives ArchiveBuilder
}

func NewDownloadHandler(archives ArchiveBuilder) *DownloadHandler {
	return &DownloadHandler{archives: archives}
}

// Characters zips the character manifest and every portrait that could be fetched.
// @Summary Download characters
// @Tags Download
// @Accept json
// @Produce application/zip
// @Param body body dto.DownloadCharactersRequest true "characters"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Router /download-characters [post]
func (h *DownloadHandler) Characters(c *gin.Context) {
	var req dto.DownloadCharactersRequest
	if !bind(c, &req) {
		return
	}

	items := make([]archive.Item, len(req.Characters))
	for i, ch := range req.Characters {
		items[i] = archive.Item{Name: ch.Name, URL: ch.ImageURL}
	}
	out, err := h.archives.Build(c.Request.Context(), archive.Bundle{
		Kind:     archive.KindCharacters,
		Items:    items,
		Metadata: req.Characters,
	})
	if err != nil {
		respondError(c, err, "failed to build character archive")
		return
	}
	sendArchive(c, out)
}

// Sound zips the sound design manifest and every audio file that could be fetched.
// It fails with 400 when no audio file could be fetched.
// @Summary Download sound design
// @Tags Download
// @Accept json
// @Produce application/zip
// @Param body body dto.DownloadSoundRequest true "sound assets"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Router /download-sound [post]
func (h *DownloadHandler) Sound(c *gin.Context) {
	var req dto.DownloadSoundRequest
	if !bind(c, &req) {
		return
	}

	items := make([]archive.Item, len(req.SoundAssets))
	for i, a := range req.SoundAssets {
		items[i] = archive.Item{Name: a.Name, URL: a.AudioURL}
	}
	out, err := h.archives.Build(c.Request.Context(), archive.Bundle{
		Kind:     archive.KindAudio,
		Items:    items,
		Metadata: req.SoundAssets,
	})
	if err != nil {
		respondError(c, err, "failed to build sound archive")
		return
	}
	sendArchive(c, out)
}

func sendArchive(c *gin.Context, out *archive.Archive) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	c.Header("X-Archive-Items", strconv.Itoa(out.TotalItems))
	c.Header("X-Archive-Assets", strconv.Itoa(out.AssetsIncluded))
	c.Data(http.StatusOK, "application/zip", out.Data)
}
