package handler

import (
	"archive/zip"
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"film-forge-api/internal/application/archive"
	"film-forge-api/internal/config"
	"film-forge-api/internal/infrastructure/fetch"
	"film-forge-api/internal/mocks"
	apperrors "film-forge-api/pkg/errors"
)

func newDownloadEngine(t *testing.T) (http.Handler, *mocks.MockFetcher) {
	fetcher := mocks.NewMockFetcher(t)
	h := NewDownloadHandler(archive.NewAssembler(&config.Config{}, fetcher))
	engine := newEngine()
	engine.POST("/download-characters", h.Characters)
	engine.POST("/download-sound", h.Sound)
	return engine, fetcher
}

func zipNames(t *testing.T, data []byte) []string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestDownloadSound_PartialFailureKeepsFetchedFiles(t *testing.T) {
	engine, fetcher := newDownloadEngine(t)
	fetcher.On("Fetch", mock.Anything, "https://cdn.example/1.mp3").Return(nil, errors.New("timeout")).Once()
	fetcher.On("Fetch", mock.Anything, "https://cdn.example/2.mp3").
		Return(&fetch.Asset{Data: []byte("ID3"), Ext: ".mp3"}, nil).Once()
	fetcher.On("Fetch", mock.Anything, "https://cdn.example/3.mp3").Return(nil, errors.New("404")).Once()

	w := postJSON(t, engine, "/download-sound", map[string]any{"soundAssets": []map[string]any{
		{"name": "Theme", "type": "music", "audioUrl": "https://cdn.example/1.mp3"},
		{"name": "Rain", "type": "ambient", "audioUrl": "https://cdn.example/2.mp3"},
		{"name": "Door", "type": "sfx", "audioUrl": "https://cdn.example/3.mp3"},
	}})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "sound_design.zip")
	assert.Equal(t, "3", w.Header().Get("X-Archive-Items"))
	assert.Equal(t, "1", w.Header().Get("X-Archive-Assets"))
	assert.ElementsMatch(t, []string{"sound_design.json", "audio_files/rain.mp3"}, zipNames(t, w.Body.Bytes()))
}

func TestDownloadSound_AllFailedIsBadRequest(t *testing.T) {
	engine, fetcher := newDownloadEngine(t)
	fetcher.On("Fetch", mock.Anything, mock.Anything).Return(nil, errors.New("unreachable")).Twice()

	w := postJSON(t, engine, "/download-sound", map[string]any{"soundAssets": []map[string]any{
		{"name": "Theme", "audioUrl": "https://cdn.example/1.mp3"},
		{"name": "Rain", "audioUrl": "https://cdn.example/2.mp3"},
	}})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, string(apperrors.CodeAssetFetchFailed), body["code"])
	assert.NotEmpty(t, body["requestId"])
}

func TestDownloadSound_EmptyListIsBadRequest(t *testing.T) {
	engine, _ := newDownloadEngine(t)

	w := postJSON(t, engine, "/download-sound", map[string]any{"soundAssets": []any{}})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadCharacters_WithoutPortraitsStillSucceeds(t *testing.T) {
	engine, fetcher := newDownloadEngine(t)

	w := postJSON(t, engine, "/download-characters", map[string]any{"characters": []map[string]any{
		{"name": "Mara", "role": "lead"},
		{"name": "Jonas", "role": "support"},
	}})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "characters.zip")
	assert.Equal(t, "0", w.Header().Get("X-Archive-Assets"))
	assert.Equal(t, []string{"characters.json"}, zipNames(t, w.Body.Bytes()))
	fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}
