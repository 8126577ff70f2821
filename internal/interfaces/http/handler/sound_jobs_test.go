package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"film-forge-api/internal/domain/entity"
	"film-forge-api/internal/domain/repository"
	"film-forge-api/internal/mocks"
)

func newSoundJobEngine(t *testing.T) (http.Handler, *mocks.MockAssetRecordRepository) {
	assets := mocks.NewMockAssetRecordRepository(t)
	h := NewSoundJobHandler(assets)
	engine := newEngine()
	engine.GET("/sound/jobs", h.List)
	engine.GET("/sound/jobs/:id", h.Get)
	return engine, assets
}

func get(engine http.Handler, path string) *httptest.ResponseRecorder {
	return serve(engine, httptest.NewRequest(http.MethodGet, path, nil))
}

func TestSoundJobs_Get(t *testing.T) {
	engine, assets := newSoundJobEngine(t)
	assets.On("GetByID", mock.Anything, "pred-1").
		Return(&entity.AudioAssetRecord{ID: "pred-1", AudioURL: "https://cdn.example/a.mp3"}, nil).Once()
	assets.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()
	assets.On("GetByID", mock.Anything, "broken").Return(nil, errors.New("rpc error")).Once()

	w := get(engine, "/sound/jobs/pred-1")
	require.Equal(t, http.StatusOK, w.Code)
	record := decode(t, w)["record"].(map[string]any)
	assert.Equal(t, "https://cdn.example/a.mp3", record["audioUrl"])

	w = get(engine, "/sound/jobs/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(engine, "/sound/jobs/broken")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "rpc error")
}

func TestSoundJobs_List(t *testing.T) {
	engine, assets := newSoundJobEngine(t)
	assets.On("ListByRequestID", mock.Anything, "ab12cd34").Return(nil, nil).Once()
	assets.On("ListByRequestID", mock.Anything, "nostore").Return(nil, repository.ErrNotConfigured).Once()

	w := get(engine, "/sound/jobs?requestId=ab12cd34")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decode(t, w)["records"])

	w = get(engine, "/sound/jobs?requestId=nostore")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = get(engine, "/sound/jobs")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
