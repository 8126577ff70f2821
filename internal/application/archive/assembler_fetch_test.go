package archive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"film-forge-api/internal/config"
	"film-forge-api/internal/infrastructure/fetch"
	apperrors "film-forge-api/pkg/errors"
)

func TestBuild_LoopbackAssetIsItemFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("INTERNAL-SECRET"))
	}))
	defer srv.Close()

	cfg := &config.Config{}
	a := NewAssembler(cfg, fetch.NewHTTPFetcher(cfg))

	out, err := a.Build(context.Background(), Bundle{
		Kind:     KindCharacters,
		Items:    []Item{{Name: "Mara", URL: srv.URL + "/latest/meta-data"}},
		Metadata: []string{"Mara"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.AssetsIncluded)
	files := unzip(t, out.Data)
	assert.Equal(t, []string{"characters.json"}, keys(files))
	assert.NotContains(t, string(files["characters.json"]), "INTERNAL-SECRET")

	_, err = a.Build(context.Background(), Bundle{
		Kind:  KindAudio,
		Items: []Item{{Name: "Theme", URL: "http://169.254.169.254/latest/meta-data"}},
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeAssetFetchFailed))
}
