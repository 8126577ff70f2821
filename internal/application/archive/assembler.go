// Package archive bundles generated artifacts and their assets into a zip download.
package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"film-forge-api/internal/config"
	"film-forge-api/internal/infrastructure/fetch"
	apperrors "film-forge-api/pkg/errors"
	"film-forge-api/pkg/logger"
	"film-forge-api/pkg/metrics"
)

// Kind selects the archive layout and failure policy.
type Kind string

const (
	KindCharacters Kind = "characters"
	KindAudio      Kind = "audio"
)

type layout struct {
	manifest   string
	assetDir   string
	defaultExt string
	fixedExt   bool
	filename   string
}

var layouts = map[Kind]layout{
	KindCharacters: {manifest: "characters.json", assetDir: "character_images", defaultExt: ".png", fixedExt: true, filename: "characters.zip"},
	KindAudio:      {manifest: "sound_design.json", assetDir: "audio_files", defaultExt: ".mp3", filename: "sound_design.zip"},
}

const defaultConcurrency = 4

// Fetcher downloads one asset.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*fetch.Asset, error)
}

// Item is one artifact; URL may be empty.
type Item struct {
	Name string
	URL  string
}

// Bundle is the input of one archive. Metadata is written to the manifest as-is.
type Bundle struct {
	Kind     Kind
	Items    []Item
	Metadata any
}

// Archive is a built zip.
type Archive struct {
	Filename       string
	Data           []byte
	TotalItems     int
	AssetsIncluded int
}

// Manifest describes every artifact regardless of fetch outcome.
type Manifest struct {
	GeneratedAt    time.Time       `json:"generatedAt"`
	TotalItems     int             `json:"totalItems"`
	AssetsIncluded int             `json:"assetsIncluded"`
	Items          any             `json:"items"`
	Assets         []ManifestAsset `json:"assets"`
}

// ManifestAsset maps an artifact name to its file in the archive.
type ManifestAsset struct {
	Name string `json:"name"`
	File string `json:"file"`
}

// Assembler builds archives.
type Assembler struct {
	fetcher     Fetcher
	concurrency int
	now         func() time.Time
}

func NewAssembler(cfg *config.Config, fetcher Fetcher) *Assembler {
	n := cfg.Handlers.AssetFetchConcurrency
	if n <= 0 {
		n = defaultConcurrency
	}
	return &Assembler{fetcher: fetcher, concurrency: n, now: time.Now}
}

type fetched struct {
	name  string
	asset *fetch.Asset
}

// Build fetches every item URL with bounded parallelism and zips the results with a manifest.
// A failed fetch only drops that asset. An audio archive with no asset fails as a whole.
func (a *Assembler) Build(ctx context.Context, b Bundle) (*Archive, error) {
	lay, ok := layouts[b.Kind]
	if !ok {
		return nil, apperrors.New(apperrors.CodeInternalError, "unknown archive kind").WithDetail(string(b.Kind))
	}

	names := nameSet{}
	bases := make([]string, len(b.Items))
	for i, item := range b.Items {
		bases[i] = names.unique(SafeName(item.Name, i))
	}

	results := make([]fetched, len(b.Items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, item := range b.Items {
		if strings.TrimSpace(item.URL) == "" {
			metrics.ArchiveAssetFetchTotal.WithLabelValues(string(b.Kind), "skipped").Inc()
			continue
		}
		g.Go(func() error {
			asset, err := a.fetcher.Fetch(gctx, item.URL)
			if err != nil {
				metrics.ArchiveAssetFetchTotal.WithLabelValues(string(b.Kind), "failed").Inc()
				logger.Warn(ctx, "asset fetch failed", "kind", b.Kind, "name", item.Name, "error", err.Error())
				return nil
			}
			metrics.ArchiveAssetFetchTotal.WithLabelValues(string(b.Kind), "success").Inc()
			results[i] = fetched{name: item.Name, asset: asset}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var files []ManifestAsset
	var payloads [][]byte
	for i, r := range results {
		if r.asset == nil {
			continue
		}
		ext := lay.defaultExt
		if !lay.fixedExt && r.asset.Ext != "" {
			ext = r.asset.Ext
		}
		files = append(files, ManifestAsset{Name: r.name, File: path.Join(lay.assetDir, bases[i]+ext)})
		payloads = append(payloads, r.asset.Data)
	}

	if b.Kind == KindAudio && len(files) == 0 {
		return nil, apperrors.New(apperrors.CodeAssetFetchFailed, "none of the audio files could be downloaded")
	}
	if files == nil {
		files = []ManifestAsset{}
	}

	manifest := Manifest{
		GeneratedAt:    a.now().UTC(),
		TotalItems:     len(b.Items),
		AssetsIncluded: len(files),
		Items:          b.Metadata,
		Assets:         files,
	}
	data, err := write(lay.manifest, manifest, files, payloads)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "failed to build archive")
	}

	logger.Info(ctx, "archive built", "kind", b.Kind, "items", len(b.Items), "assets", len(files))
	return &Archive{
		Filename:       lay.filename,
		Data:           data,
		TotalItems:     len(b.Items),
		AssetsIncluded: len(files),
	}, nil
}

func write(manifestName string, manifest Manifest, files []ManifestAsset, payloads [][]byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	doc, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	w, err := zw.Create(manifestName)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(doc); err != nil {
		return nil, err
	}

	for i, f := range files {
		w, err := zw.Create(f.File)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(payloads[i]); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
