package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tierpyramid/pkg/errors"
	"github.com/matzehuels/tierpyramid/pkg/observability"
	"github.com/matzehuels/tierpyramid/pkg/pipeline"
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return New(tier.Default(), pipeline.NewRunner(nil, nil, logger), logger, opts...)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 12, body.Levels)
}

func TestLevels(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/levels")
	require.Equal(t, http.StatusOK, rec.Code)

	var levels []tier.Detail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &levels))
	require.Len(t, levels, 12)
	assert.Equal(t, "AAA", levels[0].ID)
	assert.Equal(t, tier.GroupPremium, levels[0].Group)
	assert.InDelta(t, 100.0, levels[0].Bankability, 1e-9)
	assert.InDelta(t, 5.0, levels[11].Bankability, 1e-9)
}

func TestLevel(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantGroup  string
	}{
		{"known", "/api/levels/BBB", http.StatusOK, tier.GroupTier2},
		{"escaped plus", "/api/levels/CCC%2B", http.StatusOK, tier.GroupSpeculative},
		{"unknown", "/api/levels/ZZZ", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.path)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				var e errorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
				assert.Equal(t, errors.ErrCodeLevelNotFound, e.Code)
				return
			}
			var d tier.Detail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
			assert.Equal(t, tt.wantGroup, d.Group)
		})
	}
}

func TestBrands(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name      string
		query     string
		wantBand  string
		wantCount int
	}{
		{"default band", "", tier.GroupPremium, 6},
		{"tier 2", "?band=Tier+2", tier.GroupTier2, 6},
		{"unknown band", "?band=Nope", "Nope", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, "/api/brands"+tt.query)
			require.Equal(t, http.StatusOK, rec.Code)

			var body brandsResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBand, body.Band)
			assert.Len(t, body.Brands, tt.wantCount)
			assert.NotNil(t, body.Brands)
		})
	}
}

func TestLayout(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/layout?selected=AAA&hovered=ZZZ")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Width     float64 `json:"width"`
		Selection struct {
			Selected string `json:"selected"`
			Hovered  string `json:"hovered"`
		} `json:"selection"`
		Bands []struct {
			State struct {
				Opacity float64 `json:"opacity"`
			} `json:"state"`
		} `json:"bands"`
		Brackets []json.RawMessage `json:"brackets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 550.0, body.Width)
	assert.Equal(t, "AAA", body.Selection.Selected)
	assert.Empty(t, body.Selection.Hovered, "unknown hover id falls back to none")
	require.Len(t, body.Bands, 12)
	assert.Len(t, body.Brackets, 3)
	assert.Equal(t, 1.0, body.Bands[0].State.Opacity)
	assert.Equal(t, 0.5, body.Bands[1].State.Opacity)
}

func TestSVG(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/pyramid.svg?selected=BB")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<svg"))
	assert.Equal(t, 12, strings.Count(body, `data-index="`))
	assert.Contains(t, body, `viewBox="0 0 550.0 600.0"`)

	rec = get(t, s, "/pyramid.svg?interactive=true")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<script")
}

func TestSVGInvalidStyle(t *testing.T) {
	rec := get(t, newTestServer(t), "/pyramid.svg?style=neon")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var e errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, errors.ErrCodeInvalidStyle, e.Code)
}

func TestIndex(t *testing.T) {
	rec := get(t, newTestServer(t), "/?selected=BBB&band=Tier+2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "<svg")
	assert.Contains(t, body, "74.1%")
	assert.Contains(t, body, "Qcells")
	assert.NotContains(t, body, "LONGi")
	assert.Contains(t, body, "Fonte: PV Tech")
}

func TestIndexNoSelection(t *testing.T) {
	rec := get(t, newTestServer(t), "/?selected=nope")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Select a tier.")
}

func TestStats(t *testing.T) {
	stats := observability.NewCounters()
	observability.SetHTTPHooks(stats)
	observability.SetPipelineHooks(stats)
	t.Cleanup(observability.Reset)

	s := newTestServer(t, WithStats(stats))
	get(t, s, "/pyramid.svg")
	rec := get(t, s, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap observability.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.EqualValues(t, 1, snap.Requests)
	assert.EqualValues(t, 1, snap.Renders)
}

func TestStatsDisabled(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/stats")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetCatalog(t *testing.T) {
	s := newTestServer(t)
	c := tier.Default()
	c.Levels = c.Levels[:3]
	c.Groups = c.Groups[:1]
	c.Groups[0].EndLevel = 3
	c.Brands = nil
	s.SetCatalog(c)

	rec := get(t, s, "/api/health")
	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Levels)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeInvalidConfig, http.StatusBadRequest},
		{errors.ErrCodeInvalidStyle, http.StatusBadRequest},
		{errors.ErrCodeLevelNotFound, http.StatusNotFound},
		{errors.ErrCodeFileNotFound, http.StatusNotFound},
		{errors.ErrCodeUnsupported, http.StatusNotImplemented},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
		{errors.ErrCodeCache, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(errors.New(tt.code, "x")))
		})
	}
}
