package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/tierpyramid/pkg/errors"
	"github.com/matzehuels/tierpyramid/pkg/pipeline"
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

type healthResponse struct {
	Status string `json:"status"`
	Levels int    `json:"levels"`
}

type brandsResponse struct {
	Band   string       `json:"band"`
	Brands []tier.Brand `json:"brands"`
}

type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Levels: s.Catalog().Len()})
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	c := s.Catalog()
	out := make([]tier.Detail, c.Len())
	for i := range c.Levels {
		out[i] = c.DetailAt(i)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, ok := s.Catalog().Detail(id)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeLevelNotFound, "unknown level %q", id))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleBrands(w http.ResponseWriter, r *http.Request) {
	c := s.Catalog()
	band := bandParam(r, c)
	brands := c.BrandsFor(band)
	if brands == nil {
		brands = []tier.Brand{}
	}
	writeJSON(w, http.StatusOK, brandsResponse{Band: band, Brands: brands})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts := s.requestOptions(r)
	opts.Formats = []string{pipeline.FormatJSON}
	res, err := s.runner.Render(r.Context(), s.Catalog(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(res.Artifacts[pipeline.FormatJSON])
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	opts := s.requestOptions(r)
	opts.Formats = []string{pipeline.FormatSVG}
	res, err := s.runner.Render(r.Context(), s.Catalog(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(res.Artifacts[pipeline.FormatSVG])
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "stats are disabled"))
		return
	}
	writeJSON(w, http.StatusOK, s.stats.Snapshot())
}

// requestOptions applies the query to the server defaults. Unknown level
// ids pass through and resolve to no selection.
func (s *Server) requestOptions(r *http.Request) pipeline.Options {
	q := r.URL.Query()
	opts := s.defaults
	opts.Formats = nil
	opts.Logger = nil
	opts.Selected = q.Get("selected")
	opts.Hovered = q.Get("hovered")
	if style := q.Get("style"); style != "" {
		opts.Style = style
	}
	if v, err := strconv.ParseBool(q.Get("interactive")); err == nil {
		opts.Interactive = v
	}
	return opts
}

// bandParam returns ?band=, defaulting to the first group.
func bandParam(r *http.Request, c tier.Catalog) string {
	if band := r.URL.Query().Get("band"); band != "" {
		return band
	}
	if len(c.Groups) > 0 {
		return c.Groups[0].Name
	}
	return ""
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.IsValidation(err):
		return http.StatusBadRequest
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: errors.GetCode(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
