package ioweb

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnparks/pkg/chart"
	"github.com/gnames/gnparks/pkg/filter"
	"github.com/go-chi/chi/v5"
)

var enc = gnfmt.GNjson{}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.dash.Options())
}

func (s *Server) handleFigure(w http.ResponseWriter, r *http.Request) {
	v := s.view(querySelection(r))
	writeJSON(w, v.Figure)
}

func (s *Server) handlePanel(w http.ResponseWriter, r *http.Request) {
	panel := chi.URLParam(r, "panel")
	render, ok := panelRenderers[panel]
	if !ok {
		http.Error(w, "unknown panel "+panel, http.StatusNotFound)
		return
	}

	v := s.view(querySelection(r))
	switch v.Kind {
	case filter.NoSelection:
		http.Error(w, chart.MsgNoSelection, http.StatusNotFound)
		return
	case filter.NoMatch:
		http.Error(w, chart.MsgNoMatch, http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	err := render(&buf, v.Aggregates)
	if errors.Is(err, errNoObservations) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("Cannot render panel", "panel", panel, "error", err)
		http.Error(w, "cannot render panel", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(buf.Bytes())
}

// querySelection reads repeated park and category parameters.
func querySelection(r *http.Request) filter.Selection {
	q := r.URL.Query()
	return filter.Selection{
		Parks:      q["park"],
		Categories: q["category"],
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	bs, err := enc.Encode(v)
	if err != nil {
		slog.Error("Cannot encode JSON", "error", err)
		http.Error(w, "cannot encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(bs)
}
