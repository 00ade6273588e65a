package server

import (
	"errors"
	"net/http"

	"github.com/kasuboski/cineprime/pkg/metadata"
	"github.com/kasuboski/cineprime/pkg/tmdb"
)

type searchResults struct {
	Results []metadata.Summary `json:"results"`
}

// MetadataSearch looks up provider metadata for the admin editor. id selects a single item,
// list a curated list and query a search, in that order of precedence.
func (s Server) MetadataSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qps := r.URL.Query()

		kind, err := tmdb.ParseKind(qps.Get("type"))
		if err != nil {
			writeError(w, r, err, "Failed to fetch metadata")
			return
		}

		var (
			op   string
			data any
		)

		switch {
		case qps.Get("id") != "":
			op = "detail"
			data, err = s.metadata.Detail(r.Context(), qps.Get("id"), kind)
		case qps.Get("list") != "":
			op = "list"
			var list tmdb.ListName
			list, err = tmdb.ParseListName(qps.Get("list"))
			if err == nil {
				data, err = s.metadata.List(r.Context(), list, kind)
			}
		case qps.Get("query") != "":
			op = "search"
			var results []metadata.Summary
			results, err = s.metadata.Search(r.Context(), qps.Get("query"), kind)
			data = searchResults{Results: results}
		default:
			op = "search"
			if !s.metadata.Configured() {
				err = metadata.ErrNotConfigured
				break
			}
			writeMessage(w, http.StatusBadRequest, "Query parameter required")
			return
		}

		s.metrics.MetadataRequest(op, outcome(err))
		if err != nil {
			writeError(w, r, err, "Failed to fetch metadata")
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Success: true, Data: data})
	}
}

func outcome(err error) string {
	var upstreamErr *metadata.UpstreamError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, metadata.ErrNotConfigured):
		return "not_configured"
	case errors.As(err, &upstreamErr):
		return "upstream_error"
	default:
		return "invalid"
	}
}
