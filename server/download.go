package server

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/kasuboski/cineprime/pkg/catalog"
)

// ResolveDownload returns the download link of a movie or an episode and counts the download.
// season and episode are zero-based positions unless lookup=number is passed.
func (s Server) ResolveDownload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qps := r.URL.Query()
		req := catalog.DownloadRequest{
			Kind:     catalog.ParseDownloadKind(qps.Get("type")),
			Season:   atoi(qps.Get("season")),
			Episode:  atoi(qps.Get("episode")),
			ByNumber: qps.Get("lookup") == "number",
		}

		download, err := s.catalog.ResolveDownload(r.Context(), mux.Vars(r)["id"], req)
		if err != nil {
			writeError(w, r, err, "Failed to generate download link")
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Success: true, Data: download})
	}
}

// atoi treats anything unparsable as zero
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
