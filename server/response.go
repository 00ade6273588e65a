package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kasuboski/cineprime/pkg/catalog"
	"github.com/kasuboski/cineprime/pkg/content"
	"github.com/kasuboski/cineprime/pkg/logger"
	"github.com/kasuboski/cineprime/pkg/metadata"
	"github.com/kasuboski/cineprime/pkg/tmdb"
	"go.uber.org/zap"
)

// GenericResponse is the envelope of every JSON response
type GenericResponse struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
	KeyPresent *bool  `json:"keyPresent,omitempty"`
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

func writeMessage(w http.ResponseWriter, status int, message string) error {
	return writeResponse(w, status, GenericResponse{
		Success: status < http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps err to a status and message. fallback is the message of unexpected failures.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromCtx(r.Context())

	var (
		verr        *content.ValidationError
		upstreamErr *metadata.UpstreamError
	)

	switch {
	case errors.Is(err, catalog.ErrInvalidID):
		writeMessage(w, http.StatusBadRequest, "Invalid content ID")
	case errors.Is(err, catalog.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Content not found")
	case errors.As(err, &verr):
		writeMessage(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, metadata.ErrNotConfigured):
		keyPresent := false
		writeResponse(w, http.StatusOK, GenericResponse{Message: err.Error(), KeyPresent: &keyPresent})
	case errors.As(err, &upstreamErr):
		log.Warn("metadata provider failed", zap.Error(err))
		writeMessage(w, http.StatusBadGateway, upstreamErr.Message)
	case errors.Is(err, metadata.ErrInvalidExternalID),
		errors.Is(err, tmdb.ErrInvalidKind),
		errors.Is(err, tmdb.ErrInvalidList):
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		log.Error(fallback, zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, fallback)
	}
}
