package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kasuboski/cineprime/pkg/content"
	"github.com/kasuboski/cineprime/pkg/logger"
	"github.com/kasuboski/cineprime/pkg/storage"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// ListContent lists the catalog, filtered by type, language and category
func (s Server) ListContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qps := r.URL.Query()
		filter := storage.ListFilter{
			Type:     content.Type(qps.Get("type")),
			Language: qps.Get("language"),
			Category: qps.Get("category"),
			Sort:     storage.ParseSort(qps.Get("sort")),
			Limit:    storage.ParseLimit(qps.Get("limit")),
		}

		list, err := s.catalog.List(r.Context(), filter)
		if err != nil {
			writeError(w, r, err, "Failed to fetch content")
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Success: true, Data: list})
	}
}

func (s Server) GetContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := s.catalog.Get(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			writeError(w, r, err, "Failed to fetch content")
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Success: true, Data: doc})
	}
}

func (s Server) CreateContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, ok := readContent(w, r)
		if !ok {
			return
		}

		created, err := s.catalog.Create(r.Context(), doc)
		if err != nil {
			writeError(w, r, err, "Failed to create content")
			return
		}

		writeResponse(w, http.StatusCreated, GenericResponse{
			Success: true,
			Message: "Content created successfully",
			Data:    created,
		})
	}
}

// UpdateContent replaces a document with the request body
func (s Server) UpdateContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, ok := readContent(w, r)
		if !ok {
			return
		}

		updated, err := s.catalog.Update(r.Context(), mux.Vars(r)["id"], doc)
		if err != nil {
			writeError(w, r, err, "Failed to update content")
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Success: true,
			Message: "Content updated successfully",
			Data:    updated,
		})
	}
}

func (s Server) DeleteContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.catalog.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
			writeError(w, r, err, "Failed to delete content")
			return
		}

		writeMessage(w, http.StatusOK, "Content deleted successfully")
	}
}

func readContent(w http.ResponseWriter, r *http.Request) (content.Content, bool) {
	log := logger.FromCtx(r.Context())

	var doc content.Content
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		log.Debug("invalid request body", zap.Error(err))
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return doc, false
	}

	err = json.Unmarshal(b, &doc)
	if err != nil {
		log.Debug("invalid request body", zap.ByteString("body", b))
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return doc, false
	}

	return doc, true
}
