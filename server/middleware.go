package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kasuboski/cineprime/pkg/logger"
	"go.uber.org/zap"
)

const adminKeyHeader = "x-admin-key"

func (s Server) LogMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := s.baseLogger.With(
				zap.String("request_path", r.URL.Path),
				zap.String("method", r.Method),
				zap.String("id", uuid.New().String()),
			)
			h.ServeHTTP(w, r.WithContext(logger.WithCtx(r.Context(), log)))
		})
	}
}

// RequireAdmin rejects requests whose admin key header does not match the configured key.
// An empty configured key rejects everything.
func (s Server) RequireAdmin(h http.Handler) http.Handler {
	want := []byte(s.config.AdminKey)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := []byte(r.Header.Get(adminKeyHeader))
		if len(want) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
			logger.FromCtx(r.Context()).Debug("rejected admin request")
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		h.ServeHTTP(w, r)
	})
}
