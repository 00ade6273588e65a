package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/kasuboski/cineprime/config"
	"github.com/kasuboski/cineprime/pkg/catalog"
	"github.com/kasuboski/cineprime/pkg/metadata"
	"github.com/kasuboski/cineprime/pkg/metrics"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Server houses all dependencies of the catalog API such as loggers, the catalog, the metadata lookup and configuration
type Server struct {
	baseLogger *zap.SugaredLogger
	catalog    *catalog.Catalog
	metadata   *metadata.Lookup
	metrics    *metrics.Metrics
	config     config.Server
	now        func() time.Time
}

type Option func(*Server)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithClock replaces the clock used for sitemap timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New creates a new catalog server
func New(logger *zap.SugaredLogger, catalog *catalog.Catalog, lookup *metadata.Lookup, cfg config.Server, opts ...Option) Server {
	s := Server{
		baseLogger: logger,
		catalog:    catalog,
		metadata:   lookup,
		config:     cfg,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Router wires every route. Write endpoints are guarded by the admin key.
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.Use(s.metrics.Middleware)

	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)
	rtr.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	rtr.HandleFunc("/sitemap.xml", s.Sitemap()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	api.HandleFunc("/content", s.ListContent()).Methods(http.MethodGet)
	api.Handle("/content", s.RequireAdmin(s.CreateContent())).Methods(http.MethodPost)
	api.HandleFunc("/content/{id}", s.GetContent()).Methods(http.MethodGet)
	api.Handle("/content/{id}", s.RequireAdmin(s.UpdateContent())).Methods(http.MethodPut)
	api.Handle("/content/{id}", s.RequireAdmin(s.DeleteContent())).Methods(http.MethodDelete)

	api.HandleFunc("/download/{id}", s.ResolveDownload()).Methods(http.MethodGet)
	api.HandleFunc("/metadata-search", s.MetadataSearch()).Methods(http.MethodGet)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", adminKeyHeader}),
	)(rtr)
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, http.StatusOK, GenericResponse{Success: true, Data: "ok"})
	}
}
