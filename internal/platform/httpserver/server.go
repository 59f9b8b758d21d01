// Package httpserver exposes the banner program over HTTP: import uploads,
// banner reads and updates, the status summary, and notification triggers.
package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	bannerregistry "herobanner/contexts/banner-program/banner-registry"
	importservice "herobanner/contexts/banner-program/import-service"
	notificationservice "herobanner/contexts/banner-program/notification-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "herobanner/internal/platform/httpserver/docs"
)

type Server struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	addr          string
	imports       importservice.Module
	registry      bannerregistry.Module
	notifications notificationservice.Module
}

func New(
	imports importservice.Module,
	registry bannerregistry.Module,
	notifications notificationservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		imports:       imports,
		registry:      registry,
		notifications: notifications,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/v1/imports", s.handleImport)

	s.mux.HandleFunc("GET /api/v1/banners", s.handleListBanners)
	s.mux.HandleFunc("GET /api/v1/banners/{banner_id}", s.handleGetBanner)
	s.mux.HandleFunc("PATCH /api/v1/banners/{banner_id}", s.handlePatchBanner)
	s.mux.HandleFunc("POST /api/v1/banners/update-by-name", s.handleUpdateByName)
	s.mux.HandleFunc("GET /api/v1/summary", s.handleSummary)

	s.mux.HandleFunc("POST /api/v1/notifications/proofs", s.handleSendProofs)
	s.mux.HandleFunc("POST /api/v1/notifications/approvals", s.handleProcessApprovals)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
