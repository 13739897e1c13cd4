package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/telcochurn/churnboard/frontend"
	"github.com/telcochurn/churnboard/pkg/domain/interfaces"
	"github.com/telcochurn/churnboard/pkg/utils/apperr"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	dashboardUC interfaces.Dashboard
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, dashboardUC interfaces.Dashboard) (*Server, error) {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		dashboardUC: dashboardUC,
	}

	router.Get("/health", handleHealth)
	router.Get("/", server.handleDashboard)

	fs, err := frontend.GetHTTPFS()
	if err != nil {
		ctxlog.From(ctx).Warn("Static assets unavailable, serving pages without stylesheet",
			"error", err,
		)
	} else {
		router.Handle("/static/*", http.StripPrefix("/static", NewStaticHandler(fs)))
	}

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "churnboard",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// handleDashboard renders the dashboard page
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	page, err := s.dashboardUC.RenderPage(r.Context())
	if err != nil {
		apperr.Handle(r.Context(), err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(page)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write dashboard page", "error", err)
	}
}
