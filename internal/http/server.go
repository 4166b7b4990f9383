package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	trashion "github.com/totobolto-dev/trashion-api"
	"github.com/totobolto-dev/trashion-api/api/openapi"
)

// Server exposes the inventory service over JSON.
type Server struct {
	svc *trashion.Service
}

// NewHandler builds the root router around the service.
func NewHandler(svc *trashion.Service) http.Handler {
	s := &Server{svc: svc}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	r.Get("/", s.getInfo)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Route("/api", func(api chi.Router) {
		api.Get("/inventory", s.getInventory)
		api.Get("/status", s.getStatus)
		api.Get("/health", s.getHealth)
		api.Post("/force-check", s.forceCheck)
		api.Get("/openapi.yaml", s.getOpenAPI)
	})

	return r
}

// getInfo handles GET / — the health-check / info page.
func (s *Server) getInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service":            "Trashion Inventory API",
		"version":            trashion.Version,
		"status":             "running",
		"business_hours":     s.svc.Hours().String(),
		"currently_in_hours": s.svc.WithinHours(),
		"monitoring_active":  s.svc.Monitoring(),
		"endpoints": map[string]string{
			"inventory":   "/api/inventory",
			"status":      "/api/status",
			"health":      "/api/health",
			"force_check": "/api/force-check (POST)",
			"metrics":     "/metrics",
			"openapi":     "/api/openapi.yaml",
		},
	})
}

// getInventory handles GET /api/inventory — cached if recent, else fresh.
func (s *Server) getInventory(w http.ResponseWriter, r *http.Request) {
	snap, err := s.svc.Inventory(r.Context())
	if err != nil {
		if errors.Is(err, trashion.ErrNoCachedData) {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// getStatus handles GET /api/status.
func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	st, err := s.svc.Status(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// getHealth handles GET /api/health — the platform liveness probe.
func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"platform":  "trashion-api",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// forceCheck handles POST /api/force-check — immediate scrape plus diff.
func (s *Server) forceCheck(w http.ResponseWriter, r *http.Request) {
	snap, sold, err := s.svc.Refresh(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"scrape_result":     snap,
		"sold_items":        sold,
		"notification_sent": len(sold) > 0 && s.svc.NotificationsEnabled(),
	})
}

// getOpenAPI serves the embedded API document.
func (s *Server) getOpenAPI(w http.ResponseWriter, r *http.Request) {
	data, err := openapi.FS.ReadFile("trashion.yaml")
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to read spec: %w", err))
		return
	}
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
