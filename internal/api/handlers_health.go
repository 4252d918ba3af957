package api

import (
	"net/http"
	"time"

	"github.com/shopapp/shopapp-backend/internal/api/respond"
	"github.com/shopapp/shopapp-backend/internal/health"
)

// HealthHandler reports cached service health. The flag is maintained by the
// store checker in the background; the route never probes the store itself.
type HealthHandler struct {
	src health.Source
}

// NewHealthHandler creates a health handler over src. A nil src reports
// liveness only, which is what tests without a running checker want.
func NewHealthHandler(src health.Source) *HealthHandler { return &HealthHandler{src: src} }

// Check GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK
	if h.src != nil && !h.src.IsHealthy() {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}
	respond.WriteJSON(w, code, map[string]string{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
