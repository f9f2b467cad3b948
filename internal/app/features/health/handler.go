package health

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Handler serves the liveness probe. The site keeps no backing store, so
// there is nothing to ping: answering at all means the process is up.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	OK bool `json:"ok"`
}

// Serve handles GET /api/health.
//
// Always 200 and
//
//	{ "ok": true }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(healthResponse{OK: true}); err != nil {
		h.Log.Debug("health-check: write failed", zap.Error(err))
	}
}
