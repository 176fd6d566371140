// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/univworks/oppquest/internal/app/store/kv"
	"github.com/univworks/oppquest/internal/app/system/timeouts"
	"github.com/univworks/oppquest/internal/domain/models"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	KV  kv.Store
	Log *zap.Logger
}

// NewHandler constructs a health Handler over the key-value store.
func NewHandler(store kv.Store, logger *zap.Logger) *Handler {
	return &Handler{KV: store, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Store   string `json:"store"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and { "status":"ok", "store":"connected" }.
// On store failure: 503 and { "status":"error", "message":"Store unavailable", "error":"…" }.
//
// The probe is a read of the users collection, which exercises the full
// backend round trip without writing anything.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status: "ok",
		Store:  "connected",
	}

	var users []models.User
	if err := h.KV.Get(ctx, kv.Users, &users); err != nil {
		h.Log.Error("health-check: store read failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Store = "disconnected"
		resp.Message = "Store unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
