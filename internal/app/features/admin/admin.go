// internal/app/features/admin/admin.go
package admin

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	userstore "github.com/univworks/oppquest/internal/app/store/users"
	"github.com/univworks/oppquest/internal/app/system/httpjson"
	"github.com/univworks/oppquest/internal/app/system/roles"
)

// PendingProfessors lists professor registrations awaiting a decision.
func (h *Handler) PendingProfessors(w http.ResponseWriter, r *http.Request) {
	pending, err := h.Users.Pending(r.Context())
	if err != nil {
		h.Log.Error("failed to list pending professors", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "listing failed")
		return
	}
	httpjson.Respond(w, http.StatusOK, pending)
}

// Approve grants the pending professor access and removes the request.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := h.Users.Approve(r.Context(), id)
	switch {
	case errors.Is(err, userstore.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, httpjson.CodeNotFound, "pending request not found")
		return
	case err != nil:
		h.Log.Error("failed to approve professor", zap.Error(err), zap.String("id", id))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "approval failed")
		return
	}

	h.Log.Info("professor approved",
		zap.String("id", req.ID),
		zap.String("email", req.Email))
	httpjson.Respond(w, http.StatusOK, req)
}

// Reject removes both the pending request and the professor's account, so
// the email can register again from scratch.
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := h.Users.Reject(r.Context(), id)
	switch {
	case errors.Is(err, userstore.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, httpjson.CodeNotFound, "pending request not found")
		return
	case err != nil:
		h.Log.Error("failed to reject professor", zap.Error(err), zap.String("id", id))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "rejection failed")
		return
	}

	h.Log.Info("professor rejected",
		zap.String("id", req.ID),
		zap.String("email", req.Email))
	httpjson.Respond(w, http.StatusOK, req)
}

// statsResponse is the admin dashboard's counter strip.
type statsResponse struct {
	Students             int `json:"students"`
	Professors           int `json:"professors"`
	Admins               int `json:"admins"`
	PendingProfessors    int `json:"pending_professors"`
	ActiveOpportunities  int `json:"active_opportunities"`
	ExpiredOpportunities int `json:"expired_opportunities"`
}

// Stats reports user counts by role and the active/expired split of the
// catalog as of now.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Users.CountByRole(r.Context())
	if err != nil {
		h.Log.Error("failed to count users", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "stats failed")
		return
	}
	pending, err := h.Users.Pending(r.Context())
	if err != nil {
		h.Log.Error("failed to list pending professors", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "stats failed")
		return
	}
	opps, err := h.Opps.All(r.Context())
	if err != nil {
		h.Log.Error("failed to list opportunities", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "stats failed")
		return
	}

	stats := statsResponse{
		Students:          counts[roles.Student],
		Professors:        counts[roles.Professor],
		Admins:            counts[roles.Admin],
		PendingProfessors: len(pending),
	}
	now := time.Now()
	for _, o := range opps {
		if o.IsExpired(now) {
			stats.ExpiredOpportunities++
		} else {
			stats.ActiveOpportunities++
		}
	}
	httpjson.Respond(w, http.StatusOK, stats)
}
