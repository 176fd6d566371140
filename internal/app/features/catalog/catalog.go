// internal/app/features/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	oppstore "github.com/univworks/oppquest/internal/app/store/opportunities"
	"github.com/univworks/oppquest/internal/app/system/auth"
	"github.com/univworks/oppquest/internal/app/system/httpjson"
	"github.com/univworks/oppquest/internal/domain/models"
)

// oppRow is an opportunity as returned to clients, with the expiry flag
// computed server-side so every consumer agrees on "expired".
type oppRow struct {
	models.Opportunity
	Expired bool `json:"expired"`
}

func rowsOf(opps []models.Opportunity, now time.Time) []oppRow {
	rows := make([]oppRow, 0, len(opps))
	for _, o := range opps {
		rows = append(rows, oppRow{Opportunity: o, Expired: o.IsExpired(now)})
	}
	return rows
}

// List returns opportunities matching the query parameters:
// q (substring), department, type (exact), sort (deadline|recent).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opps, err := h.Opps.List(r.Context(), oppstore.Filter{
		Query:      q.Get("q"),
		Department: q.Get("department"),
		Type:       q.Get("type"),
		Sort:       q.Get("sort"),
	})
	if err != nil {
		h.Log.Error("failed to list opportunities", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "listing failed")
		return
	}
	httpjson.Respond(w, http.StatusOK, rowsOf(opps, time.Now()))
}

type publishRequest struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Department  string `json:"department"`
	Deadline    string `json:"deadline"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
}

// Publish creates an opportunity posted by the signed-in professor.
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, httpjson.CodeValidation, "invalid JSON body")
		return
	}

	opp, err := h.Opps.Publish(r.Context(), models.Opportunity{
		Title:       req.Title,
		Type:        req.Type,
		Department:  req.Department,
		Deadline:    req.Deadline,
		Description: req.Description,
		Eligibility: req.Eligibility,
		PostedBy:    u.Name,
		PostedByID:  u.ID,
	})
	switch {
	case errors.Is(err, oppstore.ErrMissingFields), errors.Is(err, oppstore.ErrBadDeadline):
		httpjson.Error(w, http.StatusUnprocessableEntity, httpjson.CodeValidation, err.Error())
		return
	case err != nil:
		h.Log.Error("failed to publish opportunity", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "publish failed")
		return
	}

	h.Log.Info("opportunity published",
		zap.String("id", opp.ID),
		zap.String("posted_by", u.ID))
	httpjson.Respond(w, http.StatusCreated, oppRow{Opportunity: opp, Expired: false})
}

// Mine lists the signed-in professor's own postings, soonest deadline
// first, each flagged with its expiry state.
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	opps, err := h.Opps.ListByPoster(r.Context(), u.ID)
	if err != nil {
		h.Log.Error("failed to list postings", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "listing failed")
		return
	}
	httpjson.Respond(w, http.StatusOK, rowsOf(opps, time.Now()))
}

// Delete removes one of the professor's own opportunities and cascades to
// every application against it. Student bookmarks are left as snapshots;
// they carry their own title and deadline.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	id := chi.URLParam(r, "id")

	err := h.Opps.Delete(r.Context(), id, u.ID)
	switch {
	case errors.Is(err, oppstore.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, httpjson.CodeNotFound, "opportunity not found")
		return
	case errors.Is(err, oppstore.ErrNotOwner):
		httpjson.Error(w, http.StatusForbidden, httpjson.CodeForbidden, "only the poster can delete an opportunity")
		return
	case err != nil:
		h.Log.Error("failed to delete opportunity", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "delete failed")
		return
	}

	removed, err := h.Apps.DeleteForOpportunity(r.Context(), id)
	if err != nil {
		h.Log.Error("failed to cascade application delete",
			zap.Error(err), zap.String("opp_id", id))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "delete failed")
		return
	}

	h.Log.Info("opportunity deleted",
		zap.String("id", id),
		zap.Int("applications_removed", removed))
	httpjson.Respond(w, http.StatusOK, map[string]any{
		"deleted":              true,
		"applications_removed": removed,
	})
}
