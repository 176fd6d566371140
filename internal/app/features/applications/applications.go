// internal/app/features/applications/applications.go
package applications

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applicationstore "github.com/univworks/oppquest/internal/app/store/applications"
	oppstore "github.com/univworks/oppquest/internal/app/store/opportunities"
	"github.com/univworks/oppquest/internal/app/system/auth"
	"github.com/univworks/oppquest/internal/app/system/httpjson"
	"github.com/univworks/oppquest/internal/domain/models"
)

type submitRequest struct {
	OppID      string `json:"opp_id"`
	ResumeLink string `json:"resume_link"`
	Note       string `json:"note"`
}

// Submit applies the signed-in student to an opportunity. Applying again
// to the same opportunity updates the existing application and resets its
// status to Pending.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, httpjson.CodeValidation, "invalid JSON body")
		return
	}

	opp, err := h.Opps.GetByID(r.Context(), req.OppID)
	switch {
	case errors.Is(err, oppstore.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, httpjson.CodeNotFound, "opportunity not found")
		return
	case err != nil:
		h.Log.Error("failed to load opportunity for application", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "submission failed")
		return
	}

	app, err := h.Apps.Submit(r.Context(), opp, models.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}, req.ResumeLink, req.Note)
	switch {
	case errors.Is(err, applicationstore.ErrMissingResume):
		httpjson.Error(w, http.StatusUnprocessableEntity, httpjson.CodeValidation, err.Error())
		return
	case err != nil:
		h.Log.Error("failed to submit application", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "submission failed")
		return
	}

	h.Log.Info("application submitted",
		zap.String("id", app.ID),
		zap.String("opp_id", app.OppID),
		zap.String("student_id", app.StudentID))
	httpjson.Respond(w, http.StatusCreated, app)
}

// Mine lists the student's own applications, newest submission first.
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	apps, err := h.Apps.ListForStudent(r.Context(), u.ID)
	if err != nil {
		h.Log.Error("failed to list applications", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "listing failed")
		return
	}
	httpjson.Respond(w, http.StatusOK, apps)
}

// Received lists applications against the professor's own postings,
// newest submission first.
func (h *Handler) Received(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	opps, err := h.Opps.ListByPoster(r.Context(), u.ID)
	if err != nil {
		h.Log.Error("failed to list postings", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "listing failed")
		return
	}
	oppIDs := make([]string, 0, len(opps))
	for _, o := range opps {
		oppIDs = append(oppIDs, o.ID)
	}

	apps, err := h.Apps.ListForOpportunities(r.Context(), oppIDs)
	if err != nil {
		h.Log.Error("failed to list received applications", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "listing failed")
		return
	}
	httpjson.Respond(w, http.StatusOK, apps)
}

type decideRequest struct {
	Status string `json:"status"`
}

// Decide sets an application's status to Approved or Rejected. Only the
// professor who posted the opportunity may decide its applications.
func (h *Handler) Decide(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	id := chi.URLParam(r, "id")

	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, httpjson.CodeValidation, "invalid JSON body")
		return
	}

	app, err := h.Apps.GetByID(r.Context(), id)
	switch {
	case errors.Is(err, applicationstore.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, httpjson.CodeNotFound, "application not found")
		return
	case err != nil:
		h.Log.Error("failed to load application", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "decision failed")
		return
	}

	opp, err := h.Opps.GetByID(r.Context(), app.OppID)
	if err != nil || opp.PostedByID != u.ID {
		// The opportunity is gone or belongs to someone else. Either way
		// this professor has no standing to decide.
		httpjson.Error(w, http.StatusForbidden, httpjson.CodeForbidden, "only the poster can decide applications")
		return
	}

	updated, err := h.Apps.SetStatus(r.Context(), id, req.Status)
	switch {
	case errors.Is(err, applicationstore.ErrBadStatus):
		httpjson.Error(w, http.StatusUnprocessableEntity, httpjson.CodeValidation, err.Error())
		return
	case errors.Is(err, applicationstore.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, httpjson.CodeNotFound, "application not found")
		return
	case err != nil:
		h.Log.Error("failed to set application status", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "decision failed")
		return
	}

	h.Log.Info("application decided",
		zap.String("id", updated.ID),
		zap.String("status", updated.Status),
		zap.String("decided_by", u.ID))
	httpjson.Respond(w, http.StatusOK, updated)
}
