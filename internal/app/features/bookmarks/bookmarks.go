// internal/app/features/bookmarks/bookmarks.go
package bookmarks

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	oppstore "github.com/univworks/oppquest/internal/app/store/opportunities"
	"github.com/univworks/oppquest/internal/app/system/auth"
	"github.com/univworks/oppquest/internal/app/system/httpjson"
)

// Toggle flips the bookmark state for the opportunity: on if absent, off
// if present. The response reports the resulting state.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	oppID := chi.URLParam(r, "oppID")

	opp, err := h.Opps.GetByID(r.Context(), oppID)
	switch {
	case errors.Is(err, oppstore.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, httpjson.CodeNotFound, "opportunity not found")
		return
	case err != nil:
		h.Log.Error("failed to load opportunity for bookmark", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "bookmark failed")
		return
	}

	bookmarked, err := h.Bookmarks.Toggle(r.Context(), u.ID, opp)
	if err != nil {
		h.Log.Error("failed to toggle bookmark", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "bookmark failed")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]bool{"bookmarked": bookmarked})
}

// List returns the student's bookmark snapshots, soonest deadline first.
// Snapshots outlive the opportunities they point at: a bookmark for a
// deleted posting still lists with its saved title and deadline.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	marks, err := h.Bookmarks.List(r.Context(), u.ID)
	if err != nil {
		h.Log.Error("failed to list bookmarks", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "listing failed")
		return
	}
	httpjson.Respond(w, http.StatusOK, marks)
}
