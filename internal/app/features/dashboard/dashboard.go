// internal/app/features/dashboard/dashboard.go
package dashboard

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/univworks/oppquest/internal/app/system/auth"
	"github.com/univworks/oppquest/internal/app/system/httpjson"
	"github.com/univworks/oppquest/internal/app/system/roles"
	"github.com/univworks/oppquest/internal/domain/models"
)

// studentSummary is the student landing view.
type studentSummary struct {
	BookmarkCount int                       `json:"bookmark_count"`
	Applications  map[string]int            `json:"applications"` // count per status
	Bookmarks     []models.BookmarkSnapshot `json:"bookmarks"`    // soonest deadline first
}

// Student summarizes the signed-in student's bookmarks and applications.
func (h *Handler) Student(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	ctx := r.Context()

	marks, err := h.Bookmarks.List(ctx, u.ID)
	if err != nil {
		h.Log.Error("failed to load bookmarks", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "summary failed")
		return
	}
	apps, err := h.Apps.ListForStudent(ctx, u.ID)
	if err != nil {
		h.Log.Error("failed to load applications", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "summary failed")
		return
	}

	summary := studentSummary{
		BookmarkCount: len(marks),
		Applications:  map[string]int{},
		Bookmarks:     marks,
	}
	for _, a := range apps {
		summary.Applications[a.Status]++
	}
	httpjson.Respond(w, http.StatusOK, summary)
}

// professorSummary is the professor landing view.
type professorSummary struct {
	ActivePostings      int `json:"active_postings"`
	ExpiredPostings     int `json:"expired_postings"`
	PendingApplications int `json:"pending_applications"`
	TotalApplications   int `json:"total_applications"`
}

// Professor summarizes the professor's postings and their review queue.
func (h *Handler) Professor(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	ctx := r.Context()

	opps, err := h.Opps.ListByPoster(ctx, u.ID)
	if err != nil {
		h.Log.Error("failed to load postings", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "summary failed")
		return
	}

	var summary professorSummary
	now := time.Now()
	oppIDs := make([]string, 0, len(opps))
	for _, o := range opps {
		oppIDs = append(oppIDs, o.ID)
		if o.IsExpired(now) {
			summary.ExpiredPostings++
		} else {
			summary.ActivePostings++
		}
	}

	apps, err := h.Apps.ListForOpportunities(ctx, oppIDs)
	if err != nil {
		h.Log.Error("failed to load received applications", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "summary failed")
		return
	}
	summary.TotalApplications = len(apps)
	for _, a := range apps {
		if a.Status == models.StatusPending {
			summary.PendingApplications++
		}
	}
	httpjson.Respond(w, http.StatusOK, summary)
}

// adminSummary is the admin landing view.
type adminSummary struct {
	Students          int `json:"students"`
	Professors        int `json:"professors"`
	PendingProfessors int `json:"pending_professors"`
	Opportunities     int `json:"opportunities"`
}

// Admin summarizes the platform for the admin landing view. The full
// counter strip lives on the admin stats endpoint.
func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts, err := h.Users.CountByRole(ctx)
	if err != nil {
		h.Log.Error("failed to count users", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "summary failed")
		return
	}
	pending, err := h.Users.Pending(ctx)
	if err != nil {
		h.Log.Error("failed to load pending professors", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "summary failed")
		return
	}
	opps, err := h.Opps.All(ctx)
	if err != nil {
		h.Log.Error("failed to load opportunities", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "summary failed")
		return
	}

	httpjson.Respond(w, http.StatusOK, adminSummary{
		Students:          counts[roles.Student],
		Professors:        counts[roles.Professor],
		PendingProfessors: len(pending),
		Opportunities:     len(opps),
	})
}
