package dashboard_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/univworks/oppquest/internal/app/features/dashboard"
	applicationstore "github.com/univworks/oppquest/internal/app/store/applications"
	"github.com/univworks/oppquest/internal/app/store/kv"
	"github.com/univworks/oppquest/internal/domain/models"
	"github.com/univworks/oppquest/internal/testutil"
)

func newTestHandler(t *testing.T) (*dashboard.Handler, *kv.Memory) {
	t.Helper()
	store := kv.NewMemory()
	return dashboard.NewHandler(store, zap.NewNop()), store
}

func TestStudent(t *testing.T) {
	handler, store := newTestHandler(t)
	fx := testutil.NewFixtures(t, store)
	ctx := context.Background()

	prof := testutil.ProfessorUser()
	student := testutil.StudentUser()
	oppA := fx.CreateOpportunity(ctx, prof, "A", "CS", "Research", testutil.Deadline(10))
	oppB := fx.CreateOpportunity(ctx, prof, "B", "CS", "Research", testutil.Deadline(20))

	if _, err := handler.Bookmarks.Toggle(ctx, student.ID, oppA); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	appA := fx.CreateApplication(ctx, oppA, student, "https://cv.example")
	fx.CreateApplication(ctx, oppB, student, "https://cv.example")
	if _, err := applicationstore.New(store).SetStatus(ctx, appA.ID, models.StatusApproved); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	rec := httptest.NewRecorder()
	handler.Student(rec, testutil.WithUser(httptest.NewRequest("GET", "/dashboard/student", nil), student))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var summary struct {
		BookmarkCount int            `json:"bookmark_count"`
		Applications  map[string]int `json:"applications"`
	}
	testutil.DecodeJSON(t, rec, &summary)
	if summary.BookmarkCount != 1 {
		t.Errorf("bookmark_count: got %d, want 1", summary.BookmarkCount)
	}
	if summary.Applications["Approved"] != 1 || summary.Applications["Pending"] != 1 {
		t.Errorf("applications: got %v", summary.Applications)
	}
}

func TestProfessor(t *testing.T) {
	handler, store := newTestHandler(t)
	fx := testutil.NewFixtures(t, store)
	ctx := context.Background()

	prof := testutil.ProfessorUser()
	student := testutil.StudentUser()
	active := fx.CreateOpportunity(ctx, prof, "Active", "CS", "Research", testutil.Deadline(30))
	fx.CreateOpportunity(ctx, prof, "Expired", "CS", "Research", "2020-01-01")
	fx.CreateApplication(ctx, active, student, "https://cv.example")

	rec := httptest.NewRecorder()
	handler.Professor(rec, testutil.WithUser(httptest.NewRequest("GET", "/dashboard/professor", nil), prof))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var summary struct {
		ActivePostings      int `json:"active_postings"`
		ExpiredPostings     int `json:"expired_postings"`
		PendingApplications int `json:"pending_applications"`
		TotalApplications   int `json:"total_applications"`
	}
	testutil.DecodeJSON(t, rec, &summary)
	if summary.ActivePostings != 1 || summary.ExpiredPostings != 1 {
		t.Errorf("postings: got %+v", summary)
	}
	if summary.PendingApplications != 1 || summary.TotalApplications != 1 {
		t.Errorf("applications: got %+v", summary)
	}
}

func TestAdmin(t *testing.T) {
	handler, store := newTestHandler(t)
	fx := testutil.NewFixtures(t, store)
	ctx := context.Background()

	fx.CreateUser(ctx, "student", "s@x.edu", "pw", "")
	fx.CreateUser(ctx, "professor", "p@x.edu", "pw", "")
	fx.CreateOpportunity(ctx, testutil.ProfessorUser(), "A", "CS", "Research", testutil.Deadline(10))

	rec := httptest.NewRecorder()
	handler.Admin(rec, testutil.WithUser(httptest.NewRequest("GET", "/dashboard/admin", nil), testutil.AdminUser()))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var summary struct {
		Students          int `json:"students"`
		Professors        int `json:"professors"`
		PendingProfessors int `json:"pending_professors"`
		Opportunities     int `json:"opportunities"`
	}
	testutil.DecodeJSON(t, rec, &summary)
	if summary.Students != 1 || summary.Professors != 1 {
		t.Errorf("counts: got %+v", summary)
	}
	if summary.PendingProfessors != 1 {
		t.Errorf("pending_professors: got %d, want 1", summary.PendingProfessors)
	}
	if summary.Opportunities != 1 {
		t.Errorf("opportunities: got %d, want 1", summary.Opportunities)
	}
}
