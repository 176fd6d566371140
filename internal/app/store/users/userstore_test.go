package userstore_test

import (
	"context"
	"testing"

	"github.com/univworks/oppquest/internal/app/store/kv"
	userstore "github.com/univworks/oppquest/internal/app/store/users"
	"github.com/univworks/oppquest/internal/domain/models"
)

func newStore() *userstore.Store {
	return userstore.New(kv.NewMemory())
}

func TestStore_Create_Student(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	created, err := store.Create(ctx, models.User{
		Role:     "student",
		Email:    "  A@X.edu ",
		Password: "pw",
		Name:     "Asha",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if created.Email != "a@x.edu" {
		t.Errorf("Email: got %q, want normalized %q", created.Email, "a@x.edu")
	}
	if !created.IsApproved {
		t.Error("students are approved immediately")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	pending, err := store.Pending(ctx)
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("students must not create pending requests, got %d", len(pending))
	}
}

func TestStore_Create_DefaultsNameToEmailLocalPart(t *testing.T) {
	store := newStore()

	created, err := store.Create(context.Background(), models.User{
		Role:     "student",
		Email:    "jdoe@x.edu",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Name != "jdoe" {
		t.Errorf("Name: got %q, want %q", created.Name, "jdoe")
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, models.User{Role: "student", Email: "a@x.edu", Password: "pw"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := store.Create(ctx, models.User{Role: "professor", Email: "A@x.edu", Password: "other"})
	if err != userstore.ErrDuplicateEmail {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_Create_BadRole(t *testing.T) {
	store := newStore()

	_, err := store.Create(context.Background(), models.User{Role: "dean", Email: "d@x.edu", Password: "pw"})
	if err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestStore_Create_ProfessorIsPending(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	created, err := store.Create(ctx, models.User{
		Role:     "professor",
		Email:    "b@x.edu",
		Password: "pw",
		Name:     "Dr. B",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.IsApproved {
		t.Error("professors must start unapproved")
	}

	pending, err := store.Pending(ctx)
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending request, got %d", len(pending))
	}
	if pending[0].ID != created.ID {
		t.Errorf("pending id: got %q, want user id %q", pending[0].ID, created.ID)
	}
	if pending[0].Department != userstore.DefaultPendingDepartment {
		t.Errorf("pending department: got %q, want %q", pending[0].Department, userstore.DefaultPendingDepartment)
	}
}

func TestStore_GetByCredentials(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	created, err := store.Create(ctx, models.User{Role: "student", Email: "a@x.edu", Password: "pw"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := store.GetByCredentials(ctx, "A@x.edu", "pw")
	if err != nil {
		t.Fatalf("GetByCredentials failed: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID: got %q, want %q", found.ID, created.ID)
	}

	if _, err := store.GetByCredentials(ctx, "a@x.edu", "wrong"); err != userstore.ErrNotFound {
		t.Errorf("wrong password: expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetByCredentials(ctx, "missing@x.edu", "pw"); err != userstore.ErrNotFound {
		t.Errorf("unknown email: expected ErrNotFound, got %v", err)
	}
}

func TestStore_Approve(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	prof, err := store.Create(ctx, models.User{Role: "professor", Email: "b@x.edu", Password: "pw"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	req, err := store.Approve(ctx, prof.ID)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if req.Email != "b@x.edu" {
		t.Errorf("request email: got %q", req.Email)
	}

	u, err := store.GetByEmail(ctx, "b@x.edu")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if !u.IsApproved {
		t.Error("expected professor to be approved")
	}

	pending, _ := store.Pending(ctx)
	if len(pending) != 0 {
		t.Errorf("expected pending request to be removed, got %d", len(pending))
	}
}

func TestStore_Approve_NotFound(t *testing.T) {
	store := newStore()

	if _, err := store.Approve(context.Background(), "missing"); err != userstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Reject_RemovesUserAndRequest(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	prof, err := store.Create(ctx, models.User{Role: "professor", Email: "b@x.edu", Password: "pw"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := store.Reject(ctx, prof.ID); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}

	if _, err := store.GetByEmail(ctx, "b@x.edu"); err != userstore.ErrNotFound {
		t.Errorf("expected user to be deleted, got %v", err)
	}
	pending, _ := store.Pending(ctx)
	if len(pending) != 0 {
		t.Errorf("expected pending request to be removed, got %d", len(pending))
	}
}

func TestStore_CountByRole(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	store.Create(ctx, models.User{Role: "student", Email: "s1@x.edu", Password: "pw"})
	store.Create(ctx, models.User{Role: "student", Email: "s2@x.edu", Password: "pw"})
	store.Create(ctx, models.User{Role: "professor", Email: "p1@x.edu", Password: "pw"})
	store.Create(ctx, models.User{Role: "admin", Email: "adm@x.edu", Password: "pw"})

	counts, err := store.CountByRole(ctx)
	if err != nil {
		t.Fatalf("CountByRole failed: %v", err)
	}
	if counts["student"] != 2 || counts["professor"] != 1 || counts["admin"] != 1 {
		t.Errorf("counts: got %v", counts)
	}
}
