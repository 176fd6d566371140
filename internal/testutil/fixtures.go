package testutil

import (
	"context"
	"testing"
	"time"

	applicationstore "github.com/univworks/oppquest/internal/app/store/applications"
	"github.com/univworks/oppquest/internal/app/store/kv"
	oppstore "github.com/univworks/oppquest/internal/app/store/opportunities"
	userstore "github.com/univworks/oppquest/internal/app/store/users"
	"github.com/univworks/oppquest/internal/domain/models"
)

// NewStore returns an empty in-memory key-value store.
func NewStore(t *testing.T) *kv.Memory {
	t.Helper()
	return kv.NewMemory()
}

// Deadline returns a YYYY-MM-DD date the given number of days from now.
func Deadline(daysFromNow int) string {
	return time.Now().AddDate(0, 0, daysFromNow).Format(models.DeadlineLayout)
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	kv kv.Store
	t  *testing.T
}

// NewFixtures creates a Fixtures instance over the given store.
func NewFixtures(t *testing.T, store kv.Store) *Fixtures {
	t.Helper()
	return &Fixtures{kv: store, t: t}
}

// CreateUser registers a user with the given role and returns it.
func (f *Fixtures) CreateUser(ctx context.Context, role, email, password, name string) models.User {
	f.t.Helper()
	u, err := userstore.New(f.kv).Create(ctx, models.User{
		Role:     role,
		Email:    email,
		Password: password,
		Name:     name,
	})
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateOpportunity publishes an opportunity posted by the given professor.
func (f *Fixtures) CreateOpportunity(ctx context.Context, poster TestUser, title, dept, typ, deadline string) models.Opportunity {
	f.t.Helper()
	opp, err := oppstore.New(f.kv).Publish(ctx, models.Opportunity{
		Title:       title,
		Type:        typ,
		Department:  dept,
		Deadline:    deadline,
		Description: "Description of " + title,
		Eligibility: "Open to all",
		PostedBy:    poster.Name,
		PostedByID:  poster.ID,
	})
	if err != nil {
		f.t.Fatalf("failed to create test opportunity: %v", err)
	}
	return opp
}

// CreateApplication submits an application from the given student.
func (f *Fixtures) CreateApplication(ctx context.Context, opp models.Opportunity, student TestUser, resumeLink string) models.Application {
	f.t.Helper()
	app, err := applicationstore.New(f.kv).Submit(ctx, opp, models.User{
		ID:    student.ID,
		Name:  student.Name,
		Email: student.Email,
	}, resumeLink, "")
	if err != nil {
		f.t.Fatalf("failed to create test application: %v", err)
	}
	return app
}
