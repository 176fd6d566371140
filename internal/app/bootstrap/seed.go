// internal/app/bootstrap/seed.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/univworks/oppquest/internal/app/store/kv"
	oppstore "github.com/univworks/oppquest/internal/app/store/opportunities"
	userstore "github.com/univworks/oppquest/internal/app/store/users"
	"github.com/univworks/oppquest/internal/app/system/roles"
	"github.com/univworks/oppquest/internal/domain/models"
)

// ensureAdmin creates the default admin account if no account uses the
// configured email yet. Runs on every startup.
func ensureAdmin(ctx context.Context, store kv.Store, appCfg AppConfig, logger *zap.Logger) error {
	users := userstore.New(store)

	_, err := users.GetByEmail(ctx, appCfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, userstore.ErrNotFound) {
		return fmt.Errorf("look up admin account: %w", err)
	}

	admin, err := users.Create(ctx, models.User{
		Role:     roles.Admin,
		Email:    appCfg.AdminEmail,
		Password: appCfg.AdminPassword,
		Name:     appCfg.AdminName,
	})
	if err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}
	logger.Info("default admin account created",
		zap.String("id", admin.ID),
		zap.String("email", admin.Email))
	return nil
}

// seedDemoData populates an empty store with sample opportunities and a
// couple of pending professor requests so every screen has something to
// show. Only runs in demo mode, and only when the catalog is empty.
func seedDemoData(ctx context.Context, store kv.Store, logger *zap.Logger) error {
	opps := oppstore.New(store)
	users := userstore.New(store)

	existing, err := opps.All(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	prof, err := users.Create(ctx, models.User{
		Role:     roles.Professor,
		Email:    "e.reed@demo.edu",
		Password: "demo123",
		Name:     "Dr. Evelyn Reed",
	})
	if err != nil {
		return fmt.Errorf("seed demo professor: %w", err)
	}
	// The seed professor is usable right away; approve the request their
	// registration queued.
	if _, err := users.Approve(ctx, prof.ID); err != nil {
		return fmt.Errorf("approve demo professor: %w", err)
	}

	samples := []models.Opportunity{
		{
			Title:       "Machine Learning Research Assistant",
			Type:        "Research",
			Department:  "Computer Science",
			Deadline:    "2026-12-15",
			Description: "Assist with data collection and model training for an NLP research project.",
			Eligibility: "Juniors and seniors with coursework in statistics",
		},
		{
			Title:       "Biology Lab Summer Internship",
			Type:        "Internship",
			Department:  "Biology",
			Deadline:    "2026-10-01",
			Description: "Hands-on wet-lab experience supporting a genomics study.",
			Eligibility: "All undergraduates",
		},
		{
			Title:       "Digital Humanities Archive Project",
			Type:        "Project",
			Department:  "History",
			Deadline:    "2026-11-20",
			Description: "Digitize and catalog a regional newspaper archive.",
			Eligibility: "Open to all majors",
		},
	}
	for _, o := range samples {
		o.PostedBy = prof.Name
		o.PostedByID = prof.ID
		if _, err := opps.Publish(ctx, o); err != nil {
			return fmt.Errorf("seed opportunity %q: %w", o.Title, err)
		}
	}

	for _, p := range []models.User{
		{Role: roles.Professor, Email: "j.okafor@demo.edu", Password: "demo123", Name: "Dr. James Okafor"},
		{Role: roles.Professor, Email: "m.tanaka@demo.edu", Password: "demo123", Name: "Dr. Mei Tanaka"},
	} {
		if _, err := users.Create(ctx, p); err != nil {
			return fmt.Errorf("seed pending professor %q: %w", p.Email, err)
		}
	}

	logger.Info("demo data seeded",
		zap.Int("opportunities", len(samples)),
		zap.Int("pending_professors", 2))
	return nil
}
