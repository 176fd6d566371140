// Package applicationstore owns the applications collection.
//
// Invariant: at most one application exists per (opportunity, student)
// pair. Submit is an upsert — resubmission refreshes the record and resets
// its status to Pending, collapsing withdraw-and-reapply into one call.
package applicationstore

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/univworks/oppquest/internal/app/store/kv"
	"github.com/univworks/oppquest/internal/app/system/ids"
	"github.com/univworks/oppquest/internal/app/system/sanitize"
	"github.com/univworks/oppquest/internal/domain/models"
)

var (
	// ErrMissingResume is returned when the resume link is empty.
	ErrMissingResume = errors.New("resume link is required")
	// ErrBadStatus is returned for a decision other than Approved/Rejected.
	ErrBadStatus = errors.New(`status must be "Approved" or "Rejected"`)
	// ErrNotFound is returned when no application matches the id.
	ErrNotFound = errors.New("application not found")
)

type Store struct {
	kv kv.Store
}

func New(store kv.Store) *Store {
	return &Store{kv: store}
}

// All returns every application.
func (s *Store) All(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := s.kv.Get(ctx, kv.Applications, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Submit records the student's application to the opportunity. If one
// already exists for the pair, it is updated in place (resume link, note,
// timestamp) and its status reset to Pending.
func (s *Store) Submit(ctx context.Context, opp models.Opportunity, student models.User, resumeLink, note string) (models.Application, error) {
	resumeLink = sanitize.Text(resumeLink)
	note = sanitize.Text(note)
	if resumeLink == "" {
		return models.Application{}, ErrMissingResume
	}

	apps, err := s.All(ctx)
	if err != nil {
		return models.Application{}, err
	}

	now := time.Now().UTC()
	for i, a := range apps {
		if a.OppID == opp.ID && a.StudentID == student.ID {
			apps[i].ResumeLink = resumeLink
			apps[i].Note = note
			apps[i].SubmittedAt = now
			apps[i].Status = models.StatusPending
			if err := s.kv.Put(ctx, kv.Applications, apps); err != nil {
				return models.Application{}, err
			}
			return apps[i], nil
		}
	}

	studentName := student.Name
	if studentName == "" {
		studentName = student.Email
	}
	app := models.Application{
		ID:          ids.New(),
		OppID:       opp.ID,
		OppTitle:    opp.Title,
		StudentID:   student.ID,
		StudentName: studentName,
		ResumeLink:  resumeLink,
		Note:        note,
		Status:      models.StatusPending,
		SubmittedAt: now,
	}
	apps = append(apps, app)
	if err := s.kv.Put(ctx, kv.Applications, apps); err != nil {
		return models.Application{}, err
	}
	return app, nil
}

// GetByID returns the application with the given id, or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id string) (models.Application, error) {
	apps, err := s.All(ctx)
	if err != nil {
		return models.Application{}, err
	}
	for _, a := range apps {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Application{}, ErrNotFound
}

// SetStatus overwrites the application's status with a professor decision.
// There is no transition guard: an approved application may later be
// rejected and vice versa, and resubmission resets either back to Pending.
func (s *Store) SetStatus(ctx context.Context, id, status string) (models.Application, error) {
	if !models.ValidDecision(status) {
		return models.Application{}, ErrBadStatus
	}
	apps, err := s.All(ctx)
	if err != nil {
		return models.Application{}, err
	}
	for i, a := range apps {
		if a.ID == id {
			apps[i].Status = status
			if err := s.kv.Put(ctx, kv.Applications, apps); err != nil {
				return models.Application{}, err
			}
			return apps[i], nil
		}
	}
	return models.Application{}, ErrNotFound
}

// ListForStudent returns the student's applications, newest submission first.
func (s *Store) ListForStudent(ctx context.Context, studentID string) ([]models.Application, error) {
	apps, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]models.Application, 0, len(apps))
	for _, a := range apps {
		if a.StudentID == studentID {
			mine = append(mine, a)
		}
	}
	sortBySubmittedDesc(mine)
	return mine, nil
}

// ListForOpportunities returns applications against any of the given
// opportunity ids, newest submission first. The catalog feature uses this
// with a professor's own opportunity ids to build their review queue.
func (s *Store) ListForOpportunities(ctx context.Context, oppIDs []string) ([]models.Application, error) {
	apps, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]struct{}, len(oppIDs))
	for _, id := range oppIDs {
		wanted[id] = struct{}{}
	}
	out := make([]models.Application, 0, len(apps))
	for _, a := range apps {
		if _, ok := wanted[a.OppID]; ok {
			out = append(out, a)
		}
	}
	sortBySubmittedDesc(out)
	return out, nil
}

// DeleteForOpportunity removes every application referencing the
// opportunity. Called when an opportunity is deleted (cascade). Returns the
// number removed.
func (s *Store) DeleteForOpportunity(ctx context.Context, oppID string) (int, error) {
	apps, err := s.All(ctx)
	if err != nil {
		return 0, err
	}
	kept := apps[:0]
	removed := 0
	for _, a := range apps {
		if a.OppID == oppID {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	if removed == 0 {
		return 0, nil
	}
	if err := s.kv.Put(ctx, kv.Applications, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

func sortBySubmittedDesc(apps []models.Application) {
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].SubmittedAt.After(apps[j].SubmittedAt)
	})
}
