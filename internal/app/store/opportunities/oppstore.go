// Package oppstore owns the opportunities collection.
package oppstore

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"

	"github.com/univworks/oppquest/internal/app/store/kv"
	"github.com/univworks/oppquest/internal/app/system/ids"
	"github.com/univworks/oppquest/internal/app/system/sanitize"
	"github.com/univworks/oppquest/internal/domain/models"
)

var (
	// ErrMissingFields is returned when title, deadline, or description is empty.
	ErrMissingFields = errors.New("title, deadline, and description are required")
	// ErrBadDeadline is returned when the deadline is not a YYYY-MM-DD date.
	ErrBadDeadline = errors.New("deadline must be a YYYY-MM-DD date")
	// ErrNotFound is returned when no opportunity matches the id.
	ErrNotFound = errors.New("opportunity not found")
	// ErrNotOwner is returned when a delete is requested by someone other than the poster.
	ErrNotOwner = errors.New("opportunity was posted by someone else")
)

// Sort orders accepted by List.
const (
	SortDeadlineAsc = "deadline" // default: soonest deadline first
	SortRecencyDesc = "recent"   // newest first (descending time-ordered id)
)

// Filter narrows and orders a List call. Zero-valued fields do not filter.
type Filter struct {
	Query      string // case-insensitive substring over title+description+eligibility
	Department string // exact match
	Type       string // exact match
	Sort       string // SortDeadlineAsc (default) or SortRecencyDesc
}

type Store struct {
	kv kv.Store
}

func New(store kv.Store) *Store {
	return &Store{kv: store}
}

// All returns every opportunity in insertion order.
func (s *Store) All(ctx context.Context) ([]models.Opportunity, error) {
	var opps []models.Opportunity
	if err := s.kv.Get(ctx, kv.Opportunities, &opps); err != nil {
		return nil, err
	}
	return opps, nil
}

// Publish validates and appends a new opportunity. Free-text fields are
// stripped of markup before storage.
func (s *Store) Publish(ctx context.Context, opp models.Opportunity) (models.Opportunity, error) {
	opp.Title = sanitize.Text(opp.Title)
	opp.Description = sanitize.Text(opp.Description)
	opp.Eligibility = sanitize.Text(opp.Eligibility)

	if opp.Title == "" || opp.Deadline == "" || opp.Description == "" {
		return models.Opportunity{}, ErrMissingFields
	}
	if _, err := time.Parse(models.DeadlineLayout, opp.Deadline); err != nil {
		return models.Opportunity{}, ErrBadDeadline
	}

	opp.ID = ids.New()
	opp.CreatedAt = time.Now().UTC()

	opps, err := s.All(ctx)
	if err != nil {
		return models.Opportunity{}, err
	}
	opps = append(opps, opp)
	if err := s.kv.Put(ctx, kv.Opportunities, opps); err != nil {
		return models.Opportunity{}, err
	}
	return opp, nil
}

// GetByID returns the opportunity with the given id, or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id string) (models.Opportunity, error) {
	opps, err := s.All(ctx)
	if err != nil {
		return models.Opportunity{}, err
	}
	for _, o := range opps {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Opportunity{}, ErrNotFound
}

// List returns opportunities matching the filter, ordered by f.Sort.
// The deadline sort is stable, so equal deadlines keep insertion order.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Opportunity, error) {
	opps, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	query := text.Fold(f.Query)
	matched := make([]models.Opportunity, 0, len(opps))
	for _, o := range opps {
		if query != "" {
			haystack := text.Fold(o.Title + " " + o.Description + " " + o.Eligibility)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		if f.Department != "" && o.Department != f.Department {
			continue
		}
		if f.Type != "" && o.Type != f.Type {
			continue
		}
		matched = append(matched, o)
	}

	switch f.Sort {
	case SortRecencyDesc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].ID > matched[j].ID
		})
	default:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Deadline < matched[j].Deadline
		})
	}
	return matched, nil
}

// ListByPoster returns the opportunities posted by the given user,
// soonest deadline first.
func (s *Store) ListByPoster(ctx context.Context, posterID string) ([]models.Opportunity, error) {
	opps, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]models.Opportunity, 0, len(opps))
	for _, o := range opps {
		if o.PostedByID == posterID {
			mine = append(mine, o)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].Deadline < mine[j].Deadline
	})
	return mine, nil
}

// Delete removes the opportunity with the given id. Only the poster may
// delete it; ownership is checked by user id, not display name. Cascading
// removal of dependent applications is the caller's responsibility (see the
// catalog feature handler).
func (s *Store) Delete(ctx context.Context, id, requesterID string) error {
	opps, err := s.All(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i, o := range opps {
		if o.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	if opps[idx].PostedByID != requesterID {
		return ErrNotOwner
	}
	opps = append(opps[:idx], opps[idx+1:]...)
	return s.kv.Put(ctx, kv.Opportunities, opps)
}
