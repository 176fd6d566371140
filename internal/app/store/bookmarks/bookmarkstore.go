// Package bookmarkstore owns the per-student bookmark collections.
//
// Each student has their own mapping of opportunity id to a denormalized
// snapshot. Snapshots are taken at toggle time and never refreshed; a
// bookmark can therefore go stale if the opportunity changes, which is
// accepted for this tier.
package bookmarkstore

import (
	"context"
	"sort"

	"github.com/univworks/oppquest/internal/app/store/kv"
	"github.com/univworks/oppquest/internal/domain/models"
)

type Store struct {
	kv kv.Store
}

func New(store kv.Store) *Store {
	return &Store{kv: store}
}

// Toggle flips bookmark membership for the opportunity: removes the
// snapshot if present, inserts one otherwise. Returns whether the
// opportunity is bookmarked after the call. Two consecutive toggles leave
// membership unchanged.
func (s *Store) Toggle(ctx context.Context, studentID string, opp models.Opportunity) (bool, error) {
	collection := kv.BookmarkCollection(studentID)

	marks, err := s.load(ctx, collection)
	if err != nil {
		return false, err
	}

	if _, ok := marks[opp.ID]; ok {
		delete(marks, opp.ID)
	} else {
		marks[opp.ID] = models.BookmarkSnapshot{
			ID:       opp.ID,
			Title:    opp.Title,
			Deadline: opp.Deadline,
		}
	}

	if err := s.kv.Put(ctx, collection, marks); err != nil {
		return false, err
	}
	_, bookmarked := marks[opp.ID]
	return bookmarked, nil
}

// IsBookmarked reports whether the student has bookmarked the opportunity.
func (s *Store) IsBookmarked(ctx context.Context, studentID, oppID string) (bool, error) {
	marks, err := s.load(ctx, kv.BookmarkCollection(studentID))
	if err != nil {
		return false, err
	}
	_, ok := marks[oppID]
	return ok, nil
}

// List returns the student's snapshots ascending by deadline.
func (s *Store) List(ctx context.Context, studentID string) ([]models.BookmarkSnapshot, error) {
	marks, err := s.load(ctx, kv.BookmarkCollection(studentID))
	if err != nil {
		return nil, err
	}
	out := make([]models.BookmarkSnapshot, 0, len(marks))
	for _, bm := range marks {
		out = append(out, bm)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Deadline != out[j].Deadline {
			return out[i].Deadline < out[j].Deadline
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) load(ctx context.Context, collection string) (map[string]models.BookmarkSnapshot, error) {
	var marks map[string]models.BookmarkSnapshot
	if err := s.kv.Get(ctx, collection, &marks); err != nil {
		return nil, err
	}
	if marks == nil {
		marks = make(map[string]models.BookmarkSnapshot)
	}
	return marks, nil
}
