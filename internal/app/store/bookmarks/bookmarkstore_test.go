package bookmarkstore_test

import (
	"context"
	"testing"

	bookmarkstore "github.com/univworks/oppquest/internal/app/store/bookmarks"
	"github.com/univworks/oppquest/internal/app/store/kv"
	"github.com/univworks/oppquest/internal/domain/models"
)

func opp(id, title, deadline string) models.Opportunity {
	return models.Opportunity{ID: id, Title: title, Deadline: deadline}
}

func TestStore_Toggle(t *testing.T) {
	store := bookmarkstore.New(kv.NewMemory())
	ctx := context.Background()

	bookmarked, err := store.Toggle(ctx, "stu-1", opp("o1", "NLP RA", "2026-09-10"))
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !bookmarked {
		t.Error("first toggle should bookmark")
	}

	got, err := store.List(ctx, "stu-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "NLP RA" || got[0].Deadline != "2026-09-10" {
		t.Errorf("snapshot: got %+v", got)
	}
}

func TestStore_Toggle_IsItsOwnInverse(t *testing.T) {
	store := bookmarkstore.New(kv.NewMemory())
	ctx := context.Background()
	o := opp("o1", "NLP RA", "2026-09-10")

	if _, err := store.Toggle(ctx, "stu-1", o); err != nil {
		t.Fatalf("first Toggle failed: %v", err)
	}
	bookmarked, err := store.Toggle(ctx, "stu-1", o)
	if err != nil {
		t.Fatalf("second Toggle failed: %v", err)
	}
	if bookmarked {
		t.Error("second toggle should remove the bookmark")
	}

	got, err := store.List(ctx, "stu-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no bookmarks after double toggle, got %d", len(got))
	}
}

func TestStore_List_OrderedByDeadline(t *testing.T) {
	store := bookmarkstore.New(kv.NewMemory())
	ctx := context.Background()

	store.Toggle(ctx, "stu-1", opp("o1", "later", "2026-12-01"))
	store.Toggle(ctx, "stu-1", opp("o2", "sooner", "2026-09-01"))
	store.Toggle(ctx, "stu-1", opp("o3", "middle", "2026-10-15"))

	got, err := store.List(ctx, "stu-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"sooner", "middle", "later"}
	if len(got) != len(want) {
		t.Fatalf("expected %d bookmarks, got %d", len(want), len(got))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestStore_ScopedPerStudent(t *testing.T) {
	store := bookmarkstore.New(kv.NewMemory())
	ctx := context.Background()

	store.Toggle(ctx, "stu-1", opp("o1", "a", "2026-09-01"))
	store.Toggle(ctx, "stu-2", opp("o2", "b", "2026-09-02"))

	got1, _ := store.List(ctx, "stu-1")
	got2, _ := store.List(ctx, "stu-2")
	if len(got1) != 1 || got1[0].ID != "o1" {
		t.Errorf("stu-1 bookmarks: got %+v", got1)
	}
	if len(got2) != 1 || got2[0].ID != "o2" {
		t.Errorf("stu-2 bookmarks: got %+v", got2)
	}
}
