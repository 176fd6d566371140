package kv_test

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/univworks/oppquest/internal/app/store/kv"
	"github.com/univworks/oppquest/internal/domain/models"
)

// backends returns one instance of every local Store implementation.
// The mongo backend needs a running server and is exercised elsewhere.
func backends(t *testing.T) map[string]kv.Store {
	t.Helper()

	sqlite, err := kv.OpenSQLite(context.Background(),
		filepath.Join(t.TempDir(), "oppquest.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = sqlite.Close(context.Background()) })

	return map[string]kv.Store{
		"memory": kv.NewMemory(),
		"sqlite": sqlite,
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			in := []models.User{
				{ID: "u1", Role: "student", Email: "a@x.edu", Name: "A"},
				{ID: "u2", Role: "admin", Email: "admin@x.edu", Name: "Admin"},
			}
			if err := store.Put(ctx, kv.Users, in); err != nil {
				t.Fatalf("Put failed: %v", err)
			}

			var out []models.User
			if err := store.Get(ctx, kv.Users, &out); err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if len(out) != 2 {
				t.Fatalf("expected 2 users, got %d", len(out))
			}
			if out[0].Email != "a@x.edu" || out[1].Role != "admin" {
				t.Errorf("round trip mismatch: %+v", out)
			}
		})
	}
}

func TestStore_MissingCollectionIsEmpty(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			var out []models.Opportunity
			if err := store.Get(context.Background(), kv.Opportunities, &out); err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if out != nil {
				t.Errorf("expected nil slice for missing collection, got %v", out)
			}
		})
	}
}

func TestStore_OverwriteReplacesWhole(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := store.Put(ctx, kv.Applications, []models.Application{{ID: "a1"}, {ID: "a2"}}); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			if err := store.Put(ctx, kv.Applications, []models.Application{{ID: "a3"}}); err != nil {
				t.Fatalf("second Put failed: %v", err)
			}

			var out []models.Application
			if err := store.Get(ctx, kv.Applications, &out); err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if len(out) != 1 || out[0].ID != "a3" {
				t.Errorf("expected whole-collection replace, got %+v", out)
			}
		})
	}
}

func TestStore_Delete(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			bm := kv.BookmarkCollection("u1")
			if err := store.Put(ctx, bm, map[string]models.BookmarkSnapshot{"o1": {ID: "o1"}}); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			if err := store.Delete(ctx, bm); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}

			var out map[string]models.BookmarkSnapshot
			if err := store.Get(ctx, bm, &out); err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if len(out) != 0 {
				t.Errorf("expected empty map after delete, got %v", out)
			}

			// Deleting again is a no-op.
			if err := store.Delete(ctx, bm); err != nil {
				t.Errorf("second Delete failed: %v", err)
			}
		})
	}
}

func TestStore_SingleRecordCollection(t *testing.T) {
	// Collections are not restricted to slices: current_user holds one
	// record, and bookmark collections hold maps.
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := store.Put(ctx, kv.CurrentUser, models.User{ID: "u1", Email: "a@x.edu"}); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			var out models.User
			if err := store.Get(ctx, kv.CurrentUser, &out); err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if out.ID != "u1" || out.Email != "a@x.edu" {
				t.Errorf("round trip: got %+v", out)
			}
		})
	}
}

func TestMemory_MalformedPayloadIsEmpty(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()

	if err := store.Put(ctx, kv.Users, []models.User{{ID: "u1"}}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	store.Corrupt(kv.Users)

	var out []models.User
	if err := store.Get(ctx, kv.Users, &out); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if out != nil {
		t.Errorf("expected empty fallback for corrupted payload, got %v", out)
	}
}
