// Package kv is the persistence boundary: named collections of
// JSON-serializable records, read and written whole.
//
// Every writer follows the same cycle: load the full collection, mutate the
// in-memory copy, store the full collection back. The last writer wins;
// there is no cross-collection atomicity and no optimistic-concurrency
// check. That model is intentional for a single-installation app and is
// documented in DESIGN.md.
//
// A missing collection reads as the zero value, and a malformed persisted
// payload decodes to the zero value as well — availability over strict
// validation, so a corrupted record never fails an entire page load.
package kv

import "context"

// Collection names used by the application. Per-student bookmark
// collections are derived with BookmarkCollection.
const (
	Users             = "users"
	CurrentUser       = "current_user"
	Opportunities     = "opportunities"
	PendingProfessors = "pending_professors"
	Applications      = "applications"

	bookmarkPrefix = "bookmarks/"
)

// BookmarkCollection returns the bookmark collection name scoped to one
// student. Scoping by user id is the multi-tenancy fix over the original
// single shared mapping.
func BookmarkCollection(studentID string) string {
	return bookmarkPrefix + studentID
}

// Store is the injected persistence interface. One Store instance exists
// per running installation; components receive it at construction.
type Store interface {
	// Get decodes the named collection into v. If the collection does not
	// exist or its payload is malformed, v is left zero-valued and Get
	// returns nil.
	Get(ctx context.Context, collection string, v any) error

	// Put serializes v and replaces the named collection.
	Put(ctx context.Context, collection string, v any) error

	// Delete removes the named collection. Deleting a missing collection
	// is a no-op.
	Delete(ctx context.Context, collection string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
