// internal/domain/models/bookmark.go
package models

// BookmarkSnapshot is a student's saved reference to an Opportunity.
// It is a denormalized copy taken at toggle time and is not refreshed if
// the underlying opportunity later changes.
type BookmarkSnapshot struct {
	ID       string `json:"id"` // opportunity id
	Title    string `json:"title"`
	Deadline string `json:"deadline"` // YYYY-MM-DD
}
