// internal/domain/models/pendingprofessor.go
package models

// PendingProfessor is an unapproved professor registration awaiting admin
// action. Its ID equals the ID of the unapproved User; the record is removed
// when an admin approves or rejects it.
type PendingProfessor struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email"`
}
