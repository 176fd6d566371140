// internal/domain/models/user.go
package models

import "time"

// User represents students, professors, and admins.
//
// Passwords are stored verbatim and compared exactly: this is a demo
// installation with no real authentication (see the project non-goals).
// Professors start with IsApproved=false and cannot sign in until an
// admin approves the matching PendingProfessor record.
type User struct {
	ID         string    `json:"id"`
	Role       string    `json:"role"` // student | professor | admin
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	Name       string    `json:"name"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}
