// internal/domain/models/application.go
package models

import "time"

// Application status values. Resubmitting an application resets it to
// Pending; a professor may overwrite any prior decision (there is no
// terminal state).
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// ValidDecision reports whether s is a status a professor may set.
func ValidDecision(s string) bool {
	return s == StatusApproved || s == StatusRejected
}

// Application is a student's submission against one Opportunity.
// At most one exists per (OppID, StudentID) pair; resubmission updates the
// record in place.
type Application struct {
	ID          string    `json:"id"`
	OppID       string    `json:"opp_id"`
	OppTitle    string    `json:"opp_title"` // denormalized for rendering
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	ResumeLink  string    `json:"resume_link"`
	Note        string    `json:"note"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}
