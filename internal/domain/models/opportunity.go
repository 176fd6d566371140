// internal/domain/models/opportunity.go
package models

import "time"

// DeadlineLayout is the calendar-date format opportunities carry.
// ISO dates compare correctly as strings, which the deadline sort relies on.
const DeadlineLayout = "2006-01-02"

// Opportunity is a posted research/internship/project listing.
//
// IDs are UUIDv7, so lexical order tracks creation time and a descending-id
// sort yields most-recent-first. PostedBy is the poster's display name kept
// for rendering; ownership checks use PostedByID.
type Opportunity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"` // Research | Internship | Project | ... (open set)
	Department  string    `json:"department"`
	Deadline    string    `json:"deadline"` // YYYY-MM-DD
	Description string    `json:"description"`
	Eligibility string    `json:"eligibility"`
	PostedBy    string    `json:"posted_by"`
	PostedByID  string    `json:"posted_by_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsExpired reports whether the deadline has passed as of now.
// An unparseable deadline counts as expired.
func (o Opportunity) IsExpired(now time.Time) bool {
	d, err := time.ParseInLocation(DeadlineLayout, o.Deadline, now.Location())
	if err != nil {
		return true
	}
	return d.Before(now)
}
