// Package ids generates entity identifiers.
//
// IDs are UUIDv7: time-ordered, so lexical comparison of two ids tells you
// which entity was created first. The opportunity catalog's "recent" sort
// depends on this property.
package ids

import "github.com/google/uuid"

// New returns a fresh time-ordered identifier.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the random source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}
