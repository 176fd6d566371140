// Package roles defines the role strings used across the application.
package roles

import "strings"

const (
	Student   = "student"
	Professor = "professor"
	Admin     = "admin"
)

// IsValid reports whether role is one of the known roles.
func IsValid(role string) bool {
	switch role {
	case Student, Professor, Admin:
		return true
	}
	return false
}

// Normalize lowercases and trims a role string from user input.
func Normalize(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
