// Package httpjson holds the JSON response helpers shared by feature
// handlers. Every surface in this app is a JSON endpoint, so the inline
// encoder calls that would otherwise repeat in each handler live here.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Error codes returned in the "error" field of error bodies.
const (
	CodeValidation      = "validation_error"
	CodeDuplicateEmail  = "duplicate_email"
	CodeRoleMismatch    = "role_mismatch"
	CodePendingApproval = "pending_approval"
	CodeNotFound        = "not_found"
	CodeForbidden       = "forbidden"
	CodeServerError     = "server_error"
)

// errorBody is the JSON structure for error responses.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	// ActualRole is set only for role_mismatch errors.
	ActualRole string `json:"actual_role,omitempty"`
}

// Respond writes v as a JSON response with the given status.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a tagged JSON error body.
func Error(w http.ResponseWriter, status int, code, message string) {
	Respond(w, status, errorBody{Error: code, Message: message})
}

// RoleMismatch writes the role_mismatch error, carrying the role the
// account is actually registered under.
func RoleMismatch(w http.ResponseWriter, actualRole string) {
	Respond(w, http.StatusForbidden, errorBody{
		Error:      CodeRoleMismatch,
		Message:    "You are registered as " + actualRole + ".",
		ActualRole: actualRole,
	})
}
