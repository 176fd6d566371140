// internal/app/features/accounts/accounts.go
package accounts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	userstore "github.com/univworks/oppquest/internal/app/store/users"
	"github.com/univworks/oppquest/internal/app/system/auth"
	"github.com/univworks/oppquest/internal/app/system/httpjson"
	"github.com/univworks/oppquest/internal/app/system/roles"
	"github.com/univworks/oppquest/internal/domain/models"
)

// userView is the account shape returned to clients. Passwords never
// leave the store layer.
type userView struct {
	ID         string `json:"id"`
	Role       string `json:"role"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	IsApproved bool   `json:"is_approved"`
}

func viewOf(u models.User) userView {
	return userView{
		ID:         u.ID,
		Role:       u.Role,
		Email:      u.Email,
		Name:       u.Name,
		IsApproved: u.IsApproved,
	}
}

type registerRequest struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type registerResponse struct {
	User    userView `json:"user"`
	Message string   `json:"message,omitempty"`
}

// Register creates an account. Students and admins are signed in on the
// spot. Professors come back unapproved with a pending request queued for
// the admin and get no session until approved.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, httpjson.CodeValidation, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		httpjson.Error(w, http.StatusUnprocessableEntity, httpjson.CodeValidation, "email and password are required")
		return
	}

	u, err := h.Users.Create(r.Context(), models.User{
		Role:     req.Role,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	switch {
	case errors.Is(err, userstore.ErrDuplicateEmail):
		httpjson.Error(w, http.StatusConflict, httpjson.CodeDuplicateEmail, "An account with this email already exists.")
		return
	case err != nil:
		if !roles.IsValid(roles.Normalize(req.Role)) {
			httpjson.Error(w, http.StatusUnprocessableEntity, httpjson.CodeValidation, err.Error())
			return
		}
		h.Log.Error("failed to register user", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "registration failed")
		return
	}

	resp := registerResponse{User: viewOf(u)}
	if u.Role == roles.Professor {
		resp.Message = "Your professor account is awaiting admin approval."
	} else if err := h.Sessions.SignIn(w, r, u); err != nil {
		h.Log.Error("failed to start session after registration", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "registration failed")
		return
	}
	httpjson.Respond(w, http.StatusCreated, resp)
}

type loginRequest struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks credentials against the selected role tab and starts a
// session. In demo mode an unknown email is provisioned on the spot with
// the requested role, so the demo works without registering first.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, httpjson.CodeValidation, "invalid JSON body")
		return
	}
	req.Role = roles.Normalize(req.Role)
	if !roles.IsValid(req.Role) {
		httpjson.Error(w, http.StatusUnprocessableEntity, httpjson.CodeValidation, `role must be "student", "professor", or "admin"`)
		return
	}

	u, err := h.Users.GetByCredentials(r.Context(), req.Email, req.Password)
	if errors.Is(err, userstore.ErrNotFound) {
		if !h.DemoMode {
			httpjson.Error(w, http.StatusNotFound, httpjson.CodeNotFound, "No account matches this email and password.")
			return
		}
		u, err = h.provision(w, r, req)
		if err != nil {
			return // provision wrote the response
		}
	} else if err != nil {
		h.Log.Error("failed to look up credentials", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "login failed")
		return
	}

	if u.Role != req.Role {
		httpjson.RoleMismatch(w, u.Role)
		return
	}
	if u.Role == roles.Professor && !u.IsApproved {
		httpjson.Error(w, http.StatusForbidden, httpjson.CodePendingApproval, "Your professor account is awaiting admin approval.")
		return
	}

	if err := h.Sessions.SignIn(w, r, u); err != nil {
		h.Log.Error("failed to start session", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "login failed")
		return
	}
	httpjson.Respond(w, http.StatusOK, viewOf(u))
}

// provision creates a demo account for an unknown login. A failure writes
// the error response and returns a non-nil error so Login can bail out.
func (h *Handler) provision(w http.ResponseWriter, r *http.Request, req loginRequest) (models.User, error) {
	u, err := h.Users.Create(r.Context(), models.User{
		Role:     req.Role,
		Email:    req.Email,
		Password: req.Password,
	})
	if errors.Is(err, userstore.ErrDuplicateEmail) {
		// The email exists with a different password.
		httpjson.Error(w, http.StatusNotFound, httpjson.CodeNotFound, "No account matches this email and password.")
		return models.User{}, err
	}
	if err != nil {
		h.Log.Error("failed to provision demo account", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "login failed")
		return models.User{}, err
	}
	h.Log.Info("provisioned demo account",
		zap.String("email", u.Email),
		zap.String("role", u.Role))
	return u, nil
}

// Logout clears the session. Safe to call when signed out.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.SignOut(w, r); err != nil {
		h.Log.Error("failed to clear session", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.CodeServerError, "logout failed")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]bool{"ok": true})
}

// WhoAmI reports the signed-in user, or 401 when anonymous.
func (h *Handler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, httpjson.CodeForbidden, "not signed in")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	})
}
