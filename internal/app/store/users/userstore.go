// Package userstore owns the users and pending_professors collections.
package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/univworks/oppquest/internal/app/store/kv"
	"github.com/univworks/oppquest/internal/app/system/ids"
	"github.com/univworks/oppquest/internal/app/system/normalize"
	"github.com/univworks/oppquest/internal/app/system/roles"
	"github.com/univworks/oppquest/internal/domain/models"
)

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrNotFound is returned when no user or pending request matches.
	ErrNotFound = errors.New("user not found")
	errBadRole  = errors.New(`role must be "student"|"professor"|"admin"`)
)

// DefaultPendingDepartment is recorded on a pending professor request until
// the professor fills in a real department.
const DefaultPendingDepartment = "Not set"

type Store struct {
	kv kv.Store
}

func New(store kv.Store) *Store {
	return &Store{kv: store}
}

// All returns every user.
func (s *Store) All(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.kv.Get(ctx, kv.Users, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts a new user after normalizing & validating fields.
// Professors start unapproved and get a pending_professors record in the
// same call; everyone else is approved immediately. An empty name defaults
// to the email local part.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.Role = roles.Normalize(u.Role)
	if !roles.IsValid(u.Role) {
		return models.User{}, errBadRole
	}

	u.Email = normalize.Email(u.Email)
	u.Name = normalize.Name(u.Name)
	if u.Name == "" {
		u.Name, _, _ = strings.Cut(u.Email, "@")
	}

	users, err := s.All(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, existing := range users {
		if existing.Email == u.Email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	u.ID = ids.New()
	u.IsApproved = u.Role != roles.Professor
	u.CreatedAt = time.Now().UTC()

	users = append(users, u)
	if err := s.kv.Put(ctx, kv.Users, users); err != nil {
		return models.User{}, err
	}

	if u.Role == roles.Professor {
		pending, err := s.Pending(ctx)
		if err != nil {
			return models.User{}, err
		}
		pending = append(pending, models.PendingProfessor{
			ID:         u.ID,
			Name:       u.Name,
			Department: DefaultPendingDepartment,
			Email:      u.Email,
		})
		if err := s.kv.Put(ctx, kv.PendingProfessors, pending); err != nil {
			return models.User{}, err
		}
	}

	return u, nil
}

// GetByEmail looks up a user by normalized email. Returns ErrNotFound if absent.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	email = normalize.Email(email)
	users, err := s.All(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// GetByCredentials looks up a user by exact (email, password) match.
// Passwords are compared verbatim: this installation has no real
// authentication by design.
func (s *Store) GetByCredentials(ctx context.Context, email, password string) (models.User, error) {
	email = normalize.Email(email)
	users, err := s.All(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// Pending returns the pending professor requests awaiting admin action.
func (s *Store) Pending(ctx context.Context) ([]models.PendingProfessor, error) {
	var pending []models.PendingProfessor
	if err := s.kv.Get(ctx, kv.PendingProfessors, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

// Approve marks the professor behind the pending request as approved and
// removes the request. The user is matched by id or email, mirroring the
// pending record's provenance from registration.
func (s *Store) Approve(ctx context.Context, requestID string) (models.PendingProfessor, error) {
	req, rest, err := s.takePending(ctx, requestID)
	if err != nil {
		return models.PendingProfessor{}, err
	}

	users, err := s.All(ctx)
	if err != nil {
		return models.PendingProfessor{}, err
	}
	for i, u := range users {
		if u.ID == req.ID || u.Email == req.Email {
			users[i].IsApproved = true
		}
	}
	if err := s.kv.Put(ctx, kv.Users, users); err != nil {
		return models.PendingProfessor{}, err
	}
	if err := s.kv.Put(ctx, kv.PendingProfessors, rest); err != nil {
		return models.PendingProfessor{}, err
	}
	return req, nil
}

// Reject removes both the pending request and the professor's user record.
func (s *Store) Reject(ctx context.Context, requestID string) (models.PendingProfessor, error) {
	req, rest, err := s.takePending(ctx, requestID)
	if err != nil {
		return models.PendingProfessor{}, err
	}

	users, err := s.All(ctx)
	if err != nil {
		return models.PendingProfessor{}, err
	}
	kept := users[:0]
	for _, u := range users {
		if u.ID == req.ID || u.Email == req.Email {
			continue
		}
		kept = append(kept, u)
	}
	if err := s.kv.Put(ctx, kv.Users, kept); err != nil {
		return models.PendingProfessor{}, err
	}
	if err := s.kv.Put(ctx, kv.PendingProfessors, rest); err != nil {
		return models.PendingProfessor{}, err
	}
	return req, nil
}

// CountByRole returns the number of users per role.
func (s *Store) CountByRole(ctx context.Context) (map[string]int, error) {
	users, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, 3)
	for _, u := range users {
		counts[u.Role]++
	}
	return counts, nil
}

// takePending removes and returns the pending request with the given id.
func (s *Store) takePending(ctx context.Context, requestID string) (models.PendingProfessor, []models.PendingProfessor, error) {
	pending, err := s.Pending(ctx)
	if err != nil {
		return models.PendingProfessor{}, nil, err
	}
	for i, p := range pending {
		if p.ID == requestID {
			rest := append(pending[:i:i], pending[i+1:]...)
			return p, rest, nil
		}
	}
	return models.PendingProfessor{}, nil, ErrNotFound
}
