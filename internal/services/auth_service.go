package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"InvoiceNestAPI/internal/auth"
	"InvoiceNestAPI/internal/model"
	"InvoiceNestAPI/internal/repository"
)

const (
	MinPasswordLen = 8
	MinNameLen     = 2
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UserStore is the slice of the user repository the auth workflow needs.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash, name, role string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	CountAdmins(ctx context.Context) (int, error)
}

// AuthService orchestrates setup, login and current-user resolution.
type AuthService struct {
	Users  UserStore
	Hasher *auth.Hasher
	Tokens *auth.TokenService
}

func NewAuthService(users UserStore, hasher *auth.Hasher, tokens *auth.TokenService) *AuthService {
	return &AuthService{Users: users, Hasher: hasher, Tokens: tokens}
}

func ValidateName(name string) error {
	if len(strings.TrimSpace(name)) < MinNameLen {
		return &auth.ValidationError{Field: "name", Message: "Name must be at least 2 characters"}
	}
	return nil
}

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return &auth.ValidationError{Field: "email", Message: "Invalid email address"}
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return &auth.ValidationError{Field: "password", Message: "Password must be at least 8 characters"}
	}
	return nil
}

// CheckSetupStatus reports whether the first-admin bootstrap has happened.
// Setup is complete iff at least one ADMIN exists.
func (s *AuthService) CheckSetupStatus(ctx context.Context) (bool, error) {
	n, err := s.Users.CountAdmins(ctx)
	if err != nil {
		return false, auth.NewDatabaseError("while checking setup status", err)
	}
	return n > 0, nil
}

// CreateUser hashes the password and persists a new active user. The email
// must be unused: a pre-check catches the common case and the store's unique
// constraint catches the race, both surfacing USER_ALREADY_EXISTS. The
// returned record never carries the hash.
func (s *AuthService) CreateUser(ctx context.Context, email, password, name, role string) (*model.User, error) {
	if role == "" {
		role = model.RoleUser
	}

	_, err := s.Users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, auth.NewAuthError(auth.CodeUserAlreadyExists, "User with this email already exists")
	case !errors.Is(err, repository.ErrNotFound):
		return nil, auth.NewDatabaseError("during user creation", err)
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, auth.NewDatabaseError("during user creation", err)
	}

	u, err := s.Users.Create(ctx, email, hash, name, role)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, auth.NewAuthError(auth.CodeUserAlreadyExists, "User with this email already exists")
		}
		return nil, auth.NewDatabaseError("during user creation", err)
	}

	u.PasswordHash = ""
	return u, nil
}

// AuthenticateUser checks existence, then the active flag, then the password.
// The order determines which error kind the client sees.
func (s *AuthService) AuthenticateUser(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, auth.NewAuthError(auth.CodeUserNotFound, "User not found")
		}
		return nil, auth.NewDatabaseError("during authentication", err)
	}
	if !u.IsActive {
		return nil, auth.NewAuthError(auth.CodeUserInactive, "User account is inactive")
	}
	if !s.Hasher.Verify(password, u.PasswordHash) {
		return nil, auth.NewAuthError(auth.CodeInvalidPassword, "Invalid password")
	}

	u.PasswordHash = ""
	return u, nil
}

// GetCurrentUser resolves a token back to its user, re-applying the
// active-flag check. Token failures propagate with their own kinds.
func (s *AuthService) GetCurrentUser(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.Tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, auth.NewAuthError(auth.CodeUserNotFound, "User not found")
		}
		return nil, auth.NewDatabaseError("while fetching current user", err)
	}
	if !u.IsActive {
		return nil, auth.NewAuthError(auth.CodeUserInactive, "User account is inactive")
	}

	u.PasswordHash = ""
	return u, nil
}
