package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PasswordHasher abstracts one-way password hashing (e.g., bcrypt).
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) bool
}

// AuthUseCase describes registration/authentication behavior.
type AuthUseCase interface {
	SignUp(ctx context.Context, username, password string) (User, error)
	SignIn(ctx context.Context, username, password string) (AuthResult, error)
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo   UserRepository
	hasher PasswordHasher
	tokens TokenGenerator
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, hasher PasswordHasher, tokens TokenGenerator) AuthUseCase {
	return &authService{repo: repo, hasher: hasher, tokens: tokens}
}

// Usernames are case-insensitive; the canonical lowercase form is
// fixed here, once, so the returned entity, the stored row and the
// token claims all carry the same value.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// SignUp registers a new account. It does not issue a token:
// registration and login are separate steps. Duplicate usernames are
// detected by the repository's uniqueness constraint on insert, so
// there is no check-then-act window.
func (s *authService) SignUp(ctx context.Context, username, password string) (User, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return User{}, ErrValidation
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, ErrInternal
	}

	user := User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return User{}, ErrUserAlreadyExists
		}
		return User{}, ErrInternal
	}
	return user, nil
}

// SignIn answers identically for an unknown username and a wrong
// password, so a caller cannot enumerate registered usernames.
func (s *authService) SignIn(ctx context.Context, username, password string) (AuthResult, error) {
	user, err := s.repo.GetByUsername(ctx, normalizeUsername(username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, ErrInternal
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, ErrInternal
	}
	return AuthResult{User: user, Token: token}, nil
}
