package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/workouttracker/internal/domain/errors"
	"github.com/polkiloo/workouttracker/internal/domain/model"
	"github.com/polkiloo/workouttracker/internal/domain/repository"
	pkgAuth "github.com/polkiloo/workouttracker/internal/pkg/auth"
)

// AuthUseCase handles account creation, login and token verification.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Signup creates a new account and returns it together with an auth token.
// Uniqueness of username and email is checked before the insert; the check
// and the insert are not atomic.
func (u *AuthUseCase) Signup(ctx context.Context, username, email, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, "", domainErrors.ErrMissingField
	}

	taken, err := u.exists(ctx, u.users.FindByUsername, username)
	if err != nil {
		return nil, "", err
	}
	if !taken {
		if taken, err = u.exists(ctx, u.users.FindByEmail, email); err != nil {
			return nil, "", err
		}
	}
	if taken {
		return nil, "", domainErrors.ErrAlreadyExists
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, username, email, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID, usr.Username)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Login validates credentials and returns the matched user with a fresh token.
// Unknown users and wrong passwords yield the same ErrInvalidCredentials.
func (u *AuthUseCase) Login(ctx context.Context, usernameOrEmail, password string) (*model.User, string, error) {
	usernameOrEmail = strings.TrimSpace(usernameOrEmail)
	if usernameOrEmail == "" || password == "" {
		return nil, "", domainErrors.ErrMissingField
	}

	usr, err := u.users.FindByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID, usr.Username)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken verifies token and returns the identity it carries.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Identity, error) {
	if token == "" {
		return pkgAuth.Identity{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

func (u *AuthUseCase) exists(ctx context.Context, find func(context.Context, string) (*model.User, error), value string) (bool, error) {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domainErrors.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
