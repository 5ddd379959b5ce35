package test

import (
	"context"
	"errors"

	"github.com/polkiloo/workouttracker/internal/domain/model"
	pkgAuth "github.com/polkiloo/workouttracker/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string, string) (string, error)
	ParseFn func(string) (pkgAuth.Identity, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID, username string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID, username)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (pkgAuth.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Identity{UserID: "user-1", Username: "user"}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	Identity pkgAuth.Identity
	Err      error
	ParseFn  func(string) (pkgAuth.Identity, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (pkgAuth.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return pkgAuth.Identity{}, s.Err
	}
	return s.Identity, nil
}

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	SignupFn func(context.Context, string, string, string) (*model.User, string, error)
	LoginFn  func(context.Context, string, string) (*model.User, string, error)
	ParseFn  func(string) (pkgAuth.Identity, error)
}

// Signup returns a user and token for successful registration scenarios.
func (s AuthFacadeStub) Signup(ctx context.Context, username, email, password string) (*model.User, string, error) {
	if s.SignupFn != nil {
		return s.SignupFn(ctx, username, email, password)
	}
	return &model.User{ID: "user-1", Username: username, Email: email}, "token", nil
}

// Login returns a user and token for successful authentication scenarios.
func (s AuthFacadeStub) Login(ctx context.Context, usernameOrEmail, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, usernameOrEmail, password)
	}
	return &model.User{ID: "user-1", Username: usernameOrEmail}, "token", nil
}

// ParseToken returns the identity of the authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Identity{UserID: "user-1", Username: "user"}, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
