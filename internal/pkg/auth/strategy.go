package auth

import "time"

// Identity is the caller identity carried inside an auth token.
type Identity struct {
	UserID   string
	Username string
}

type Strategy interface {
	IssueToken(userID, username string) (string, error)
	ParseToken(token string) (Identity, error)
	Name() string
}

type Options struct {
	TTL time.Duration
	Now func() time.Time
}
