package model

import "time"

// User represents a registered account. PasswordHash never leaves the service.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
