package repository

import (
	"context"

	"github.com/polkiloo/workouttracker/internal/domain/model"
)

// UserRepository describes persistence operations for user credentials.
// Lookups return domain errors.ErrNotFound when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsernameOrEmail(ctx context.Context, value string) (*model.User, error)
}
