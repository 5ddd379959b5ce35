package repository

import (
	"context"
	"time"

	"github.com/polkiloo/workouttracker/internal/domain/model"
)

// WorkoutRepository describes persistence operations with workouts.
type WorkoutRepository interface {
	Create(ctx context.Context, w model.Workout) (*model.Workout, error)
	ListByUser(ctx context.Context, userID string) ([]model.Workout, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]model.Workout, error)
	// ListBetween returns workouts dated within [from, to], earliest first.
	ListBetween(ctx context.Context, userID string, from, to time.Time) ([]model.Workout, error)
	Delete(ctx context.Context, userID, id string) error
}
