package handlers

import (
	"context"

	"github.com/polkiloo/workouttracker/internal/domain/model"
	pkgAuth "github.com/polkiloo/workouttracker/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Signup(ctx context.Context, username, email, password string) (*model.User, string, error)
	Login(ctx context.Context, usernameOrEmail, password string) (*model.User, string, error)
	ParseToken(token string) (pkgAuth.Identity, error)
}

// WorkoutFacade encapsulates workout operations exposed via HTTP.
type WorkoutFacade interface {
	AddWorkout(ctx context.Context, userID string, in model.NewWorkout) (*model.Workout, error)
	Workouts(ctx context.Context, userID string) ([]model.Workout, error)
	RecentWorkouts(ctx context.Context, userID string, limit int) ([]model.Workout, error)
	WorkoutsByDay(ctx context.Context, userID, day string) ([]model.Workout, error)
	DeleteWorkout(ctx context.Context, userID, id string) error
}

// HealthFacade reports whether backing services are reachable.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// TrackerFacade aggregates the full set of operations used across handlers.
type TrackerFacade interface {
	AuthFacade
	WorkoutFacade
	HealthFacade
}
