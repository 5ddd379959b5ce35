package app

import (
	"context"

	"github.com/polkiloo/workouttracker/internal/domain/model"
	pkgAuth "github.com/polkiloo/workouttracker/internal/pkg/auth"
	"github.com/polkiloo/workouttracker/internal/usecase"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// TrackerFacade exposes use cases to the HTTP layer.
type TrackerFacade struct {
	auth     *usecase.AuthUseCase
	workouts *usecase.WorkoutUseCase
	health   HealthChecker
}

func NewTrackerFacade(auth *usecase.AuthUseCase, workouts *usecase.WorkoutUseCase, health HealthChecker) *TrackerFacade {
	return &TrackerFacade{auth: auth, workouts: workouts, health: health}
}

func (f *TrackerFacade) Signup(ctx context.Context, username, email, password string) (*model.User, string, error) {
	return f.auth.Signup(ctx, username, email, password)
}

func (f *TrackerFacade) Login(ctx context.Context, usernameOrEmail, password string) (*model.User, string, error) {
	return f.auth.Login(ctx, usernameOrEmail, password)
}

func (f *TrackerFacade) ParseToken(token string) (pkgAuth.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *TrackerFacade) AddWorkout(ctx context.Context, userID string, in model.NewWorkout) (*model.Workout, error) {
	return f.workouts.Add(ctx, userID, in)
}

func (f *TrackerFacade) Workouts(ctx context.Context, userID string) ([]model.Workout, error) {
	return f.workouts.ListByUser(ctx, userID)
}

func (f *TrackerFacade) RecentWorkouts(ctx context.Context, userID string, limit int) ([]model.Workout, error) {
	return f.workouts.ListRecent(ctx, userID, limit)
}

func (f *TrackerFacade) WorkoutsByDay(ctx context.Context, userID, day string) ([]model.Workout, error) {
	return f.workouts.ListByDay(ctx, userID, day)
}

func (f *TrackerFacade) DeleteWorkout(ctx context.Context, userID, id string) error {
	return f.workouts.Remove(ctx, userID, id)
}

// Health pings storage. A facade without a checker is always healthy.
func (f *TrackerFacade) Health(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
