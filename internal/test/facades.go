package test

import (
	"context"
	"time"

	"github.com/polkiloo/workouttracker/internal/domain/model"
)

// WorkoutFacadeStub provides controllable behaviour for workout endpoints.
type WorkoutFacadeStub struct {
	AddFn    func(context.Context, string, model.NewWorkout) (*model.Workout, error)
	ListFn   func(context.Context, string) ([]model.Workout, error)
	RecentFn func(context.Context, string, int) ([]model.Workout, error)
	DayFn    func(context.Context, string, string) ([]model.Workout, error)
	DeleteFn func(context.Context, string, string) error
}

// AddWorkout delegates to provided function or echoes the input back.
func (s WorkoutFacadeStub) AddWorkout(ctx context.Context, userID string, in model.NewWorkout) (*model.Workout, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, in)
	}
	w := &model.Workout{ID: "workout-1", UserID: userID, Type: in.Type, Calories: in.Calories, Date: time.Unix(0, 0)}
	if in.Duration != nil {
		w.Duration = *in.Duration
	}
	return w, nil
}

// Workouts returns predefined workouts for the user.
func (s WorkoutFacadeStub) Workouts(ctx context.Context, userID string) ([]model.Workout, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return []model.Workout{{ID: "workout-1", UserID: userID, Type: "run", Duration: 30}}, nil
}

// RecentWorkouts returns predefined recent workouts.
func (s WorkoutFacadeStub) RecentWorkouts(ctx context.Context, userID string, limit int) ([]model.Workout, error) {
	if s.RecentFn != nil {
		return s.RecentFn(ctx, userID, limit)
	}
	return []model.Workout{}, nil
}

// WorkoutsByDay returns predefined workouts for the day.
func (s WorkoutFacadeStub) WorkoutsByDay(ctx context.Context, userID, day string) ([]model.Workout, error) {
	if s.DayFn != nil {
		return s.DayFn(ctx, userID, day)
	}
	return []model.Workout{}, nil
}

// DeleteWorkout executes configured delete handler.
func (s WorkoutFacadeStub) DeleteWorkout(ctx context.Context, userID, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, id)
	}
	return nil
}

// HealthFacadeStub reports configured storage health.
type HealthFacadeStub struct {
	Err error
}

// Health returns the configured error.
func (s HealthFacadeStub) Health(ctx context.Context) error {
	return s.Err
}

// TrackerFacadeStub aggregates facade dependencies for HTTP layer tests.
type TrackerFacadeStub struct {
	AuthFacadeStub
	WorkoutFacadeStub
	HealthFacadeStub
}
