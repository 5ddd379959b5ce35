package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/workouttracker/internal/domain/errors"
	"github.com/polkiloo/workouttracker/internal/domain/model"
	"github.com/polkiloo/workouttracker/internal/domain/repository"
)

// WorkoutUseCase encapsulates recording and querying of workouts.
type WorkoutUseCase struct {
	workouts repository.WorkoutRepository
	loc      *time.Location
	now      func() time.Time
}

// NewWorkoutUseCase constructs WorkoutUseCase. Calendar days are evaluated in loc.
func NewWorkoutUseCase(workouts repository.WorkoutRepository, loc *time.Location) *WorkoutUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &WorkoutUseCase{workouts: workouts, loc: loc, now: time.Now}
}

// Add validates and stores a workout for the user. The event date falls
// back to the current time when it is missing or unparsable.
func (u *WorkoutUseCase) Add(ctx context.Context, userID string, in model.NewWorkout) (*model.Workout, error) {
	if userID == "" {
		return nil, domainErrors.ErrMissingField
	}

	kind := strings.TrimSpace(in.Type)
	if kind == "" || in.Duration == nil || !finite(*in.Duration) || *in.Duration <= 0 {
		return nil, domainErrors.ErrInvalidWorkout
	}

	var calories *float64
	if in.Calories != nil && finite(*in.Calories) {
		c := *in.Calories
		calories = &c
	}

	date, ok := parseEventTime(in.Date, u.loc)
	if !ok {
		date = u.now()
	}
	// Responses and day bounds carry milliseconds only.
	date = date.Truncate(time.Millisecond)

	return u.workouts.Create(ctx, model.Workout{
		UserID:   userID,
		Type:     kind,
		Duration: *in.Duration,
		Calories: calories,
		Date:     date,
	})
}

// ListByUser returns all workouts of the user, most recent first.
func (u *WorkoutUseCase) ListByUser(ctx context.Context, userID string) ([]model.Workout, error) {
	list, err := u.workouts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return orEmpty(list), nil
}

// ListRecent returns at most limit most recent workouts. Non-positive limits use the default.
func (u *WorkoutUseCase) ListRecent(ctx context.Context, userID string, limit int) ([]model.Workout, error) {
	if limit <= 0 {
		limit = model.DefaultRecentLimit
	}
	list, err := u.workouts.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return orEmpty(list), nil
}

// ListByDay returns workouts dated within the calendar day given as YYYY-MM-DD,
// earliest first. An unparsable day yields an empty list.
func (u *WorkoutUseCase) ListByDay(ctx context.Context, userID, day string) ([]model.Workout, error) {
	from, to, ok := dayBounds(day, u.loc)
	if !ok {
		return []model.Workout{}, nil
	}
	list, err := u.workouts.ListBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return orEmpty(list), nil
}

// Remove deletes the workout with the given id if it belongs to the user.
func (u *WorkoutUseCase) Remove(ctx context.Context, userID, id string) error {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return domainErrors.ErrInvalidID
	}
	return u.workouts.Delete(ctx, userID, parsed.String())
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func orEmpty(list []model.Workout) []model.Workout {
	if list == nil {
		return []model.Workout{}
	}
	return list
}
