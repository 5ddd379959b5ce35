package dto

import (
	"time"

	"github.com/polkiloo/workouttracker/internal/domain/model"
)

// TimestampLayout renders instants in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// WorkoutRequest describes workout creation payload.
type WorkoutRequest struct {
	Type     string `json:"type"`
	Duration Number `json:"duration"`
	Calories Number `json:"calories"`
	Date     string `json:"date"`
}

// ToModel converts request into unvalidated domain input.
func (r WorkoutRequest) ToModel() model.NewWorkout {
	return model.NewWorkout{
		Type:     r.Type,
		Duration: r.Duration.Ptr(),
		Calories: r.Calories.Ptr(),
		Date:     r.Date,
	}
}

// WorkoutResponse is the wire form of a workout.
type WorkoutResponse struct {
	ID        string   `json:"id"`
	UserID    string   `json:"userId"`
	Type      string   `json:"type"`
	Duration  float64  `json:"duration"`
	Calories  *float64 `json:"calories"`
	Date      string   `json:"date"`
	CreatedAt string   `json:"createdAt"`
}

// WorkoutsResponse wraps a list of workouts.
type WorkoutsResponse struct {
	Workouts []WorkoutResponse `json:"workouts"`
}

// WorkoutAddedResponse is returned after a workout is stored.
type WorkoutAddedResponse struct {
	Message string          `json:"message"`
	Workout WorkoutResponse `json:"workout"`
}

// FormatTimestamp renders t using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NewWorkoutResponse maps domain workout to response.
func NewWorkoutResponse(w model.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:        w.ID,
		UserID:    w.UserID,
		Type:      w.Type,
		Duration:  w.Duration,
		Calories:  w.Calories,
		Date:      FormatTimestamp(w.Date),
		CreatedAt: FormatTimestamp(w.CreatedAt),
	}
}

// NewWorkoutsResponse maps a list, producing an empty array for no workouts.
func NewWorkoutsResponse(list []model.Workout) WorkoutsResponse {
	out := make([]WorkoutResponse, 0, len(list))
	for _, w := range list {
		out = append(out, NewWorkoutResponse(w))
	}
	return WorkoutsResponse{Workouts: out}
}
