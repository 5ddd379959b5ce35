package model

import "time"

// DefaultRecentLimit is the number of workouts returned by the recent listing.
const DefaultRecentLimit = 3

// Workout is a single recorded training session owned by a user.
type Workout struct {
	ID        string
	UserID    string
	Type      string
	Duration  float64
	Calories  *float64
	Date      time.Time
	CreatedAt time.Time
}

// NewWorkout carries unvalidated input for a workout to be recorded.
// Date is the raw client value and may be empty or unparsable.
type NewWorkout struct {
	Type     string
	Duration *float64
	Calories *float64
	Date     string
}
