package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/workouttracker/internal/config"
	"github.com/polkiloo/workouttracker/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	newWorkoutUseCase,
)

type workoutParams struct {
	fx.In

	Workouts repository.WorkoutRepository
	Config   *config.Config
}

func newWorkoutUseCase(p workoutParams) *WorkoutUseCase {
	return NewWorkoutUseCase(p.Workouts, p.Config.Location)
}
