package di

import (
	"github.com/polkiloo/workouttracker/internal/app"
	"github.com/polkiloo/workouttracker/internal/config"
	"github.com/polkiloo/workouttracker/internal/logger"
	"github.com/polkiloo/workouttracker/internal/pkg/auth"
	"github.com/polkiloo/workouttracker/internal/server/http/handlers"
	"github.com/polkiloo/workouttracker/internal/server/http/router"
	"github.com/polkiloo/workouttracker/internal/storage/postgres"
	"github.com/polkiloo/workouttracker/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.TrackerFacade) handlers.TrackerFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
