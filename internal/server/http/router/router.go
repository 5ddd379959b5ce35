package router

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/workouttracker/internal/config"
	"github.com/polkiloo/workouttracker/internal/server/http/dto"
	"github.com/polkiloo/workouttracker/internal/server/http/handlers"
	"github.com/polkiloo/workouttracker/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.TrackerFacade, logger *slog.Logger, cfg *config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	corsMiddleware, err := middleware.CORS(cfg.CORSOrigins)
	if err != nil {
		return nil, fmt.Errorf("configure cors: %w", err)
	}

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(corsMiddleware)
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.Message(dto.MsgNotFound))
	})

	healthHandler := handlers.NewHealthHandler(facade, logger)
	authHandler := handlers.NewAuthHandler(facade, logger)
	workoutHandler := handlers.NewWorkoutHandler(facade, logger)

	engine.GET("/", healthHandler.Root)
	engine.GET("/healthz", healthHandler.Health)

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	workouts := api.Group("/workouts")
	workouts.Use(middleware.AuthRequired(facade, logger))
	workouts.POST("", workoutHandler.Add)
	workouts.GET("", workoutHandler.List)
	workouts.GET("/recent", workoutHandler.Recent)
	workouts.GET("/by-date", workoutHandler.ByDate)
	workouts.DELETE("/:id", workoutHandler.Delete)

	return engine, nil
}
