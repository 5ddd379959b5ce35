package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/workouttracker/internal/domain/errors"
	"github.com/polkiloo/workouttracker/internal/domain/model"
	"github.com/polkiloo/workouttracker/internal/server/http/dto"
)

// WorkoutHandler manages workout endpoints. All routes sit behind the auth guard.
type WorkoutHandler struct {
	facade WorkoutFacade
	logger *slog.Logger
}

// NewWorkoutHandler constructs WorkoutHandler.
func NewWorkoutHandler(facade WorkoutFacade, logger *slog.Logger) *WorkoutHandler {
	return &WorkoutHandler{facade: facade, logger: logger}
}

// Add handles POST /api/workouts.
func (h *WorkoutHandler) Add(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Message(dto.MsgUnauthorized))
		return
	}

	var req dto.WorkoutRequest
	if !bindJSON(c, &req) {
		return
	}

	workout, err := h.facade.AddWorkout(c.Request.Context(), identity.UserID, req.ToModel())
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidWorkout) {
			c.JSON(http.StatusBadRequest, dto.Message(dto.MsgInvalidWorkout))
			return
		}
		respondInternalError(c, h.logger, "add workout", err)
		return
	}

	c.JSON(http.StatusCreated, dto.WorkoutAddedResponse{
		Message: dto.MsgWorkoutAdded,
		Workout: dto.NewWorkoutResponse(*workout),
	})
}

// List handles GET /api/workouts.
func (h *WorkoutHandler) List(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Message(dto.MsgUnauthorized))
		return
	}

	workouts, err := h.facade.Workouts(c.Request.Context(), identity.UserID)
	if err != nil {
		respondInternalError(c, h.logger, "list workouts", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWorkoutsResponse(workouts))
}

// Recent handles GET /api/workouts/recent.
func (h *WorkoutHandler) Recent(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Message(dto.MsgUnauthorized))
		return
	}

	workouts, err := h.facade.RecentWorkouts(c.Request.Context(), identity.UserID, model.DefaultRecentLimit)
	if err != nil {
		respondInternalError(c, h.logger, "list recent workouts", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWorkoutsResponse(workouts))
}

// ByDate handles GET /api/workouts/by-date?date=YYYY-MM-DD.
func (h *WorkoutHandler) ByDate(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Message(dto.MsgUnauthorized))
		return
	}

	day := c.Query("date")
	if day == "" {
		c.JSON(http.StatusBadRequest, dto.Message(dto.MsgDateRequired))
		return
	}

	workouts, err := h.facade.WorkoutsByDay(c.Request.Context(), identity.UserID, day)
	if err != nil {
		respondInternalError(c, h.logger, "list workouts by date", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWorkoutsResponse(workouts))
}

// Delete handles DELETE /api/workouts/:id.
func (h *WorkoutHandler) Delete(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Message(dto.MsgUnauthorized))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.Message(dto.MsgMissingID))
		return
	}

	if err := h.facade.DeleteWorkout(c.Request.Context(), identity.UserID, id); err != nil {
		if errors.Is(err, domainErrors.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, dto.Message(dto.MsgMissingID))
			return
		}
		respondInternalError(c, h.logger, "delete workout", err)
		return
	}
	c.JSON(http.StatusOK, dto.Message(dto.MsgWorkoutDeleted))
}
