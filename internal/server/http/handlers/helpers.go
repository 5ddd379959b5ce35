package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/workouttracker/internal/pkg/auth"
	"github.com/polkiloo/workouttracker/internal/server/http/dto"
	"github.com/polkiloo/workouttracker/internal/server/http/middleware"
)

// CurrentIdentity extracts the authenticated caller from context.
func CurrentIdentity(c *gin.Context) (pkgAuth.Identity, bool) {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return pkgAuth.Identity{}, false
	}
	identity, ok := val.(pkgAuth.Identity)
	if !ok || identity.UserID == "" {
		return pkgAuth.Identity{}, false
	}
	return identity, true
}

// bindJSON decodes the request body. An empty body decodes to the zero value.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.Message(dto.MsgInvalidBody))
		return false
	}
	return true
}

func respondInternalError(c *gin.Context, logger *slog.Logger, op string, err error) {
	logger.Error(op+" failed",
		slog.String("request_id", middleware.RequestIDFromContext(c)),
		slog.String("error", err.Error()),
	)
	c.JSON(http.StatusInternalServerError, dto.Message(dto.MsgInternalError))
}
