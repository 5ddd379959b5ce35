package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/workouttracker/internal/domain/errors"
	"github.com/polkiloo/workouttracker/internal/server/http/dto"
)

// AuthHandler processes signup and login.
type AuthHandler struct {
	facade AuthFacade
	logger *slog.Logger
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{facade: facade, logger: logger}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.facade.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingField):
			c.JSON(http.StatusBadRequest, dto.Message(dto.MsgMissingFields))
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, dto.Message(dto.MsgUserExists))
		default:
			respondInternalError(c, h.logger, "signup", err)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.SignupResponse{
		Message:  dto.MsgUserCreated,
		Token:    token,
		Username: user.Username,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.facade.Login(c.Request.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingField):
			c.JSON(http.StatusBadRequest, dto.Message(dto.MsgMissingFields))
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.Message(dto.MsgInvalidLogin))
		default:
			respondInternalError(c, h.logger, "login", err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Username: user.Username})
}
