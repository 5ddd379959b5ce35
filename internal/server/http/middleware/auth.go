package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/workouttracker/internal/pkg/auth"
	"github.com/polkiloo/workouttracker/internal/server/http/dto"
)

// IdentityContextKey is a gin context key for the authenticated caller identity.
const IdentityContextKey = "identity"

var errMissingBearer = errors.New("authorization header missing or malformed")

// TokenParser verifies tokens presented by clients.
type TokenParser interface {
	ParseToken(token string) (pkgAuth.Identity, error)
}

// AuthRequired ensures user is authenticated before accessing handler.
// Every failure yields the same 401 body; the reason is only logged.
func AuthRequired(parser TokenParser, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			reject(c, logger, errMissingBearer)
			return
		}

		identity, err := parser.ParseToken(token)
		if err != nil {
			reject(c, logger, err)
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func reject(c *gin.Context, logger *slog.Logger, reason error) {
	logger.Warn("request rejected by auth guard",
		slog.String("request_id", RequestIDFromContext(c)),
		slog.String("path", c.Request.URL.Path),
		slog.String("reason", reason.Error()),
	)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Message(dto.MsgUnauthorized))
}
