package middleware

import (
	"strings"

	"edufund.backend/internal/domain/entities"
	domainerrors "edufund.backend/internal/domain/errors"
	"edufund.backend/internal/interfaces/http/response"
	"edufund.backend/internal/usecases"
	"github.com/gin-gonic/gin"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserKey is the context key for the resolved user
	UserKey = "currentUser"
)

// AuthMiddleware resolves the bearer token into a synced local user and
// stores it in the request context. Every authenticated request goes
// through identity resolution; there is no local session state.
func AuthMiddleware(authUsecase *usecases.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			response.Error(c, domainerrors.Unauthorized("authorization header required"))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			response.Error(c, domainerrors.Unauthorized("invalid authorization format, use: Bearer <token>"))
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, BearerPrefix)
		user, err := authUsecase.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// GetCurrentUser gets the resolved user from context
func GetCurrentUser(c *gin.Context) (*entities.User, bool) {
	v, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*entities.User)
	return user, ok
}
