package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/osa911/clipdesk/internal/api/constants"
	"github.com/osa911/clipdesk/internal/models"
	"github.com/osa911/clipdesk/internal/service"
	"github.com/osa911/clipdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

// Authenticator resolves the caller behind a session cookie or bearer ID token
type Authenticator interface {
	SessionUser(ctx context.Context, sid string) (*models.User, error)
	TokenUser(ctx context.Context, idToken string) (*models.User, error)
}

// Authenticate identifies the caller when credentials are present.
// Requests without credentials continue anonymously; the policy gate decides
// whether the route needs a caller.
func Authenticate(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if sid, err := c.Cookie(constants.CookieSession); err == nil && sid != "" {
			user, err := auth.SessionUser(ctx, sid)
			switch {
			case err == nil:
				setCaller(c, user)
				c.Set(constants.ContextKeySessionID, sid)
				c.Next()
				return
			case !errors.Is(err, service.ErrUnauthenticated):
				utils.HandleServiceError(c, err)
				c.Abort()
				return
			}
			// Stale cookie, fall through to the Authorization header
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || scheme != "Bearer" || strings.TrimSpace(token) == "" {
			utils.HandleUnauthorized(c, "Invalid authorization header format")
			return
		}

		user, err := auth.TokenUser(ctx, strings.TrimSpace(token))
		if errors.Is(err, service.ErrUnauthenticated) {
			utils.HandleUnauthorized(c, "Invalid token")
			return
		}
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		setCaller(c, user)
		c.Next()
	}
}

func setCaller(c *gin.Context, user *models.User) {
	c.Set(constants.ContextKeyUser, user)
	c.Set(constants.ContextKeyUserID, user.ID)
}

// CurrentUser returns the authenticated caller, if any
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(constants.ContextKeyUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
