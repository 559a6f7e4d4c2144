package utils

import (
	"net/http"
	"time"

	"github.com/osa911/clipdesk/internal/api/constants"

	"github.com/gin-gonic/gin"
)

// CookieOptions controls how the session cookie is written
type CookieOptions struct {
	Secure bool
	Domain string
}

// SetSessionCookie writes the HttpOnly session cookie expiring at expires
func SetSessionCookie(c *gin.Context, sid string, expires time.Time, opts CookieOptions) {
	maxAge := int(time.Until(expires).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.CookieSession, sid, maxAge, constants.CookiePathRoot, opts.Domain, opts.Secure, true)
}

// ClearSessionCookie expires the session cookie on the client
func ClearSessionCookie(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.CookieSession, "", -1, constants.CookiePathRoot, opts.Domain, opts.Secure, true)
}
