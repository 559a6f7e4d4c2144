package utils

import (
	"github.com/gin-gonic/gin"
)

// GetRealIP returns the client IP. Forwarding headers are honored only when the
// request comes from a proxy the engine trusts (see gin.Engine.SetTrustedProxies).
func GetRealIP(c *gin.Context) string {
	return c.ClientIP()
}
