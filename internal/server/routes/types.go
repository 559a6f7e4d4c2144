package routes

import (
	"github.com/osa911/clipdesk/internal/api/handlers"
	"github.com/osa911/clipdesk/internal/api/middleware"
	"github.com/osa911/clipdesk/internal/policy"

	"github.com/gin-gonic/gin"
)

// Handlers contains all the route handlers
type Handlers struct {
	Auth        *handlers.AuthHandler
	Health      *handlers.HealthHandler
	Application *handlers.ApplicationHandler
	Team        *handlers.TeamHandler
	Campaign    *handlers.CampaignHandler
	Clip        *handlers.ClipHandler
	Analytics   *handlers.AnalyticsHandler
	Message     *handlers.MessageHandler
	Dashboard   *handlers.DashboardHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Policy          *policy.Policy
	Authenticate    gin.HandlerFunc
	ApplicationRate gin.HandlerFunc
}

// Guard wraps an endpoint in the access checks for resource and action.
// The last handler is the endpoint; any handlers before it (body validation,
// rate limits) run after the caller check and before the policy decision, so
// responses come back as 401, then 400, then 403.
func (m *Middleware) Guard(resource policy.Resource, action policy.Action, chain ...gin.HandlerFunc) []gin.HandlerFunc {
	n := len(chain)
	out := make([]gin.HandlerFunc, 0, n+2)
	out = append(out, middleware.RequireCaller(m.Policy, resource, action))
	out = append(out, chain[:n-1]...)
	out = append(out, middleware.Authorize(m.Policy, resource, action), chain[n-1])
	return out
}
