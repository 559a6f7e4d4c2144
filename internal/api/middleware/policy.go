package middleware

import (
	"github.com/osa911/clipdesk/internal/api/constants"
	"github.com/osa911/clipdesk/internal/policy"
	"github.com/osa911/clipdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

// Authorize consults the policy table for resource and action and stores the
// decision for the handler. It must run after Authenticate.
func Authorize(p *policy.Policy, resource policy.Resource, action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		var subject *policy.Subject
		if user, ok := CurrentUser(c); ok {
			subject = &policy.Subject{UserID: user.ID, Role: user.Role}
		}

		decision, err := p.Authorize(subject, resource, action)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyDecision, decision)
		c.Next()
	}
}

// RequireCaller rejects anonymous requests to non-public rules with 401.
// It runs ahead of body validation so anonymous callers never see field errors.
func RequireCaller(p *policy.Policy, resource policy.Resource, action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rule, ok := p.Rule(resource, action); ok && rule.Public {
			c.Next()
			return
		}
		if _, ok := CurrentUser(c); !ok {
			utils.HandleUnauthorized(c, "Authentication required")
			return
		}
		c.Next()
	}
}

// GetDecision returns the decision stored by Authorize
func GetDecision(c *gin.Context) policy.Decision {
	v, _ := c.Get(constants.ContextKeyDecision)
	d, _ := v.(policy.Decision)
	return d
}
