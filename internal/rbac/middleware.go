package rbac

import (
	"net/http"

	"agentdesk/internal/auth"

	"github.com/gin-gonic/gin"
)

// RequireAgentCode enforces that the caller's token carries an agent
// account code; session operations are meaningless without one.
func RequireAgentCode() gin.HandlerFunc {
	return func(c *gin.Context) {
		code, err := auth.AgentCode(c.Request.Context())
		if err != nil || code == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "agent_code required"})
			return
		}
		c.Next()
	}
}

// RequireAnyRole allows access if the caller has any of the provided
// roles. admin bypasses all checks.
func RequireAnyRole(allowed ...string) gin.HandlerFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role, err := auth.Role(c.Request.Context())
		if err != nil || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "role required"})
			return
		}

		if IsAdmin(role) {
			c.Next()
			return
		}

		if _, ok := allowedSet[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
