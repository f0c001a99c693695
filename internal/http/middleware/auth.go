// README: Role middleware; trusts the identity collaborator's resolved headers.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	RoleConsumer = "consumer"
	RoleAdmin    = "admin"
	RoleExec     = "exec"

	actorKey = "actor_id"
	roleKey  = "actor_role"
)

// Identity extracts the actor resolved by the upstream identity layer.
// Role verification happened at that boundary; this only carries the result.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, c.GetHeader("X-Actor-Id"))
		c.Set(roleKey, c.GetHeader("X-Role"))
		c.Next()
	}
}

// RequireRole rejects requests whose resolved role does not match the route
// group.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(roleKey) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

func ActorID(c *gin.Context) string {
	return c.GetString(actorKey)
}
