package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/insuregenius/backend/internal/models"
	"github.com/insuregenius/backend/pkg/response"
)

// RequireRole returns a middleware that allows only principals whose role is
// in the given set. Must run after Auth.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{})
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		user, ok := Principal(c)
		if !ok {
			response.Unauthorized(c, "missing user context")
			c.Abort()
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			response.Forbidden(c, "insufficient role permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
