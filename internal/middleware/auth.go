package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/insuregenius/backend/internal/models"
	"github.com/insuregenius/backend/pkg/response"
)

// ContextPrincipal is the gin context key holding the resolved *models.User.
const ContextPrincipal = "principal"

// VerifiedClaims is the decoded token content the guard acts on.
type VerifiedClaims struct {
	Subject  string // user email
	TenantID uuid.UUID
	Role     string
}

// VerifyFunc validates a raw token string and returns its claims.
type VerifyFunc func(token string) (VerifiedClaims, error)

// UserResolver looks up the user a token's subject refers to.
type UserResolver interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Auth returns the access guard middleware. Per request: extract the bearer
// token, verify signature and expiry, resolve the subject to a stored user,
// and require the token's tenant claim to equal the user's stored tenant.
// The tenant check means a signed token cannot be replayed to act inside a
// different tenant even when the email matches. Every failure is terminal
// and answered 401.
func Auth(verify VerifyFunc, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}
		claims, err := verify(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}
		user, err := users.GetByEmail(c.Request.Context(), claims.Subject)
		if err != nil || user.TenantID != claims.TenantID || !user.IsActive {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}
		c.Set(ContextPrincipal, user)
		c.Next()
	}
}

// Principal returns the authenticated user set by Auth.
func Principal(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
