package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/insuregenius/backend/internal/middleware"
	"github.com/insuregenius/backend/internal/models"
	"github.com/insuregenius/backend/internal/tenants"
	"github.com/insuregenius/backend/pkg/response"
	"github.com/insuregenius/backend/pkg/utils"
)

// UserStore is the user persistence surface the handler needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, email, passwordHash string, role models.Role, tenantID uuid.UUID) (*models.User, error)
}

// TenantStore is the tenant persistence surface the handler needs.
type TenantStore interface {
	GetByName(ctx context.Context, name string) (*models.Tenant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	Create(ctx context.Context, name string) (*models.Tenant, error)
}

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Email      string `form:"email" json:"email" binding:"required,email"`
	Password   string `form:"password" json:"password" binding:"required"`
	TenantName string `form:"tenant_name" json:"tenant_name" binding:"required"`
	Role       string `form:"role" json:"role"` // optional, defaults to customer
}

// LoginRequest is the body for POST /auth/login. The username field carries
// the email, mirroring the OAuth2 password form. Legacy asks for the
// long-lived token the single-tenant integrations still depend on.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Legacy   bool   `form:"legacy" json:"legacy"`
}

// TokenResponse is the login response with the session token.
type TokenResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	User        models.UserPublic `json:"user"`
}

// Handler handles auth HTTP endpoints.
type Handler struct {
	users      UserStore
	tenants    TenantStore
	tokens     *TokenService
	sessionTTL time.Duration
	legacyTTL  time.Duration
	logger     *zap.Logger
}

// NewHandler creates an auth handler. sessionTTL is used for regular logins,
// legacyTTL for the long-lived single-tenant flow; both feed the same token
// issue path.
func NewHandler(users UserStore, tenantStore TenantStore, tokens *TokenService, sessionTTL, legacyTTL time.Duration, logger *zap.Logger) *Handler {
	return &Handler{users: users, tenants: tenantStore, tokens: tokens, sessionTTL: sessionTTL, legacyTTL: legacyTTL, logger: logger}
}

// Register handles POST /auth/register. An unknown tenant name is
// auto-provisioned; the founding registrant keeps the role they asked for,
// so a tenant can start out with no admin. That inherited gap is logged
// loudly rather than silently accepted.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		response.BadRequest(c, "invalid role")
		return
	}

	ctx := c.Request.Context()

	tenant, err := h.tenants.GetByName(ctx, req.TenantName)
	founding := false
	if errors.Is(err, tenants.ErrTenantNotFound) {
		tenant, err = h.tenants.Create(ctx, req.TenantName)
		if errors.Is(err, tenants.ErrNameTaken) {
			// Lost the provisioning race; the tenant exists now.
			tenant, err = h.tenants.GetByName(ctx, req.TenantName)
		} else if err == nil {
			founding = true
		}
	}
	if err != nil {
		h.logger.Error("resolve tenant", zap.String("tenant_name", req.TenantName), zap.Error(err))
		response.ServiceUnavailable(c, "tenant store unavailable")
		return
	}
	if founding && role != models.RoleAdmin {
		h.logger.Warn("tenant provisioned without an admin",
			zap.String("tenant_name", tenant.Name),
			zap.String("founding_role", string(role)))
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Internal(c, "failed to hash password")
		return
	}

	user, err := h.users.Create(ctx, req.Email, hash, role, tenant.ID)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Conflict(c, "email already registered")
			return
		}
		h.logger.Error("create user", zap.Error(err))
		response.ServiceUnavailable(c, "user store unavailable")
		return
	}

	response.Created(c, user.ToPublic(tenant.Name))
}

// Login handles POST /auth/login. Unknown email and wrong password produce
// the same generic failure so accounts cannot be enumerated.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	ctx := c.Request.Context()

	user, err := h.users.GetByEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Unauthorized(c, "incorrect username or password")
			return
		}
		h.logger.Error("load user", zap.Error(err))
		response.ServiceUnavailable(c, "user store unavailable")
		return
	}
	if !user.IsActive || !utils.CheckPassword(req.Password, user.PasswordHash) {
		response.Unauthorized(c, "incorrect username or password")
		return
	}

	tenant, err := h.tenants.GetByID(ctx, user.TenantID)
	if err != nil {
		h.logger.Error("load tenant", zap.String("tenant_id", user.TenantID.String()), zap.Error(err))
		response.ServiceUnavailable(c, "tenant store unavailable")
		return
	}

	ttl := h.sessionTTL
	if req.Legacy {
		ttl = h.legacyTTL
	}
	token, err := h.tokens.Issue(user.Email, user.TenantID, user.Role, ttl)
	if err != nil {
		response.Internal(c, "failed to issue token")
		return
	}

	c.JSON(http.StatusOK, response.Body{Success: true, Data: TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.ToPublic(tenant.Name),
	}})
}

// Me handles GET /auth/me, returning the authenticated user's public view.
// Principal resolution happens in the access guard middleware.
func (h *Handler) Me(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "missing user context")
		return
	}
	tenant, err := h.tenants.GetByID(c.Request.Context(), user.TenantID)
	if err != nil {
		response.NotFound(c, "tenant not found")
		return
	}
	response.OK(c, user.ToPublic(tenant.Name))
}
