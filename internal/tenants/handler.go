package tenants

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/insuregenius/backend/internal/middleware"
	"github.com/insuregenius/backend/internal/models"
	"github.com/insuregenius/backend/pkg/response"
)

// Store is the tenant persistence surface the handler needs.
type Store interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	RegenerateAPIKey(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
}

// MemberLister lists the users belonging to a tenant.
type MemberLister interface {
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.User, error)
}

// Handler handles tenant HTTP endpoints.
type Handler struct {
	store   Store
	members MemberLister
	logger  *zap.Logger
}

// NewHandler creates a tenants handler.
func NewHandler(store Store, members MemberLister, logger *zap.Logger) *Handler {
	return &Handler{store: store, members: members, logger: logger}
}

// Me handles GET /tenants/me, returning the principal's tenant including its
// API key.
func (h *Handler) Me(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "missing user context")
		return
	}
	tenant, err := h.store.GetByID(c.Request.Context(), user.TenantID)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			response.NotFound(c, "tenant not found")
			return
		}
		h.logger.Error("load tenant", zap.Error(err))
		response.ServiceUnavailable(c, "tenant store unavailable")
		return
	}
	response.OK(c, tenant)
}

// RegenerateAPIKey handles POST /tenants/regenerate-api-key (admin only; the
// role gate runs in middleware). The replaced key stops working immediately.
func (h *Handler) RegenerateAPIKey(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "missing user context")
		return
	}
	tenant, err := h.store.RegenerateAPIKey(c.Request.Context(), user.TenantID)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			response.NotFound(c, "tenant not found")
			return
		}
		h.logger.Error("regenerate api key", zap.Error(err))
		response.ServiceUnavailable(c, "tenant store unavailable")
		return
	}
	response.OK(c, tenant)
}

// ListMembers handles GET /tenants/me/users (admin only), returning the
// tenant's user accounts.
func (h *Handler) ListMembers(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "missing user context")
		return
	}
	tenant, err := h.store.GetByID(c.Request.Context(), user.TenantID)
	if err != nil {
		response.NotFound(c, "tenant not found")
		return
	}
	users, err := h.members.ListByTenant(c.Request.Context(), user.TenantID)
	if err != nil {
		h.logger.Error("list tenant members", zap.Error(err))
		response.ServiceUnavailable(c, "user store unavailable")
		return
	}
	list := make([]models.UserPublic, 0, len(users))
	for _, u := range users {
		list = append(list, u.ToPublic(tenant.Name))
	}
	response.OK(c, list)
}
