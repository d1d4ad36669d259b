package billing

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/insuregenius/backend/internal/middleware"
	"github.com/insuregenius/backend/internal/models"
	"github.com/insuregenius/backend/pkg/response"
)

// Store is the payment persistence surface the handler needs.
type Store interface {
	Create(ctx context.Context, tenantID uuid.UUID, amount float64, currency string, status models.PaymentStatus) (*models.Payment, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.Payment, error)
}

// CheckoutRequest is the body for POST /billing/checkout.
type CheckoutRequest struct {
	Amount   float64 `form:"amount" json:"amount" binding:"required"`
	Currency string  `form:"currency" json:"currency"`
}

// Handler handles billing HTTP endpoints. The checkout is a stub gateway:
// no payment provider is called, and every checkout settles as success.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a billing handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Checkout handles POST /billing/checkout.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "missing user context")
		return
	}
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}
	payment, err := h.store.Create(c.Request.Context(), user.TenantID, req.Amount, currency, models.PaymentSuccess)
	if err != nil {
		h.logger.Error("create payment", zap.Error(err))
		response.ServiceUnavailable(c, "payment store unavailable")
		return
	}
	response.Created(c, payment)
}

// History handles GET /billing/history, returning the tenant's payments.
func (h *Handler) History(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "missing user context")
		return
	}
	list, err := h.store.ListByTenant(c.Request.Context(), user.TenantID)
	if err != nil {
		h.logger.Error("list payments", zap.Error(err))
		response.ServiceUnavailable(c, "payment store unavailable")
		return
	}
	if list == nil {
		list = []*models.Payment{}
	}
	response.OK(c, list)
}
