package fraud

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/insuregenius/backend/internal/middleware"
	"github.com/insuregenius/backend/internal/models"
	"github.com/insuregenius/backend/pkg/queue"
	"github.com/insuregenius/backend/pkg/response"
)

// ReportLister lists persisted screening results for a tenant.
type ReportLister interface {
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.FraudReport, error)
}

// Enqueuer submits fraud screening jobs for background persistence.
type Enqueuer interface {
	EnqueueFraudScreening(ctx context.Context, payload queue.FraudScreeningPayload) error
}

// CheckRequest is the body for POST /fraud/check.
type CheckRequest struct {
	Text   string  `form:"text" json:"text" binding:"required"`
	Amount float64 `form:"amount" json:"amount" binding:"required"`
}

// CheckResponse is the synchronous screening result.
type CheckResponse struct {
	Risk    models.RiskLevel `json:"risk"`
	Reasons []string         `json:"reasons"`
}

// Handler handles fraud screening HTTP endpoints.
type Handler struct {
	reports ReportLister
	jobs    Enqueuer
	logger  *zap.Logger
}

// NewHandler creates a fraud handler. jobs may be nil, in which case results
// are returned synchronously but not persisted for review.
func NewHandler(reports ReportLister, jobs Enqueuer, logger *zap.Logger) *Handler {
	return &Handler{reports: reports, jobs: jobs, logger: logger}
}

// Check handles POST /fraud/check: scores the narrative synchronously and
// enqueues a screening job so the result lands in the review queue.
func (h *Handler) Check(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "missing user context")
		return
	}

	risk, reasons := Score(req.Text, req.Amount)

	if h.jobs != nil {
		payload := queue.FraudScreeningPayload{
			TenantID:    user.TenantID,
			RequestedBy: user.ID,
			Narrative:   req.Text,
			Amount:      req.Amount,
		}
		if err := h.jobs.EnqueueFraudScreening(c.Request.Context(), payload); err != nil {
			// The caller still gets the synchronous result; only the
			// review-queue copy is lost.
			h.logger.Warn("enqueue fraud screening", zap.Error(err))
		}
	}

	response.OK(c, CheckResponse{Risk: risk, Reasons: reasons})
}

// ListReports handles GET /fraud/reports (admin, underwriter), returning the
// tenant's persisted screening results.
func (h *Handler) ListReports(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "missing user context")
		return
	}
	list, err := h.reports.ListByTenant(c.Request.Context(), user.TenantID)
	if err != nil {
		h.logger.Error("list fraud reports", zap.Error(err))
		response.ServiceUnavailable(c, "report store unavailable")
		return
	}
	if list == nil {
		list = []*models.FraudReport{}
	}
	response.OK(c, list)
}
