package renewal

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/insuregenius/backend/internal/middleware"
	"github.com/insuregenius/backend/pkg/response"
)

// cacheTTL bounds how long a scored prediction is reused for identical input.
const cacheTTL = time.Hour

// PredictRequest is the body for POST /renewal/predict.
type PredictRequest struct {
	Premium float64 `form:"premium" json:"premium" binding:"required"`
	Claims  int     `form:"claims" json:"claims"`
	Late    int     `form:"late" json:"late"`
}

// PredictResponse carries the renewal probability.
type PredictResponse struct {
	Probability float64 `json:"probability"`
}

// Handler handles renewal prediction HTTP endpoints.
type Handler struct {
	predictor Predictor
	cache     *redis.Client
	logger    *zap.Logger
}

// NewHandler creates a renewal handler. cache may be nil; predictions are
// then scored on every request.
func NewHandler(predictor Predictor, cache *redis.Client, logger *zap.Logger) *Handler {
	return &Handler{predictor: predictor, cache: cache, logger: logger}
}

// Predict handles POST /renewal/predict, serving cached scores per tenant
// and input when available.
func (h *Handler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "missing user context")
		return
	}

	ctx := c.Request.Context()
	key := fmt.Sprintf("renewal:%s:%.2f:%d:%d", user.TenantID, req.Premium, req.Claims, req.Late)

	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, key).Result(); err == nil {
			if prob, perr := strconv.ParseFloat(cached, 64); perr == nil {
				response.OK(c, PredictResponse{Probability: prob})
				return
			}
		}
	}

	prob := h.predictor.Predict(req.Premium, req.Claims, req.Late)

	if h.cache != nil {
		if err := h.cache.Set(ctx, key, strconv.FormatFloat(prob, 'f', -1, 64), cacheTTL).Err(); err != nil {
			h.logger.Warn("cache renewal prediction", zap.Error(err))
		}
	}

	response.OK(c, PredictResponse{Probability: prob})
}
