package renewal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/insuregenius/backend/internal/middleware"
	"github.com/insuregenius/backend/internal/models"
)

func TestStaticPredictorReturnsDefault(t *testing.T) {
	p := NewStaticPredictor()
	if got := p.Predict(12000, 2, 1); got != DefaultProbability {
		t.Errorf("Predict = %v, want %v", got, DefaultProbability)
	}
	if got := p.Predict(500, 0, 0); got != DefaultProbability {
		t.Errorf("Predict = %v, want %v for different input", got, DefaultProbability)
	}
}

func predictRouter(h *Handler, principal *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/renewal/predict", func(c *gin.Context) { c.Set(middleware.ContextPrincipal, principal) }, h.Predict)
	return r
}

func TestPredictWithoutCache(t *testing.T) {
	agent := &models.User{ID: uuid.New(), Email: "agent@x.com", Role: models.RoleAgent, TenantID: uuid.New(), IsActive: true}
	h := NewHandler(NewStaticPredictor(), nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/renewal/predict", strings.NewReader(`{"premium":12000,"claims":2,"late":1}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	predictRouter(h, agent).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", resp.Code, resp.Body.String())
	}
	var body struct {
		Data PredictResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Probability != DefaultProbability {
		t.Errorf("probability = %v, want %v", body.Data.Probability, DefaultProbability)
	}
}

func TestPredictMissingPremium(t *testing.T) {
	agent := &models.User{ID: uuid.New(), Email: "agent@x.com", Role: models.RoleAgent, TenantID: uuid.New(), IsActive: true}
	h := NewHandler(NewStaticPredictor(), nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/renewal/predict", strings.NewReader(`{"claims":2}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	predictRouter(h, agent).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}
