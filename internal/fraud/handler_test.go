package fraud

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/insuregenius/backend/internal/middleware"
	"github.com/insuregenius/backend/internal/models"
	"github.com/insuregenius/backend/pkg/queue"
)

type fakeLister struct {
	reports []*models.FraudReport
	err     error
}

func (f fakeLister) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.FraudReport, error) {
	return f.reports, f.err
}

type fakeEnqueuer struct {
	payloads []queue.FraudScreeningPayload
	err      error
}

func (f *fakeEnqueuer) EnqueueFraudScreening(ctx context.Context, payload queue.FraudScreeningPayload) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

func fraudRouter(h *Handler, principal *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setPrincipal := func(c *gin.Context) { c.Set(middleware.ContextPrincipal, principal) }
	r.POST("/fraud/check", setPrincipal, h.Check)
	r.GET("/fraud/reports", setPrincipal, h.ListReports)
	return r
}

func TestCheckScoresAndEnqueues(t *testing.T) {
	agent := &models.User{ID: uuid.New(), Email: "agent@x.com", Role: models.RoleAgent, TenantID: uuid.New(), IsActive: true}
	jobs := &fakeEnqueuer{}
	r := fraudRouter(NewHandler(fakeLister{}, jobs, zap.NewNop()), agent)

	req := httptest.NewRequest(http.MethodPost, "/fraud/check", strings.NewReader(`{"text":"happened again, no documents","amount":5000}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", resp.Code, resp.Body.String())
	}
	var body struct {
		Data CheckResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Risk != models.RiskHigh {
		t.Errorf("risk = %s, want High", body.Data.Risk)
	}
	if len(jobs.payloads) != 1 {
		t.Fatalf("enqueued = %d jobs, want 1", len(jobs.payloads))
	}
	if jobs.payloads[0].TenantID != agent.TenantID || jobs.payloads[0].RequestedBy != agent.ID {
		t.Errorf("job scoped to %s/%s, want %s/%s",
			jobs.payloads[0].TenantID, jobs.payloads[0].RequestedBy, agent.TenantID, agent.ID)
	}
}

func TestCheckSurvivesEnqueueFailure(t *testing.T) {
	agent := &models.User{ID: uuid.New(), Email: "agent@x.com", Role: models.RoleAgent, TenantID: uuid.New(), IsActive: true}
	jobs := &fakeEnqueuer{err: errors.New("redis down")}
	r := fraudRouter(NewHandler(fakeLister{}, jobs, zap.NewNop()), agent)

	req := httptest.NewRequest(http.MethodPost, "/fraud/check", strings.NewReader(`{"text":"clean narrative","amount":100}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 when only the queue copy is lost", resp.Code)
	}
}

func TestListReports(t *testing.T) {
	underwriter := &models.User{ID: uuid.New(), Email: "uw@x.com", Role: models.RoleUnderwriter, TenantID: uuid.New(), IsActive: true}
	lister := fakeLister{reports: []*models.FraudReport{
		{ID: uuid.New(), TenantID: underwriter.TenantID, Narrative: "again", Risk: models.RiskHigh, Reasons: []string{"Repeat claim pattern mentioned in description."}},
	}}
	r := fraudRouter(NewHandler(lister, &fakeEnqueuer{}, zap.NewNop()), underwriter)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/fraud/reports", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	var body struct {
		Data []models.FraudReport `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].Risk != models.RiskHigh {
		t.Errorf("unexpected reports: %+v", body.Data)
	}
}
