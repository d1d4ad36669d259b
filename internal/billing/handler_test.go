package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/insuregenius/backend/internal/middleware"
	"github.com/insuregenius/backend/internal/models"
)

type fakePaymentStore struct {
	payments []*models.Payment
}

func (f *fakePaymentStore) Create(ctx context.Context, tenantID uuid.UUID, amount float64, currency string, status models.PaymentStatus) (*models.Payment, error) {
	p := &models.Payment{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Amount:    amount,
		Currency:  currency,
		Status:    status,
		CreatedAt: time.Now(),
	}
	f.payments = append(f.payments, p)
	return p, nil
}

func (f *fakePaymentStore) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range f.payments {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func billingRouter(h *Handler, principal *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setPrincipal := func(c *gin.Context) { c.Set(middleware.ContextPrincipal, principal) }
	r.POST("/billing/checkout", setPrincipal, h.Checkout)
	r.GET("/billing/history", setPrincipal, h.History)
	return r
}

func TestCheckoutSettlesAsSuccess(t *testing.T) {
	store := &fakePaymentStore{}
	user := &models.User{ID: uuid.New(), Email: "u@x.com", Role: models.RoleCustomer, TenantID: uuid.New(), IsActive: true}
	r := billingRouter(NewHandler(store, zap.NewNop()), user)

	req := httptest.NewRequest(http.MethodPost, "/billing/checkout", strings.NewReader(`{"amount":4999}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", resp.Code, resp.Body.String())
	}
	var body struct {
		Data models.Payment `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Status != models.PaymentSuccess {
		t.Errorf("status = %s, want success", body.Data.Status)
	}
	if body.Data.Currency != "INR" {
		t.Errorf("currency = %s, want INR default", body.Data.Currency)
	}
	if body.Data.TenantID != user.TenantID {
		t.Errorf("payment scoped to %s, want %s", body.Data.TenantID, user.TenantID)
	}
}

func TestHistoryIsTenantScoped(t *testing.T) {
	store := &fakePaymentStore{}
	alice := &models.User{ID: uuid.New(), Email: "a@x.com", Role: models.RoleCustomer, TenantID: uuid.New(), IsActive: true}
	bob := &models.User{ID: uuid.New(), Email: "b@y.com", Role: models.RoleCustomer, TenantID: uuid.New(), IsActive: true}

	ctx := context.Background()
	if _, err := store.Create(ctx, alice.TenantID, 100, "INR", models.PaymentSuccess); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := store.Create(ctx, bob.TenantID, 200, "INR", models.PaymentSuccess); err != nil {
		t.Fatalf("seed: %v", err)
	}

	resp := httptest.NewRecorder()
	billingRouter(NewHandler(store, zap.NewNop()), alice).
		ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/billing/history", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	var body struct {
		Data []models.Payment `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 1 {
		t.Fatalf("payments = %d, want 1 (other tenant excluded)", len(body.Data))
	}
	if body.Data[0].Amount != 100 {
		t.Errorf("amount = %v, want 100", body.Data[0].Amount)
	}
}

func TestHistoryEmptyList(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "u@x.com", Role: models.RoleCustomer, TenantID: uuid.New(), IsActive: true}
	resp := httptest.NewRecorder()
	billingRouter(NewHandler(&fakePaymentStore{}, zap.NewNop()), user).
		ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/billing/history", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"data":[]`) {
		t.Errorf("expected empty list, got %s", resp.Body.String())
	}
}
