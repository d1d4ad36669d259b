package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/insuregenius/backend/internal/models"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")
	tenantID := uuid.New()

	token, err := svc.Issue("alice@x.com", tenantID, models.RoleCustomer, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "alice@x.com" {
		t.Errorf("subject = %q, want alice@x.com", claims.Subject)
	}
	if claims.TenantID != tenantID {
		t.Errorf("tenant_id = %s, want %s", claims.TenantID, tenantID)
	}
	if claims.Role != string(models.RoleCustomer) {
		t.Errorf("role = %q, want customer", claims.Role)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue("alice@x.com", uuid.New(), models.RoleCustomer, 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for zero-ttl token, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a")
	verifier := NewTokenService("secret-b")

	token, err := issuer.Issue("alice@x.com", uuid.New(), models.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := NewTokenService("test-secret")
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(tok); err != ErrInvalidToken {
			t.Errorf("Verify(%q) = %v, want ErrInvalidToken", tok, err)
		}
	}
}
