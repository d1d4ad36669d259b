package policy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func postSummary(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/policy/summary", NewHandler().Summary)

	req := httptest.NewRequest(http.MethodPost, "/policy/summary", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeSummary(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Data SummaryResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body.Data.Summary
}

func TestSummaryExtractsSections(t *testing.T) {
	text := "This policy covers accidental damage to the insured vehicle. " +
		"Excluded: wear and tear, racing. " +
		"Limit of liability is 500000 per event."
	resp := postSummary(t, `{"text":"`+text+`"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	summary := decodeSummary(t, resp)
	if !strings.Contains(summary, "• Coverage: covers accidental damage") {
		t.Errorf("coverage section missing: %q", summary)
	}
	if !strings.Contains(summary, "• Exclusions: Excluded: wear and tear") {
		t.Errorf("exclusions section missing: %q", summary)
	}
	if !strings.Contains(summary, "• Limits: Limit of liability is 500000") {
		t.Errorf("limits section missing: %q", summary)
	}
}

func TestSummaryFallbacksWhenKeywordsAbsent(t *testing.T) {
	resp := postSummary(t, `{"text":"Nothing relevant in here."}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	summary := decodeSummary(t, resp)
	for _, fallback := range []string{"Coverage not found", "Exclusions not found", "Limits not found"} {
		if !strings.Contains(summary, fallback) {
			t.Errorf("summary missing fallback %q: %q", fallback, summary)
		}
	}
}

func TestSummaryWindowClampedToText(t *testing.T) {
	resp := postSummary(t, `{"text":"cover end"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	if summary := decodeSummary(t, resp); !strings.Contains(summary, "• Coverage: cover end") {
		t.Errorf("short text not clamped: %q", summary)
	}
}

func TestSummaryMissingText(t *testing.T) {
	if resp := postSummary(t, `{}`); resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}
