package policy

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/insuregenius/backend/pkg/response"
)

// sectionWindow is how much policy text is quoted after a matched keyword.
const sectionWindow = 200

// SummaryRequest is the body for POST /policy/summary.
type SummaryRequest struct {
	Text string `form:"text" json:"text" binding:"required"`
}

// SummaryResponse carries the extracted policy summary.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// Handler handles policy HTTP endpoints.
type Handler struct{}

// NewHandler creates a policy handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Summary handles POST /policy/summary: keyword-window extraction of the
// coverage, exclusions and limits sections from free policy text.
func (h *Handler) Summary(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	lower := strings.ToLower(req.Text)
	coverage := section(req.Text, lower, "cover", "Coverage not found")
	exclusions := section(req.Text, lower, "exclude", "Exclusions not found")
	limits := section(req.Text, lower, "limit", "Limits not found")

	summary := fmt.Sprintf("Policy Summary:\n• Coverage: %s\n• Exclusions: %s\n• Limits: %s\n", coverage, exclusions, limits)
	response.OK(c, SummaryResponse{Summary: summary})
}

// section returns a fixed-size window of the original text starting at the
// keyword's position in the lowercased text, or the fallback when absent.
func section(text, lower, keyword, fallback string) string {
	i := strings.Index(lower, keyword)
	if i < 0 {
		return fallback
	}
	end := i + sectionWindow
	if end > len(text) {
		end = len(text)
	}
	return strings.TrimSpace(text[i:end])
}
