package claims

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/insuregenius/backend/pkg/response"
)

// NormalizeRequest is the body for POST /claims/normalize.
type NormalizeRequest struct {
	Text string `form:"text" json:"text" binding:"required"`
}

// NormalizedClaim is the structured view extracted from a claim narrative.
type NormalizedClaim struct {
	LossType string `json:"lossType"`
	Severity string `json:"severity"`
	Asset    string `json:"asset"`
	Summary  string `json:"summary"`
}

// Handler handles claim HTTP endpoints.
type Handler struct{}

// NewHandler creates a claims handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Normalize handles POST /claims/normalize: keyword heuristics turning a
// free-text claim narrative into loss type, severity and asset.
func (h *Handler) Normalize(c *gin.Context) {
	var req NormalizeRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	response.OK(c, Normalize(req.Text))
}

// Normalize applies the keyword tables. Later matches override earlier ones,
// so "fire" wins over "flood" when both appear, and "severe" over "minor".
func Normalize(text string) NormalizedClaim {
	lower := strings.ToLower(text)

	lossType := "General Loss"
	severity := "Medium"
	asset := "Unknown"

	if strings.Contains(lower, "car") || strings.Contains(lower, "vehicle") {
		asset = "Car"
	}
	if strings.Contains(lower, "house") || strings.Contains(lower, "home") {
		asset = "House"
	}
	if strings.Contains(lower, "flood") || strings.Contains(lower, "water") {
		lossType = "Flood Damage"
	}
	if strings.Contains(lower, "fire") {
		lossType = "Fire Damage"
	}

	if strings.Contains(lower, "minor") || strings.Contains(lower, "scratch") {
		severity = "Low"
	}
	if strings.Contains(lower, "severe") || strings.Contains(lower, "total loss") || strings.Contains(lower, "heavily") {
		severity = "High"
	}

	return NormalizedClaim{
		LossType: lossType,
		Severity: severity,
		Asset:    asset,
		Summary:  fmt.Sprintf("%s | Severity %s | Asset %s", lossType, severity, asset),
	}
}
