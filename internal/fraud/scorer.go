package fraud

import (
	"strings"

	"github.com/insuregenius/backend/internal/models"
)

// HighAmountThreshold is the claim amount above which the amount alone
// raises the risk level.
const HighAmountThreshold = 300000

// Score applies the screening rules to a claim narrative and amount. The
// High rules run after the Medium rules, so a High indicator always wins.
// A clean narrative scores Low with an explanatory reason.
func Score(narrative string, amount float64) (models.RiskLevel, []string) {
	lower := strings.ToLower(narrative)

	risk := models.RiskLow
	var reasons []string

	if amount > HighAmountThreshold {
		risk = models.RiskMedium
		reasons = append(reasons, "High claim amount compared to typical personal lines claims.")
	}

	if containsAny(lower, "urgent", "immediate", "asap") {
		risk = models.RiskMedium
		reasons = append(reasons, "Pressure wording used in claim narrative.")
	}

	if containsAny(lower, "again", "similar claim", "repeated") {
		risk = models.RiskHigh
		reasons = append(reasons, "Repeat claim pattern mentioned in description.")
	}

	if containsAny(lower, "no documents", "missing photos", "cannot provide") {
		risk = models.RiskHigh
		reasons = append(reasons, "Lack of documentation / evidence for the claim.")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "No strong fraud indicators detected based on simple rules.")
	}

	return risk, reasons
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
