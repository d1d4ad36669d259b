package documents

import "strings"

// Document type labels.
const (
	TypeRepairInvoice    = "Repair Invoice"
	TypeInspectionReport = "Inspection Report"
	TypeClaimForm        = "Claim Form"
	TypeProposal         = "Proposal / Application"
	TypeOther            = "Other"
)

// Classify assigns a document type from keyword heuristics over the
// document text. The first matching rule wins.
func Classify(text string) string {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, "invoice", "estimate", "bill"):
		return TypeRepairInvoice
	case containsAny(lower, "inspection", "survey", "assessor"):
		return TypeInspectionReport
	case containsAny(lower, "claim form", "policy number", "claim number"):
		return TypeClaimForm
	case containsAny(lower, "proposal form", "application"):
		return TypeProposal
	}
	return TypeOther
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
