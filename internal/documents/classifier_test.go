package documents

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Repair estimate for bumper replacement, total 45000", TypeRepairInvoice},
		{"Final bill from the garage", TypeRepairInvoice},
		{"Vehicle inspection carried out by the assessor on site", TypeInspectionReport},
		{"Motor claim form, policy number PN-2291", TypeClaimForm},
		{"Proposal form for household contents insurance", TypeProposal},
		{"Completed application for a new motor policy", TypeProposal},
		{"Holiday itinerary and boarding passes", TypeOther},
		{"", TypeOther},
	}
	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestClassifyFirstRuleWins(t *testing.T) {
	// Invoice keywords take precedence over inspection keywords.
	if got := Classify("Invoice attached to the inspection report"); got != TypeRepairInvoice {
		t.Errorf("Classify = %q, want %q", got, TypeRepairInvoice)
	}
}
