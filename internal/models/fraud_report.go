package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel is the outcome of a fraud screening.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// FraudReport is a persisted fraud screening result, written by the
// background worker and listed for underwriter review.
type FraudReport struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	RequestedBy uuid.UUID `json:"requested_by"`
	Narrative   string    `json:"narrative"`
	Amount      float64   `json:"amount"`
	Risk        RiskLevel `json:"risk"`
	Reasons     []string  `json:"reasons"`
	CreatedAt   time.Time `json:"created_at"`
}
