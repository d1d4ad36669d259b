package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents an isolated customer organization, the unit of data
// partitioning. The API key is a rotatable tenant-level secret for future
// machine-to-machine use; it is not accepted for request authentication.
type Tenant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	APIKey    string    `json:"api_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
