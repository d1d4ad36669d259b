package fraud

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/insuregenius/backend/internal/models"
)

// Repository handles fraud report persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a fraud reports repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Insert writes a screening result.
func (r *Repository) Insert(ctx context.Context, report *models.FraudReport) error {
	const q = `INSERT INTO fraud_reports (tenant_id, requested_by, narrative, amount, risk, reasons)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	return r.pool.QueryRow(ctx, q,
		report.TenantID, report.RequestedBy, report.Narrative, report.Amount, string(report.Risk), report.Reasons).
		Scan(&report.ID, &report.CreatedAt)
}

// ListByTenant returns a tenant's screening results, newest first.
func (r *Repository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.FraudReport, error) {
	const q = `SELECT id, tenant_id, requested_by, narrative, amount, risk, reasons, created_at
		FROM fraud_reports WHERE tenant_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*models.FraudReport
	for rows.Next() {
		var rep models.FraudReport
		if err := rows.Scan(&rep.ID, &rep.TenantID, &rep.RequestedBy, &rep.Narrative, &rep.Amount, &rep.Risk, &rep.Reasons, &rep.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}
