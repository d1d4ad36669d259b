package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/insuregenius/backend/internal/models"
)

// Repository handles payment record persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a billing repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a payment record.
func (r *Repository) Create(ctx context.Context, tenantID uuid.UUID, amount float64, currency string, status models.PaymentStatus) (*models.Payment, error) {
	const q = `INSERT INTO payments (tenant_id, amount, currency, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, tenant_id, amount, currency, status, created_at`
	var p models.Payment
	err := r.pool.QueryRow(ctx, q, tenantID, amount, currency, string(status)).
		Scan(&p.ID, &p.TenantID, &p.Amount, &p.Currency, &p.Status, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByTenant returns a tenant's payment records, newest first.
func (r *Repository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.Payment, error) {
	const q = `SELECT id, tenant_id, amount, currency, status, created_at
		FROM payments WHERE tenant_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Amount, &p.Currency, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
