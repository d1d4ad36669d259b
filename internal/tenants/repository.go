package tenants

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/insuregenius/backend/internal/models"
)

// Repository handles tenant persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a tenants repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const tenantColumns = `id, name, api_key, created_at, updated_at`

// GetByID returns a tenant by ID, or ErrTenantNotFound.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	const q = `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	var t models.Tenant
	err := r.pool.QueryRow(ctx, q, id).Scan(&t.ID, &t.Name, &t.APIKey, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetByName returns a tenant by display name, or ErrTenantNotFound.
func (r *Repository) GetByName(ctx context.Context, name string) (*models.Tenant, error) {
	const q = `SELECT ` + tenantColumns + ` FROM tenants WHERE name = $1`
	var t models.Tenant
	err := r.pool.QueryRow(ctx, q, name).Scan(&t.ID, &t.Name, &t.APIKey, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Create inserts a tenant with a fresh random API key. The unique constraint
// on name is the serialization point: concurrent creates of the same name
// yield exactly one success and one ErrNameTaken.
func (r *Repository) Create(ctx context.Context, name string) (*models.Tenant, error) {
	const q = `INSERT INTO tenants (name, api_key)
		VALUES ($1, $2)
		RETURNING ` + tenantColumns
	var t models.Tenant
	err := r.pool.QueryRow(ctx, q, name, uuid.New().String()).
		Scan(&t.ID, &t.Name, &t.APIKey, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return &t, nil
}

// RegenerateAPIKey replaces the tenant's API key with a new random value.
// The old key is invalid as soon as the update commits; there is no grace
// period.
func (r *Repository) RegenerateAPIKey(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	const q = `UPDATE tenants SET api_key = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + tenantColumns
	var t models.Tenant
	err := r.pool.QueryRow(ctx, q, id, uuid.New().String()).
		Scan(&t.ID, &t.Name, &t.APIKey, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return &t, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
