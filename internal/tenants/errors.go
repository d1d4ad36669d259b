package tenants

import "errors"

var (
	// ErrTenantNotFound is returned when no tenant matches the lookup.
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrNameTaken is returned when a tenant with the name already exists.
	ErrNameTaken = errors.New("tenant name already exists")
)
