package role

import "context"

// RoleRepository - interface for the roles table. Roles are a fixed set
// seeded at startup; there are no write operations beyond seeding.
type RoleRepository interface {
	GetAll(ctx context.Context) ([]Role, error)
	GetByID(ctx context.Context, id string) (Role, error)
	GetByName(ctx context.Context, name Name) (Role, error)
	EnsureExists(ctx context.Context, name Name) (Role, error)
}
