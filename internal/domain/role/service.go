package role

import "context"

type RoleService interface {
	List(ctx context.Context) ([]Role, error)

	// Seed makes sure the built-in roles exist. Called once at startup.
	Seed(ctx context.Context) error
}
