package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplekit/leave-backend-go/internal/domain/role"
	"github.com/peoplekit/leave-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

func (r *roleRepositoryImpl) GetAll(ctx context.Context) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM roles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		var rl role.Role
		if err := rows.Scan(&rl.ID, &rl.Name); err != nil {
			return nil, err
		}
		roles = append(roles, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	var rl role.Role
	err := q.QueryRow(ctx, `SELECT id, name FROM roles WHERE id = $1`, id).Scan(&rl.ID, &rl.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, err
	}

	return rl, nil
}

func (r *roleRepositoryImpl) GetByName(ctx context.Context, name role.Name) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	var rl role.Role
	err := q.QueryRow(ctx, `SELECT id, name FROM roles WHERE name = $1`, name).Scan(&rl.ID, &rl.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, err
	}

	return rl, nil
}

// EnsureExists inserts the role if it is missing; used by startup seeding.
func (r *roleRepositoryImpl) EnsureExists(ctx context.Context, name role.Name) (role.Role, error) {
	existing, err := r.GetByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if err != role.ErrRoleNotFound {
		return role.Role{}, err
	}

	q := GetQuerier(ctx, r.db)
	rl := role.Role{ID: uuid.NewString(), Name: name}
	if _, err := q.Exec(ctx, `INSERT INTO roles (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`, rl.ID, rl.Name); err != nil {
		return role.Role{}, fmt.Errorf("failed to seed role %s: %w", name, err)
	}

	// Re-read in case a concurrent seeder won the insert.
	return r.GetByName(ctx, name)
}
