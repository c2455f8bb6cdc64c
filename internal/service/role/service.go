package role

import (
	"context"
	"fmt"

	"github.com/peoplekit/leave-backend-go/internal/domain/role"
)

type roleServiceImpl struct {
	roles role.RoleRepository
}

func NewRoleService(roles role.RoleRepository) role.RoleService {
	return &roleServiceImpl{roles: roles}
}

func (s *roleServiceImpl) List(ctx context.Context) ([]role.Role, error) {
	return s.roles.GetAll(ctx)
}

func (s *roleServiceImpl) Seed(ctx context.Context) error {
	for _, name := range []role.Name{role.NameAdmin, role.NameManager, role.NameUser} {
		if _, err := s.roles.EnsureExists(ctx, name); err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	return nil
}
