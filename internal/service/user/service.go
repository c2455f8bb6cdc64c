package user

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/peoplekit/leave-backend-go/internal/domain/role"
	"github.com/peoplekit/leave-backend-go/internal/domain/user"
)

type userServiceImpl struct {
	users          user.UserRepository
	roles          role.RoleRepository
	defaultBalance float64
	logger         *slog.Logger
}

func NewUserService(
	users user.UserRepository,
	roles role.RoleRepository,
	defaultBalance float64,
	logger *slog.Logger,
) user.UserService {
	return &userServiceImpl{
		users:          users,
		roles:          roles,
		defaultBalance: defaultBalance,
		logger:         logger,
	}
}

func (s *userServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	assigned, err := s.roles.GetByID(ctx, req.RoleID)
	if err != nil {
		return user.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	balance := s.defaultBalance
	if req.AnnualLeaveBalance != nil {
		balance = *req.AnnualLeaveBalance
	}

	created, err := s.users.Create(ctx, user.User{
		Email:              req.Email,
		Firstname:          req.Firstname,
		Surname:            req.Surname,
		RoleID:             assigned.ID,
		AnnualLeaveBalance: balance,
		PasswordHash:       string(hash),
	})
	if err != nil {
		return user.User{}, err
	}
	created.RoleName = assigned.Name

	s.logger.Info("user created", "userID", created.ID, "role", assigned.Name)
	return created, nil
}

func (s *userServiceImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userServiceImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return s.users.GetByEmail(ctx, email)
}

func (s *userServiceImpl) List(ctx context.Context) ([]user.User, error) {
	return s.users.GetAll(ctx)
}

func (s *userServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	if req.RoleID != nil {
		if _, err := s.roles.GetByID(ctx, *req.RoleID); err != nil {
			return user.User{}, err
		}
	}

	return s.users.Update(ctx, req)
}

func (s *userServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", "userID", id)
	return nil
}
