package user

import "context"

type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, req UpdateUserRequest) (User, error)
	Delete(ctx context.Context, id string) error
}
