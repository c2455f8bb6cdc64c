package user

import "context"

// UserRepository - interface for the users table
type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, req UpdateUserRequest) (User, error)
	Delete(ctx context.Context, id string) error

	// LockForUpdate reads the user row under a row-level lock. Only
	// meaningful inside a transaction; it is what serializes concurrent
	// leave operations per employee.
	LockForUpdate(ctx context.Context, id string) (User, error)

	// AdjustBalance atomically adds deltaDays (negative to debit) to the
	// user's annual leave balance. Fails with ErrNegativeBalance rather than
	// letting the balance go below zero.
	AdjustBalance(ctx context.Context, id string, deltaDays float64) (User, error)
}
