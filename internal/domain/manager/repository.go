package manager

import "context"

// PairRepository - interface for the manager_pairs table
type PairRepository interface {
	Create(ctx context.Context, pair Pair) (Pair, error)
	GetAll(ctx context.Context) ([]Pair, error)
	GetByUserID(ctx context.Context, userID string) (Pair, error)
	UpdateManager(ctx context.Context, userID, managerID string) (Pair, error)
	Delete(ctx context.Context, id string) error
}
