package manager

import "context"

type PairService interface {
	Create(ctx context.Context, req CreatePairRequest) (Pair, error)
	List(ctx context.Context) ([]Pair, error)
	GetByUserID(ctx context.Context, userID string) (Pair, error)
	UpdateManager(ctx context.Context, req UpdatePairRequest) (Pair, error)
	Delete(ctx context.Context, id string) error
}
