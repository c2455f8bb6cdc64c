package manager

import (
	"context"
	"log/slog"

	"github.com/peoplekit/leave-backend-go/internal/domain/manager"
	"github.com/peoplekit/leave-backend-go/internal/domain/user"
)

type pairServiceImpl struct {
	pairs  manager.PairRepository
	users  user.UserRepository
	logger *slog.Logger
}

func NewPairService(pairs manager.PairRepository, users user.UserRepository, logger *slog.Logger) manager.PairService {
	return &pairServiceImpl{
		pairs:  pairs,
		users:  users,
		logger: logger,
	}
}

func (s *pairServiceImpl) Create(ctx context.Context, req manager.CreatePairRequest) (manager.Pair, error) {
	if err := req.Validate(); err != nil {
		return manager.Pair{}, err
	}

	// Both sides of the pair must be existing users.
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		return manager.Pair{}, err
	}
	if _, err := s.users.GetByID(ctx, req.ManagerID); err != nil {
		return manager.Pair{}, err
	}

	created, err := s.pairs.Create(ctx, manager.Pair{
		UserID:    req.UserID,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		return manager.Pair{}, err
	}

	s.logger.Info("manager pair created",
		"managerPairID", created.ID,
		"userID", created.UserID,
		"managerID", created.ManagerID,
	)
	return created, nil
}

func (s *pairServiceImpl) List(ctx context.Context) ([]manager.Pair, error) {
	return s.pairs.GetAll(ctx)
}

func (s *pairServiceImpl) GetByUserID(ctx context.Context, userID string) (manager.Pair, error) {
	return s.pairs.GetByUserID(ctx, userID)
}

func (s *pairServiceImpl) UpdateManager(ctx context.Context, req manager.UpdatePairRequest) (manager.Pair, error) {
	if err := req.Validate(); err != nil {
		return manager.Pair{}, err
	}

	if _, err := s.users.GetByID(ctx, req.ManagerID); err != nil {
		return manager.Pair{}, err
	}

	return s.pairs.UpdateManager(ctx, req.UserID, req.ManagerID)
}

func (s *pairServiceImpl) Delete(ctx context.Context, id string) error {
	return s.pairs.Delete(ctx, id)
}
