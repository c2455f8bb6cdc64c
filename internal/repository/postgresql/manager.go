package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplekit/leave-backend-go/internal/domain/manager"
	"github.com/peoplekit/leave-backend-go/internal/pkg/database"
)

type managerPairRepositoryImpl struct {
	db *database.DB
}

func NewManagerPairRepository(db *database.DB) manager.PairRepository {
	return &managerPairRepositoryImpl{db: db}
}

const pairColumns = `id, user_id, manager_id, created_at, updated_at`

func scanPair(row pgx.Row) (manager.Pair, error) {
	var p manager.Pair
	err := row.Scan(&p.ID, &p.UserID, &p.ManagerID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *managerPairRepositoryImpl) Create(ctx context.Context, pair manager.Pair) (manager.Pair, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO manager_pairs (id, user_id, manager_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	pair.ID = uuid.NewString()
	err := q.QueryRow(ctx, query, pair.ID, pair.UserID, pair.ManagerID).
		Scan(&pair.CreatedAt, &pair.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return manager.Pair{}, manager.ErrPairExists
		}
		return manager.Pair{}, fmt.Errorf("failed to insert manager pair: %w", err)
	}

	return pair, nil
}

func (r *managerPairRepositoryImpl) GetAll(ctx context.Context) ([]manager.Pair, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+pairColumns+` FROM manager_pairs ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []manager.Pair
	for rows.Next() {
		pair, err := scanPair(rows)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return pairs, nil
}

func (r *managerPairRepositoryImpl) GetByUserID(ctx context.Context, userID string) (manager.Pair, error) {
	q := GetQuerier(ctx, r.db)

	pair, err := scanPair(q.QueryRow(ctx, `SELECT `+pairColumns+` FROM manager_pairs WHERE user_id = $1`, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return manager.Pair{}, manager.ErrPairNotFound
		}
		return manager.Pair{}, err
	}

	return pair, nil
}

func (r *managerPairRepositoryImpl) UpdateManager(ctx context.Context, userID, managerID string) (manager.Pair, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE manager_pairs
		SET manager_id = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + pairColumns + `
	`

	pair, err := scanPair(q.QueryRow(ctx, query, userID, managerID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return manager.Pair{}, manager.ErrPairNotFound
		}
		return manager.Pair{}, fmt.Errorf("failed to update manager pair for user %s: %w", userID, err)
	}

	return pair, nil
}

func (r *managerPairRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM manager_pairs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return manager.ErrPairNotFound
	}
	return nil
}
