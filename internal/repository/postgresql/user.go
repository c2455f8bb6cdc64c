package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplekit/leave-backend-go/internal/domain/user"
	"github.com/peoplekit/leave-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

const userColumns = `u.id, u.email, u.firstname, u.surname, u.role_id, u.annual_leave_balance, u.password_hash, u.created_at, u.updated_at`

func scanUser(row pgx.Row, withRole bool) (user.User, error) {
	var u user.User
	dest := []interface{}{
		&u.ID,
		&u.Email,
		&u.Firstname,
		&u.Surname,
		&u.RoleID,
		&u.AnnualLeaveBalance,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	}
	if withRole {
		dest = append(dest, &u.RoleName)
	}
	err := row.Scan(dest...)
	return u, err
}

func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			id, email, firstname, surname, role_id, annual_leave_balance,
			password_hash, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	newUser.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		newUser.ID, newUser.Email, newUser.Firstname, newUser.Surname,
		newUser.RoleID, newUser.AnnualLeaveBalance, newUser.PasswordHash,
	).Scan(&newUser.CreatedAt, &newUser.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return newUser, nil
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `, r.name
		FROM users u
		JOIN roles r ON u.role_id = r.id
		WHERE u.id = $1
	`

	found, err := scanUser(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `, r.name
		FROM users u
		JOIN roles r ON u.role_id = r.id
		WHERE u.email = $1
	`

	found, err := scanUser(q.QueryRow(ctx, query, email), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

func (r *userRepositoryImpl) GetAll(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `, r.name
		FROM users u
		JOIN roles r ON u.role_id = r.id
		ORDER BY u.surname, u.firstname, u.id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows, true)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

func (r *userRepositoryImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Email != nil {
		updates = append(updates, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.Firstname != nil {
		updates = append(updates, fmt.Sprintf("firstname = $%d", argIdx))
		args = append(args, *req.Firstname)
		argIdx++
	}
	if req.Surname != nil {
		updates = append(updates, fmt.Sprintf("surname = $%d", argIdx))
		args = append(args, *req.Surname)
		argIdx++
	}
	if req.RoleID != nil {
		updates = append(updates, fmt.Sprintf("role_id = $%d", argIdx))
		args = append(args, *req.RoleID)
		argIdx++
	}

	if len(updates) == 0 {
		return user.User{}, fmt.Errorf("no updatable fields provided for user update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, req.ID)

	sql := "UPDATE users u SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE u.id = $%d RETURNING ", argIdx) + userColumns

	updated, err := scanUser(q.QueryRow(ctx, sql, args...), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to update user with id %s: %w", req.ID, err)
	}

	return updated, nil
}

func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *userRepositoryImpl) LockForUpdate(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	// FOR UPDATE serializes concurrent leave operations on the same
	// employee; the lock is held until the surrounding transaction ends.
	query := `
		SELECT ` + userColumns + `
		FROM users u
		WHERE u.id = $1
		FOR UPDATE
	`

	found, err := scanUser(q.QueryRow(ctx, query, id), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

func (r *userRepositoryImpl) AdjustBalance(ctx context.Context, id string, deltaDays float64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	// The WHERE guard is a backstop: the service checks the balance under a
	// row lock before debiting, so a non-matching row here means either a
	// missing user or a logic error upstream.
	query := `
		UPDATE users u
		SET annual_leave_balance = annual_leave_balance + $2, updated_at = NOW()
		WHERE u.id = $1 AND annual_leave_balance + $2 >= 0
		RETURNING ` + userColumns + `
	`

	updated, err := scanUser(q.QueryRow(ctx, query, id, deltaDays), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			var exists bool
			if checkErr := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists); checkErr == nil && !exists {
				return user.User{}, user.ErrUserNotFound
			}
			return user.User{}, user.ErrNegativeBalance
		}
		return user.User{}, fmt.Errorf("failed to adjust balance for user %s by %g: %w", id, deltaDays, err)
	}

	return updated, nil
}
