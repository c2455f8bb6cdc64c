package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplekit/leave-backend-go/internal/domain/leave"
	"github.com/peoplekit/leave-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `id, user_id, leave_type, start_date, end_date, status, reason, created_at, updated_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var r leave.LeaveRequest
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.LeaveType,
		&r.StartDate,
		&r.EndDate,
		&r.Status,
		&r.Reason,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, user_id, leave_type, start_date, end_date, status, reason,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	request.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		request.ID, request.UserID, request.LeaveType,
		request.StartDate, request.EndDate, request.Status, request.Reason,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to insert leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, userID, requestID string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE id = $1 AND user_id = $2
	`

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, requestID, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) FindOverlapping(ctx context.Context, userID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Closed-interval overlap: [start_date, end_date] shares a day with
	// [start, end] iff start_date <= end AND start <= end_date. Cancelled and
	// rejected requests never block new submissions.
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE user_id = $1
		AND status IN ('Pending', 'Approved')
		AND start_date <= $3
		AND end_date >= $2
		ORDER BY start_date, id
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

func (r *leaveRequestRepositoryImpl) GetByUserID(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY start_date ASC, id ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus, reason *string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, reason = COALESCE($3, reason), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leaveRequestColumns + `
	`

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id, status, reason))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update status for leave request with id %s: %w", id, err)
	}

	return request, nil
}
