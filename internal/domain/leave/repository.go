package leave

import (
	"context"
	"time"
)

// RequestRepository - interface for the leave_requests table
type RequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	// GetByID looks a request up by the (user, request) pair; a request id
	// belonging to a different user is treated as not found.
	GetByID(ctx context.Context, userID, requestID string) (LeaveRequest, error)
	// FindOverlapping returns the non-terminal (Pending or Approved) requests
	// of userID whose inclusive date range shares at least one day with
	// [start, end]. Cancelled and Rejected requests are excluded.
	FindOverlapping(ctx context.Context, userID string, start, end time.Time) ([]LeaveRequest, error)
	// GetByUserID returns all requests of userID ordered by start date
	// ascending, id as tie-break.
	GetByUserID(ctx context.Context, userID string) ([]LeaveRequest, error)
	// UpdateStatus sets the status and, when reason is non-nil, the reason.
	UpdateStatus(ctx context.Context, id string, status RequestStatus, reason *string) (LeaveRequest, error)
}
