package leave

import "context"

// Service owns the leave-request lifecycle: submission, the status state
// machine, balance debits and credits, and overlap rejection. All state lives
// in the repositories; the service holds none of its own.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (LeaveRequest, error)
	Cancel(ctx context.Context, req CancelRequest) (LeaveRequest, error)
	Approve(ctx context.Context, req ApproveRequest) (LeaveRequest, error)
	Reject(ctx context.Context, req RejectRequest) (LeaveRequest, error)
	GetStatus(ctx context.Context, userID string) ([]LeaveRequest, error)
	GetBalance(ctx context.Context, userID string) (float64, error)
}
