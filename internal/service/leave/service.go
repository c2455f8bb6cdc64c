package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/peoplekit/leave-backend-go/internal/domain/leave"
	"github.com/peoplekit/leave-backend-go/internal/domain/user"
	"github.com/peoplekit/leave-backend-go/internal/pkg/database"
	"github.com/peoplekit/leave-backend-go/internal/pkg/validator"
)

const defaultLeaveType = "Annual Leave"

type requestServiceImpl struct {
	requests leave.RequestRepository
	users    user.UserRepository
	tx       database.Transactor
	logger   *slog.Logger
}

// NewRequestService wires the leave-request lifecycle. Every mutating
// operation runs inside one transaction and locks the employee's user row
// first, so concurrent submits, approvals and cancellations for the same
// employee are serialized and the balance can never be double-spent.
func NewRequestService(
	requests leave.RequestRepository,
	users user.UserRepository,
	tx database.Transactor,
	logger *slog.Logger,
) leave.Service {
	return &requestServiceImpl{
		requests: requests,
		users:    users,
		tx:       tx,
		logger:   logger,
	}
}

func (s *requestServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	start, _ := validator.ParseDate(req.StartDate)
	end, _ := validator.ParseDate(req.EndDate)
	if end.Before(start) {
		return leave.LeaveRequest{}, validator.ValidationErrors{{
			Field:   "endDate",
			Message: "endDate cannot be before startDate",
		}}
	}

	leaveType := req.LeaveType
	if leaveType == "" {
		leaveType = defaultLeaveType
	}

	var created leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		employee, err := s.users.LockForUpdate(ctx, req.UserID)
		if err != nil {
			return err
		}

		days := leave.DayCount(start, end)
		if float64(days) > employee.AnnualLeaveBalance {
			return fmt.Errorf("%w: requested %d days, %g remaining",
				leave.ErrInsufficientBalance, days, employee.AnnualLeaveBalance)
		}

		overlapping, err := s.requests.FindOverlapping(ctx, req.UserID, start, end)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			return fmt.Errorf("%w: conflicts with request %s",
				leave.ErrOverlappingRequest, overlapping[0].ID)
		}

		created, err = s.requests.Create(ctx, leave.LeaveRequest{
			UserID:    req.UserID,
			LeaveType: leaveType,
			StartDate: start,
			EndDate:   end,
			Status:    leave.StatusPending,
			Reason:    req.Reason,
		})
		return err
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.logger.Info("leave request submitted",
		"leaveRequestID", created.ID,
		"userID", created.UserID,
		"days", created.DayCount(),
	)
	return created, nil
}

func (s *requestServiceImpl) Cancel(ctx context.Context, req leave.CancelRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	var cancelled leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.users.LockForUpdate(ctx, req.UserID); err != nil {
			return err
		}

		request, err := s.requests.GetByID(ctx, req.UserID, req.LeaveRequestID)
		if err != nil {
			return err
		}
		if request.Status.IsTerminal() {
			return &leave.StateError{Current: request.Status, Action: "cancelled"}
		}

		wasApproved := request.Status == leave.StatusApproved

		cancelled, err = s.requests.UpdateStatus(ctx, request.ID, leave.StatusCancelled, nil)
		if err != nil {
			return err
		}

		// Cancelling a pending request never touched the balance, so there
		// is nothing to restore.
		if wasApproved {
			if _, err := s.users.AdjustBalance(ctx, req.UserID, float64(request.DayCount())); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.logger.Info("leave request cancelled",
		"leaveRequestID", cancelled.ID,
		"userID", cancelled.UserID,
	)
	return cancelled, nil
}

func (s *requestServiceImpl) Approve(ctx context.Context, req leave.ApproveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	var approved leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		employee, err := s.users.LockForUpdate(ctx, req.UserID)
		if err != nil {
			return err
		}

		request, err := s.requests.GetByID(ctx, req.UserID, req.LeaveRequestID)
		if err != nil {
			return err
		}
		if request.Status != leave.StatusPending {
			return &leave.StateError{Current: request.Status, Action: "approved"}
		}

		days := request.DayCount()
		if float64(days) > employee.AnnualLeaveBalance {
			return fmt.Errorf("%w: requested %d days, %g remaining",
				leave.ErrInsufficientBalance, days, employee.AnnualLeaveBalance)
		}

		var reason *string
		if req.Reason != "" {
			reason = &req.Reason
		}
		approved, err = s.requests.UpdateStatus(ctx, request.ID, leave.StatusApproved, reason)
		if err != nil {
			return err
		}

		_, err = s.users.AdjustBalance(ctx, req.UserID, -float64(days))
		return err
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.logger.Info("leave request approved",
		"leaveRequestID", approved.ID,
		"userID", approved.UserID,
		"days", approved.DayCount(),
	)
	return approved, nil
}

func (s *requestServiceImpl) Reject(ctx context.Context, req leave.RejectRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	var rejected leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.users.LockForUpdate(ctx, req.UserID); err != nil {
			return err
		}

		request, err := s.requests.GetByID(ctx, req.UserID, req.LeaveRequestID)
		if err != nil {
			return err
		}
		if request.Status != leave.StatusPending {
			return &leave.StateError{Current: request.Status, Action: "rejected"}
		}

		rejected, err = s.requests.UpdateStatus(ctx, request.ID, leave.StatusRejected, &req.Reason)
		return err
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.logger.Info("leave request rejected",
		"leaveRequestID", rejected.ID,
		"userID", rejected.UserID,
	)
	return rejected, nil
}

func (s *requestServiceImpl) GetStatus(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	if validator.IsEmpty(userID) {
		return nil, validator.ValidationErrors{{
			Field:   "userID",
			Message: "No userID Provided!",
		}}
	}

	requests, err := s.requests.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, leave.ErrNoRequestsFound
	}

	return requests, nil
}

func (s *requestServiceImpl) GetBalance(ctx context.Context, userID string) (float64, error) {
	if validator.IsEmpty(userID) {
		return 0, validator.ValidationErrors{{
			Field:   "userID",
			Message: "No userID Provided!",
		}}
	}

	employee, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	return employee.AnnualLeaveBalance, nil
}
