package leave

import (
	"github.com/peoplekit/leave-backend-go/internal/pkg/validator"
)

const maxReasonLength = 128

type SubmitRequest struct {
	UserID    string `json:"userID"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	LeaveType string `json:"leaveType,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userID",
			Message: "userID is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be a valid date in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(r.Reason) > maxReasonLength {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "Reason cannot exceed 128 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CancelRequest struct {
	UserID         string `json:"userID"`
	LeaveRequestID string `json:"leaveRequestID"`
}

func (r *CancelRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userID",
			Message: "No userID Provided!",
		})
	}

	if validator.IsEmpty(r.LeaveRequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveRequestID",
			Message: "No leaveRequestID Provided!",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApproveRequest struct {
	UserID         string `json:"userID"`
	LeaveRequestID string `json:"leaveRequestID"`
	Reason         string `json:"reason,omitempty"`
}

func (r *ApproveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userID",
			Message: "No userID Provided!",
		})
	}

	if validator.IsEmpty(r.LeaveRequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveRequestID",
			Message: "No leaveRequestID Provided!",
		})
	}

	if len(r.Reason) > maxReasonLength {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "Reason cannot exceed 128 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectRequest struct {
	UserID         string `json:"userID"`
	LeaveRequestID string `json:"leaveRequestID"`
	Reason         string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userID",
			Message: "No userID Provided!",
		})
	}

	if validator.IsEmpty(r.LeaveRequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveRequestID",
			Message: "No leaveRequestID Provided!",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "Reason must be provided.",
		})
	} else if len(r.Reason) > maxReasonLength {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "Reason cannot exceed 128 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RequestResponse is the wire shape of a leave request. Dates are rendered
// date-only.
type RequestResponse struct {
	LeaveRequestID string `json:"leaveRequestID"`
	UserID         string `json:"userID"`
	LeaveType      string `json:"leaveType"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Status         string `json:"status"`
	Reason         string `json:"reason"`
}

func NewRequestResponse(r LeaveRequest) RequestResponse {
	return RequestResponse{
		LeaveRequestID: r.ID,
		UserID:         r.UserID,
		LeaveType:      r.LeaveType,
		StartDate:      r.StartDate.Format(validator.DateLayout),
		EndDate:        r.EndDate.Format(validator.DateLayout),
		Status:         string(r.Status),
		Reason:         r.Reason,
	}
}

// StatusResponse is the projection returned by the status listing: the
// fields the request overview screen renders.
type StatusResponse struct {
	LeaveRequestID string `json:"leaveRequestID"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Status         string `json:"status"`
	Reason         string `json:"reason"`
}

func NewStatusResponse(r LeaveRequest) StatusResponse {
	return StatusResponse{
		LeaveRequestID: r.ID,
		StartDate:      r.StartDate.Format(validator.DateLayout),
		EndDate:        r.EndDate.Format(validator.DateLayout),
		Status:         string(r.Status),
		Reason:         r.Reason,
	}
}

type BalanceResponse struct {
	LeaveBalance float64 `json:"leaveBalance"`
}
