package manager

import "github.com/peoplekit/leave-backend-go/internal/pkg/validator"

type CreatePairRequest struct {
	UserID    string `json:"userID"`
	ManagerID string `json:"managerID"`
}

func (r *CreatePairRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userID",
			Message: "No userID Provided!",
		})
	}

	if validator.IsEmpty(r.ManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "managerID",
			Message: "No managerID Provided!",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdatePairRequest reassigns the manager of an employee.
type UpdatePairRequest struct {
	UserID    string `json:"userID"`
	ManagerID string `json:"managerID"`
}

func (r *UpdatePairRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userID",
			Message: "No userID Provided!",
		})
	}

	if validator.IsEmpty(r.ManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "managerID",
			Message: "No managerID Provided!",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PairResponse struct {
	PairID    string `json:"managerPairID"`
	UserID    string `json:"userID"`
	ManagerID string `json:"managerID"`
}

func NewPairResponse(p Pair) PairResponse {
	return PairResponse{
		PairID:    p.ID,
		UserID:    p.UserID,
		ManagerID: p.ManagerID,
	}
}
