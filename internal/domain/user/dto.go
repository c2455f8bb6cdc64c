package user

import (
	"github.com/peoplekit/leave-backend-go/internal/domain/role"
	"github.com/peoplekit/leave-backend-go/internal/pkg/validator"
)

const (
	minPasswordLength = 10
	maxNameLength     = 30
)

type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Surname   string `json:"surname"`
	RoleID    string `json:"roleID"`

	// Optional starting balance; when nil the configured default applies.
	AnnualLeaveBalance *float64 `json:"annualLeaveBalance,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Must be a valid email address",
		})
	}

	if len(r.Password) < minPasswordLength {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "Password must be atleast 10 characters long",
		})
	}

	if validator.IsEmpty(r.Firstname) {
		errs = append(errs, validator.ValidationError{
			Field:   "firstname",
			Message: "firstname is required",
		})
	} else if len(r.Firstname) > maxNameLength {
		errs = append(errs, validator.ValidationError{
			Field:   "firstname",
			Message: "First name cannot exceed 30 characters long",
		})
	}

	if validator.IsEmpty(r.Surname) {
		errs = append(errs, validator.ValidationError{
			Field:   "surname",
			Message: "surname is required",
		})
	} else if len(r.Surname) > maxNameLength {
		errs = append(errs, validator.ValidationError{
			Field:   "surname",
			Message: "Surname cannot exceed 30 characters long",
		})
	}

	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "roleID",
			Message: "Role is required",
		})
	}

	if r.AnnualLeaveBalance != nil && *r.AnnualLeaveBalance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "annualLeaveBalance",
			Message: "annualLeaveBalance must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	ID        string  `json:"userID"`
	Email     *string `json:"email,omitempty"`
	Firstname *string `json:"firstname,omitempty"`
	Surname   *string `json:"surname,omitempty"`
	RoleID    *string `json:"roleID,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userID",
			Message: "No ID Provided!",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Must be a valid email address",
		})
	}

	if r.Firstname != nil {
		if validator.IsEmpty(*r.Firstname) || len(*r.Firstname) > maxNameLength {
			errs = append(errs, validator.ValidationError{
				Field:   "firstname",
				Message: "First name cannot exceed 30 characters long",
			})
		}
	}

	if r.Surname != nil {
		if validator.IsEmpty(*r.Surname) || len(*r.Surname) > maxNameLength {
			errs = append(errs, validator.ValidationError{
				Field:   "surname",
				Message: "Surname cannot exceed 30 characters long",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UserResponse is the wire shape of a user. Password material is never
// serialized.
type UserResponse struct {
	UserID             string    `json:"userID"`
	Email              string    `json:"email"`
	Firstname          string    `json:"firstname"`
	Surname            string    `json:"surname"`
	RoleID             string    `json:"roleID"`
	RoleName           role.Name `json:"roleName,omitempty"`
	AnnualLeaveBalance float64   `json:"annualLeaveBalance"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		UserID:             u.ID,
		Email:              u.Email,
		Firstname:          u.Firstname,
		Surname:            u.Surname,
		RoleID:             u.RoleID,
		RoleName:           u.RoleName,
		AnnualLeaveBalance: u.AnnualLeaveBalance,
	}
}
