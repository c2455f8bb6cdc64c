package response

import (
	"errors"
	"net/http"

	"github.com/peoplekit/leave-backend-go/internal/domain/auth"
	"github.com/peoplekit/leave-backend-go/internal/domain/leave"
	"github.com/peoplekit/leave-backend-go/internal/domain/manager"
	"github.com/peoplekit/leave-backend-go/internal/domain/role"
	"github.com/peoplekit/leave-backend-go/internal/domain/user"
	"github.com/peoplekit/leave-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return
	}

	// An out-of-state transition (approving a rejected request, cancelling a
	// cancelled one) conflicts with the request's current status.
	var stateErr *leave.StateError
	if errors.As(err, &stateErr) {
		Conflict(w, stateErr.Error())
		return
	}

	switch {
	// Leave domain
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, err.Error())
	case errors.Is(err, leave.ErrRequestNotFound),
		errors.Is(err, leave.ErrNoRequestsFound):
		NotFound(w, err.Error())

	// User domain
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrNegativeBalance):
		BadRequest(w, err.Error())

	// Role and manager domains
	case errors.Is(err, role.ErrRoleNotFound),
		errors.Is(err, manager.ErrPairNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, manager.ErrPairExists):
		Conflict(w, err.Error())

	// Auth domain
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
