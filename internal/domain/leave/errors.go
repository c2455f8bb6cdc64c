package leave

import (
	"errors"
	"fmt"
)

var (
	ErrRequestNotFound     = errors.New("Leave request not found")
	ErrOverlappingRequest  = errors.New("Dates overlap with an existing request")
	ErrInsufficientBalance = errors.New("Leave length exceeds employee balance")
	ErrNoRequestsFound     = errors.New("No leave requests found for user")
)

// StateError reports a transition attempted from a status that does not
// permit it. The message names the current status.
type StateError struct {
	Current RequestStatus
	Action  string // "approved", "rejected", "cancelled"
}

func (e *StateError) Error() string {
	return fmt.Sprintf("Leave request has status: %s. Cannot be %s.", e.Current, e.Action)
}
