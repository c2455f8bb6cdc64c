package leave

import "time"

type RequestStatus string

const (
	StatusPending   RequestStatus = "Pending"
	StatusApproved  RequestStatus = "Approved"
	StatusRejected  RequestStatus = "Rejected"
	StatusCancelled RequestStatus = "Cancelled"
)

// IsTerminal reports whether no further transition is allowed from s.
// Approved is not terminal: an approved request can still be cancelled.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

// LeaveRequest entity. StartDate and EndDate are calendar dates at midnight
// UTC; the range is inclusive on both ends.
type LeaveRequest struct {
	ID        string
	UserID    string
	LeaveType string
	StartDate time.Time
	EndDate   time.Time
	Status    RequestStatus
	Reason    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayCount returns the inclusive number of calendar days the request covers.
// A single-day request (start == end) counts as 1.
func (r LeaveRequest) DayCount() int {
	return DayCount(r.StartDate, r.EndDate)
}

func DayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// Overlaps reports whether the closed ranges [s1,e1] and [s2,e2] share at
// least one calendar day: s1 <= e2 && s2 <= e1.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}
