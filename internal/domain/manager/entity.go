package manager

import "time"

// Pair links an employee to the manager who approves their leave. One row per
// employee.
type Pair struct {
	ID        string
	UserID    string
	ManagerID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
