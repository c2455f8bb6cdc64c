package user

import (
	"time"

	"github.com/peoplekit/leave-backend-go/internal/domain/role"
)

type User struct {
	ID        string
	Email     string
	Firstname string
	Surname   string
	RoleID    string

	// AnnualLeaveBalance is the remaining allotted leave in days. It is
	// debited when a request is approved and credited back when an approved
	// request is cancelled; nothing else mutates it.
	AnnualLeaveBalance float64

	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Join field, populated by queries that include the role.
	RoleName role.Name
}
