package role

type Name string

const (
	NameAdmin   Name = "admin"   // Full access, user and manager administration
	NameManager Name = "manager" // Can approve and reject leave requests
	NameUser    Name = "user"    // Regular employee
)

type Role struct {
	ID   string `json:"roleID"`
	Name Name   `json:"name"`
}

// CanApprove reports whether the role may approve or reject leave requests.
func (n Name) CanApprove() bool {
	return n == NameManager || n == NameAdmin
}

// IsAdmin reports whether the role may manage users and manager pairs.
func (n Name) IsAdmin() bool {
	return n == NameAdmin
}
