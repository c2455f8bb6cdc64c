package role

import "errors"

var ErrRoleNotFound = errors.New("Role not found")
