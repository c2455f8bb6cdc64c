package manager

import "errors"

var (
	ErrPairNotFound = errors.New("Manager pair not found")
	ErrPairExists   = errors.New("Manager pair already exists for user")
)
