package user

import "errors"

var (
	ErrUserNotFound    = errors.New("User not found")
	ErrEmailExists     = errors.New("Email already registered")
	ErrNegativeBalance = errors.New("Balance adjustment would drive balance negative")
)
