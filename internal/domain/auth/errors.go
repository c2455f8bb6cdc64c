package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Password incorrect")
	ErrInvalidToken       = errors.New("Invalid or expired token")
)
