package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid, unrevoked refresh token for a new access
	// token. Logout revokes the refresh token Refresh checks against.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string)
}
