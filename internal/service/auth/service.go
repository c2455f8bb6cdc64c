package auth

import (
	"context"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/peoplekit/leave-backend-go/internal/domain/auth"
	"github.com/peoplekit/leave-backend-go/internal/domain/user"
	"github.com/peoplekit/leave-backend-go/internal/pkg/jwt"
)

type authServiceImpl struct {
	users  user.UserRepository
	tokens jwt.Service
	logger *slog.Logger
}

func NewAuthService(users user.UserRepository, tokens jwt.Service, logger *slog.Logger) auth.AuthService {
	return &authServiceImpl{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		// Unknown email and wrong password look the same to the caller.
		if err == user.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExpiresAt, err := s.tokens.GenerateAccessToken(account.ID, account.Email, string(account.RoleName))
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, refreshExpiresAt, err := s.tokens.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	s.logger.Info("user logged in", "userID", account.ID)

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
	}, nil
}

func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if refreshToken == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if s.tokens.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	// Verify signature and expiry.
	token, err := jwtauth.VerifyToken(s.tokens.JWTAuth(), refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	account, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	accessToken, expiresAt, err := s.tokens.GenerateAccessToken(account.ID, account.Email, string(account.RoleName))
	if err != nil {
		return auth.TokenResponse{}, err
	}

	s.logger.Info("access token refreshed", "userID", account.ID)

	return auth.TokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) {
	if refreshToken != "" {
		s.tokens.RevokeToken(refreshToken)
	}
}
