package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/peoplekit/leave-backend-go/internal/domain/auth"
	"github.com/peoplekit/leave-backend-go/internal/handler/http/response"
	"github.com/peoplekit/leave-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	tokens, err := h.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.Success(w, tokens)
}

// RefreshToken implements AuthHandler.
func (h *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	tokens, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokens)
}

// Logout implements AuthHandler.
func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		h.authService.Logout(r.Context(), cookie.Value)
	}

	// Expire the cookie regardless of whether one was sent.
	expired := h.jwtService.RefreshTokenCookie("", time.Now().Add(-time.Hour).Unix())
	expired.MaxAge = -1
	http.SetCookie(w, expired)

	response.Success(w, map[string]string{"message": "Logged out"})
}
