package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplekit/leave-backend-go/internal/domain/user"
	"github.com/peoplekit/leave-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetByEmail(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.userService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, user.NewUserResponse(created))
}

// GetByID implements UserHandler.
func (h *UserHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("Get user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, user.NewUserResponse(found))
}

// GetByEmail implements UserHandler.
func (h *UserHandlerImpl) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	found, err := h.userService.GetByEmail(r.Context(), email)
	if err != nil {
		slog.Error("Get user by email service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, user.NewUserResponse(found))
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.NewUserResponse(u))
	}

	response.Success(w, responses)
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	updated, err := h.userService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, user.NewUserResponse(updated))
}

// Delete implements UserHandler.
func (h *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.userService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"userID": id})
}
