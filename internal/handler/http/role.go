package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplekit/leave-backend-go/internal/domain/role"
	"github.com/peoplekit/leave-backend-go/internal/handler/http/response"
)

type RoleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

type RoleHandlerImpl struct {
	roleService role.RoleService
	roles       role.RoleRepository
}

func NewRoleHandler(roleService role.RoleService, roles role.RoleRepository) RoleHandler {
	return &RoleHandlerImpl{roleService: roleService, roles: roles}
}

// List implements RoleHandler.
func (h *RoleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.roleService.List(r.Context())
	if err != nil {
		slog.Error("List roles service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, all)
}

// GetByID implements RoleHandler.
func (h *RoleHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.roles.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("Get role service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}
