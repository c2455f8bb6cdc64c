package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplekit/leave-backend-go/internal/domain/manager"
	"github.com/peoplekit/leave-backend-go/internal/handler/http/response"
)

type ManagerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByUserID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ManagerHandlerImpl struct {
	pairService manager.PairService
}

func NewManagerHandler(pairService manager.PairService) ManagerHandler {
	return &ManagerHandlerImpl{pairService: pairService}
}

// Create implements ManagerHandler.
func (h *ManagerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq manager.CreatePairRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create manager pair decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.pairService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create manager pair service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, manager.NewPairResponse(created))
}

// List implements ManagerHandler.
func (h *ManagerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	pairs, err := h.pairService.List(r.Context())
	if err != nil {
		slog.Error("List manager pairs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]manager.PairResponse, 0, len(pairs))
	for _, pair := range pairs {
		responses = append(responses, manager.NewPairResponse(pair))
	}

	response.Success(w, responses)
}

// GetByUserID implements ManagerHandler.
func (h *ManagerHandlerImpl) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	pair, err := h.pairService.GetByUserID(r.Context(), userID)
	if err != nil {
		slog.Error("Get manager pair service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, manager.NewPairResponse(pair))
}

// Update implements ManagerHandler.
func (h *ManagerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq manager.UpdatePairRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update manager pair decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	updated, err := h.pairService.UpdateManager(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update manager pair service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, manager.NewPairResponse(updated))
}

// Delete implements ManagerHandler.
func (h *ManagerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.pairService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete manager pair service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"managerPairID": id})
}
