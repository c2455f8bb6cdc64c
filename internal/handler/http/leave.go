package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplekit/leave-backend-go/internal/domain/leave"
	"github.com/peoplekit/leave-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Submit implements LeaveHandler.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq leave.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.leaveService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("Submit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, leave.NewRequestResponse(created))
}

// Cancel implements LeaveHandler.
func (h *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	var cancelReq leave.CancelRequest
	if err := json.NewDecoder(r.Body).Decode(&cancelReq); err != nil {
		slog.Error("Cancel decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	cancelled, err := h.leaveService.Cancel(r.Context(), cancelReq)
	if err != nil {
		slog.Error("Cancel service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewRequestResponse(cancelled))
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	var approveReq leave.ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&approveReq); err != nil {
		slog.Error("Approve decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	approved, err := h.leaveService.Approve(r.Context(), approveReq)
	if err != nil {
		slog.Error("Approve service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewRequestResponse(approved))
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var rejectReq leave.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		slog.Error("Reject decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	rejected, err := h.leaveService.Reject(r.Context(), rejectReq)
	if err != nil {
		slog.Error("Reject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewRequestResponse(rejected))
}

// GetStatus implements LeaveHandler.
func (h *LeaveHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	requests, err := h.leaveService.GetStatus(r.Context(), userID)
	if err != nil {
		slog.Error("GetStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	statuses := make([]leave.StatusResponse, 0, len(requests))
	for _, request := range requests {
		statuses = append(statuses, leave.NewStatusResponse(request))
	}

	response.Success(w, statuses)
}

// GetBalance implements LeaveHandler.
func (h *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	balance, err := h.leaveService.GetBalance(r.Context(), userID)
	if err != nil {
		slog.Error("GetBalance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.BalanceResponse{LeaveBalance: balance})
}
